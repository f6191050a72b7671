package authorization

import (
	"os"
	"time"

	"CareHub360/models"
	"CareHub360/util"

	"github.com/golang-jwt/jwt/v5"
)

const tokenLifetime = 24 * time.Hour

type Claims struct {
	UserId   string `json:"userId"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "carehub360-dev-secret"
	}
	return []byte(secret)
}

// GenerateToken issues a signed session token for an account.
func GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserId:   user.ID.Hex(),
		Email:    user.Email,
		UserType: user.UserType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ParseToken verifies a session token and returns its claims.
func ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, util.AuthError(util.INVALID_AUTH_TOKEN)
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, util.AuthError(util.INVALID_AUTH_TOKEN)
	}
	return claims, nil
}
