package authorization

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"CareHub360/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{
		ID:       primitive.NewObjectID(),
		Email:    "dr.house@example.com",
		UserType: models.UserTypeDoctor,
	}
	token, err := GenerateToken(user)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserId)
	assert.Equal(t, "dr.house@example.com", claims.Email)
	assert.Equal(t, models.UserTypeDoctor, claims.UserType)
}

func TestParseToken_Invalid(t *testing.T) {
	_, err := ParseToken("not-a-token")
	assert.Error(t, err)

	user := &models.User{ID: primitive.NewObjectID(), Email: "a@b.c", UserType: "patient"}
	token, err := GenerateToken(user)
	require.NoError(t, err)
	_, err = ParseToken(token + "tampered")
	assert.Error(t, err)
}

func newProtectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{JWTAuth()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userType": c.GetString("userType")})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestJWTAuth(t *testing.T) {
	r := newProtectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	user := &models.User{ID: primitive.NewObjectID(), Email: "pat@example.com", UserType: models.UserTypePatient}
	token, err := GenerateToken(user)
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), models.UserTypePatient)
}

func TestAuthorize(t *testing.T) {
	r := newProtectedRouter(Authorize("appointment", "update"))

	patient := &models.User{ID: primitive.NewObjectID(), Email: "pat@example.com", UserType: models.UserTypePatient}
	patientToken, err := GenerateToken(patient)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+patientToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	doctor := &models.User{ID: primitive.NewObjectID(), Email: "doc@example.com", UserType: models.UserTypeDoctor}
	doctorToken, err := GenerateToken(doctor)
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+doctorToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
