package authorization

import (
	"log"
	"strings"

	"CareHub360/role"
	"CareHub360/util"

	"github.com/gin-gonic/gin"
)

// JWTAuth verifies the bearer token and stores the session identity on the
// request context.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			util.WriteError(c, util.AuthError(util.MISSING_AUTH_TOKEN))
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims, err := ParseToken(tokenString)
		if err != nil {
			util.WriteError(c, err)
			c.Abort()
			return
		}
		c.Set("userId", claims.UserId)
		c.Set("email", claims.Email)
		c.Set("userType", claims.UserType)
		c.Next()
	}
}

// Authorize gates a route on the privilege matrix. The userType is the one
// set by JWTAuth from the verified token, re-checked on every call.
func Authorize(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType := c.GetString("userType")
		if !role.Can(userType, resource, action) {
			log.Printf("Access denied for userType=%s on %s/%s", userType, resource, action)
			util.WriteError(c, util.AuthError(util.ACCESS_DENIED))
			c.Abort()
			return
		}
		c.Next()
	}
}
