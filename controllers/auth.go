package controllers

import (
	"net/http"

	"CareHub360/services"
	"CareHub360/util"

	"github.com/gin-gonic/gin"
)

// Auth registers the public account routes.
func Auth(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", Register)
		auth.POST("/login", Login)
	}
}

/*
* Bind JSON
* And pass to the service
 */
func Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if vErr := services.ValidateRegister(&req); vErr != nil {
			util.WriteError(c, vErr)
			return
		}
		util.WriteError(c, util.ValidationError(util.MISSING_REQUIRED_FIELDS))
		return
	}
	user, err := services.RegisterUser(c.Request.Context(), &req)
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":       user.ID.Hex(),
			"name":     user.Name,
			"email":    user.Email,
			"userType": user.UserType,
		},
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

/*
* Verify credentials and issue a session token
 */
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.WriteError(c, util.AuthError(util.INVALID_CREDENTIALS))
		return
	}
	user, token, err := services.LoginUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":       user.ID.Hex(),
			"name":     user.Name,
			"email":    user.Email,
			"userType": user.UserType,
		},
	})
}
