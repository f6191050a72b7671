package controllers

import (
	"net/http"

	"CareHub360/authorization"
	"CareHub360/models"
	"CareHub360/services"
	"CareHub360/util"

	"github.com/gin-gonic/gin"
)

// User registers the account CRUD routes.
func User(r *gin.Engine) {
	users := r.Group("/users")
	{
		users.GET("", authorization.Authorize("user", "view"), FetchAllUsers)
		users.POST("", authorization.Authorize("user", "create"), CreateUser)
		users.PUT("/:id", authorization.Authorize("user", "update"), UpdateUser)
		users.DELETE("/:id", authorization.Authorize("user", "delete"), DeleteUser)
	}
}

func FetchAllUsers(c *gin.Context) {
	users, err := services.ListUsers(c.Request.Context())
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

/*
* Admin account creation shares the registration contract
 */
func CreateUser(c *gin.Context) {
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
	c.JSON(http.StatusCreated, user)
}

/*
* Non admins may only update their own account
 */
func UpdateUser(c *gin.Context) {
	userId := c.Param("id")
	if c.GetString("userType") != models.UserTypeAdmin && c.GetString("userId") != userId {
		util.WriteError(c, util.AuthError(util.ACCESS_DENIED))
		return
	}

	var req services.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.WriteError(c, util.ValidationError(util.MISSING_REQUIRED_FIELDS))
		return
	}
	user, err := services.UpdateUser(c.Request.Context(), userId, &req, c.GetString("email"))
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func DeleteUser(c *gin.Context) {
	if err := services.DeleteUser(c.Request.Context(), c.Param("id"), c.GetString("email")); err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
