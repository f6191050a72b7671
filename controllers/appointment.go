package controllers

import (
	"net/http"

	"CareHub360/authorization"
	"CareHub360/services"
	"CareHub360/util"

	"github.com/gin-gonic/gin"
)

// PublicAppointment registers the patient-facing booking route.
func PublicAppointment(r *gin.Engine) {
	r.POST("/appointments", CreateAppointment)
}

// Appointment registers the ledger management routes.
func Appointment(r *gin.Engine) {
	appointments := r.Group("/appointments")
	{
		appointments.GET("", authorization.Authorize("appointment", "view"), FetchAllAppointments)
		appointments.GET("/:id", authorization.Authorize("appointment", "view"), FetchAppointment)
		appointments.PATCH("/:id", authorization.Authorize("appointment", "update"), UpdateAppointmentStatus)
		appointments.DELETE("/:id", authorization.Authorize("appointment", "delete"), DeleteAppointment)
	}
}

/*
* Bind JSON
* And pass to the booking workflow
 */
func CreateAppointment(c *gin.Context) {
	var req services.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if vErr := services.ValidateCreateAppointment(&req); vErr != nil {
			util.WriteError(c, vErr)
			return
		}
		util.WriteError(c, util.ValidationError(util.MISSING_REQUIRED_FIELDS))
		return
	}
	appointment, err := services.CreateAppointment(c.Request.Context(), &req)
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":      appointment.ID.Hex(),
		"message": "Appointment booked successfully",
	})
}

func FetchAllAppointments(c *gin.Context) {
	appointments, err := services.ListAppointments(c.Request.Context())
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func FetchAppointment(c *gin.Context) {
	appointment, err := services.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointment)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

/*
* Get appointmentId from param
* Move the appointment through its lifecycle
 */
func UpdateAppointmentStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.WriteError(c, util.ValidationError(util.STATUS_REQUIRED))
		return
	}
	updated, err := services.UpdateAppointmentStatus(c.Request.Context(), c.Param("id"), req.Status, c.GetString("email"))
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func DeleteAppointment(c *gin.Context) {
	if err := services.DeleteAppointment(c.Request.Context(), c.Param("id"), c.GetString("email")); err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Appointment deleted successfully"})
}
