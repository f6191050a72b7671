package controllers

import (
	"net/http"

	"CareHub360/authorization"
	"CareHub360/services"
	"CareHub360/util"

	"github.com/gin-gonic/gin"
)

// PublicDoctor registers the patient-facing directory routes.
func PublicDoctor(r *gin.Engine) {
	doctors := r.Group("/doctors")
	{
		doctors.GET("", ListDoctors)
		doctors.GET("/:id", FetchDoctor)
		doctors.GET("/:id/slots", FetchDoctorSlots)
		doctors.POST("/availability", SetAvailability)
	}
}

// Doctor registers the admin directory routes.
func Doctor(r *gin.Engine) {
	doctors := r.Group("/doctors")
	{
		doctors.POST("", authorization.Authorize("doctor", "create"), CreateDoctor)
		doctors.PATCH("/:id", authorization.Authorize("doctor", "update"), UpdateDoctorAvailable)
	}
}

/*
* Optional exact department filter from the query string
 */
func ListDoctors(c *gin.Context) {
	doctors, err := services.ListDoctors(c.Request.Context(), c.Query("department"))
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func FetchDoctor(c *gin.Context) {
	doctor, err := services.GetDoctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

/*
* Date comes from the query string, normalized server side
 */
func FetchDoctorSlots(c *gin.Context) {
	date, slots, err := services.FindSlotsForDate(c.Request.Context(), c.Param("id"), c.Query("date"))
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "timeSlots": slots})
}

/*
* Bind JSON
* And pass to the service
 */
func CreateDoctor(c *gin.Context) {
	var req services.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if vErr := services.ValidateCreateDoctor(&req); vErr != nil {
			util.WriteError(c, vErr)
			return
		}
		util.WriteError(c, util.ValidationError(util.MISSING_REQUIRED_FIELDS))
		return
	}
	doctor, err := services.CreateDoctor(c.Request.Context(), &req, c.GetString("email"))
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doctor)
}

type updateAvailableRequest struct {
	Available *bool `json:"available" binding:"required"`
}

/*
* Toggle the doctor's global visibility flag
 */
func UpdateDoctorAvailable(c *gin.Context) {
	var req updateAvailableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.WriteError(c, util.ValidationError(util.MISSING_REQUIRED_FIELDS))
		return
	}
	doctor, err := services.SetDoctorAvailable(c.Request.Context(), c.Param("id"), *req.Available, c.GetString("email"))
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

type availabilityRequest struct {
	DoctorId string `json:"doctorId" binding:"required"`
	Date     string `json:"date" binding:"required"`
	TimeSlot struct {
		StartTime string `json:"startTime" binding:"required"`
		EndTime   string `json:"endTime"`
		IsBooked  bool   `json:"isBooked"`
	} `json:"timeSlot" binding:"required"`
}

/*
* Locate the slot for the given date and mark it booked
* The write is conditional on the slot being free
 */
func SetAvailability(c *gin.Context) {
	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.WriteError(c, util.ValidationError(util.MISSING_REQUIRED_FIELDS))
		return
	}
	err := services.BookSlot(c.Request.Context(), req.DoctorId, req.Date, req.TimeSlot.StartTime, req.TimeSlot.EndTime)
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
