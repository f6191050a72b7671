package controllers

import (
	"net/http"
	"strconv"

	"CareHub360/audit"
	"CareHub360/authorization"
	"CareHub360/services"
	"CareHub360/util"

	"github.com/gin-gonic/gin"
)

// Admin registers the audit and export side routes.
func Admin(r *gin.Engine) {
	admin := r.Group("/admin")
	{
		admin.GET("/audit", authorization.Authorize("audit", "view"), FetchAuditEvents)
		admin.GET("/appointments/export", authorization.Authorize("appointment", "export"), ExportAppointments)
	}
}

/*
* Most recent events first, limit from the query string
 */
func FetchAuditEvents(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	events, err := audit.List(c.Request.Context(), limit)
	if err != nil {
		util.WriteError(c, util.StoreError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

/*
* Render the ledger into a workbook and stream it
 */
func ExportAppointments(c *gin.Context) {
	appointments, err := services.ListAppointments(c.Request.Context())
	if err != nil {
		util.WriteError(c, err)
		return
	}
	workbook, err := services.BuildAppointmentsWorkbook(appointments)
	if err != nil {
		util.WriteError(c, util.StoreError(err))
		return
	}
	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		util.WriteError(c, util.StoreError(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="appointments.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buffer.Bytes())
}
