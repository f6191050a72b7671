package controllers

import (
	"io"
	"net/http"

	"CareHub360/authorization"
	"CareHub360/services"
	"CareHub360/util"

	"github.com/gin-gonic/gin"
)

// Report registers the medical-report routes.
func Report(r *gin.Engine) {
	reports := r.Group("/reports")
	{
		reports.GET("", authorization.Authorize("report", "view"), FetchReports)
		reports.POST("/upload", authorization.Authorize("report", "create"), UploadReport)
		reports.GET("/:id/download", authorization.Authorize("report", "view"), DownloadReport)
		reports.DELETE("/:id", authorization.Authorize("report", "delete"), DeleteReport)
	}
}

/*
* List by patientId or email, newest first
 */
func FetchReports(c *gin.Context) {
	reports, err := services.ListReports(c.Request.Context(), c.Query("patientId"), c.Query("email"))
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

/*
* Parse the multipart form and read the file bytes
* Pass to the service
 */
func UploadReport(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		util.WriteError(c, util.ValidationError(util.MISSING_REQUIRED_FIELDS))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		util.WriteError(c, util.ValidationError(util.MISSING_REQUIRED_FIELDS))
		return
	}
	defer file.Close()
	payload, err := io.ReadAll(file)
	if err != nil {
		util.WriteError(c, util.StoreError(err))
		return
	}

	input := &services.UploadReportInput{
		Title:        c.PostForm("title"),
		Description:  c.PostForm("description"),
		PatientName:  c.PostForm("patientName"),
		PatientEmail: c.PostForm("patientEmail"),
		DoctorName:   c.PostForm("doctorName"),
		ReportDate:   c.PostForm("reportDate"),
		FileName:     fileHeader.Filename,
		MimeType:     fileHeader.Header.Get("Content-Type"),
		File:         payload,
	}
	report, err := services.UploadReport(c.Request.Context(), input, c.GetString("email"))
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Report uploaded successfully",
		"reportId": report.ID.Hex(),
	})
}

/*
* Stream the stored bytes back with the stored mime type
 */
func DownloadReport(c *gin.Context) {
	report, err := services.GetReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		util.WriteError(c, err)
		return
	}
	mimeType := report.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	c.Header("Content-Disposition", `attachment; filename="`+report.FileName+`"`)
	c.Data(http.StatusOK, mimeType, report.File)
}

func DeleteReport(c *gin.Context) {
	if err := services.DeleteReport(c.Request.Context(), c.Param("id"), c.GetString("email")); err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
