package services

import (
	"testing"

	"CareHub360/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUploadReport(t *testing.T) {
	valid := func() *UploadReportInput {
		return &UploadReportInput{
			Title:        "Blood panel",
			Description:  "Routine test results",
			PatientName:  "Rahul Verma",
			PatientEmail: "rahul.verma@example.com",
			DoctorName:   "Dr. Meredith Grey",
			FileName:     "panel.pdf",
			File:         []byte("%PDF-1.4"),
		}
	}
	assert.NoError(t, ValidateUploadReport(valid()))

	input := valid()
	input.File = nil
	err := ValidateUploadReport(input)
	require.Error(t, err)
	assert.Equal(t, util.MISSING_REQUIRED_FIELDS, err.Error())

	input = valid()
	input.PatientEmail = "   "
	err = ValidateUploadReport(input)
	require.Error(t, err)
	assert.Equal(t, util.PATIENT_EMAIL_REQUIRED, err.Error())
}
