package services

import (
	"testing"
	"time"

	"CareHub360/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAppointmentsWorkbook(t *testing.T) {
	created := time.Date(2026, 9, 10, 8, 30, 0, 0, time.UTC)
	views := []AppointmentView{
		{
			ID:         "64f1a2b3c4d5e6f708192a3b",
			Date:       "2026-09-14",
			Time:       "09:00",
			Status:     models.StatusScheduled,
			Department: "Cardiology",
			Doctor:     &DoctorSummary{Name: "Dr. Meredith Grey"},
			Patient: models.PatientSnapshot{
				Name:  "Rahul Verma",
				Email: "rahul.verma@example.com",
				Phone: "9876543210",
			},
			CreatedAt: created,
		},
		{
			ID:         "64f1a2b3c4d5e6f708192a3c",
			Date:       "2026-09-15",
			Status:     models.StatusCancelled,
			Department: "Dentistry",
			// doctor removed from the directory after booking
			Doctor:    nil,
			Patient:   models.PatientSnapshot{Name: "Asha Nair", Email: "asha.nair@example.com"},
			CreatedAt: created,
		},
	}

	f, err := BuildAppointmentsWorkbook(views)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Appointments", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", header)

	name, err := f.GetCellValue("Appointments", "F2")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Meredith Grey", name)

	// missing doctor renders as an empty cell, not a crash
	name, err = f.GetCellValue("Appointments", "F3")
	require.NoError(t, err)
	assert.Equal(t, "", name)

	status, err := f.GetCellValue("Appointments", "D3")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, status)

	createdAt, err := f.GetCellValue("Appointments", "J2")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-10T08:30:00Z", createdAt)
}
