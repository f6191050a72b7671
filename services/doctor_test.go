package services

import (
	"testing"
	"time"

	"CareHub360/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func validDoctorRequest() *CreateDoctorRequest {
	return &CreateDoctorRequest{
		Name:           "Dr. Meredith Grey",
		Department:     "Cardiology",
		Qualification:  "MD",
		Experience:     intPtr(8),
		Specialization: "Interventional Cardiology",
	}
}

func TestValidateCreateDoctor(t *testing.T) {
	assert.NoError(t, ValidateCreateDoctor(validDoctorRequest()))

	tests := []struct {
		name    string
		mutate  func(*CreateDoctorRequest)
		message string
	}{
		{"missing name", func(r *CreateDoctorRequest) { r.Name = "" }, util.MISSING_REQUIRED_FIELDS},
		{"missing qualification", func(r *CreateDoctorRequest) { r.Qualification = "" }, util.MISSING_REQUIRED_FIELDS},
		{"missing experience", func(r *CreateDoctorRequest) { r.Experience = nil }, util.MISSING_REQUIRED_FIELDS},
		{"unknown department", func(r *CreateDoctorRequest) { r.Department = "Astrology" }, util.INVALID_DEPARTMENT},
		{"negative experience", func(r *CreateDoctorRequest) { r.Experience = intPtr(-1) }, util.INVALID_EXPERIENCE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validDoctorRequest()
			tt.mutate(req)
			err := ValidateCreateDoctor(req)
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestDefaultAvailability(t *testing.T) {
	// Monday 2026-09-14
	start := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	availability := DefaultAvailability(start)

	require.NotEmpty(t, availability)
	assert.Equal(t, "2026-09-14", availability[0].Date)
	// 30 calendar days starting on a Monday hold 22 weekdays
	assert.Len(t, availability, 22)

	seen := map[string]bool{}
	for _, entry := range availability {
		day, err := time.Parse(util.DateLayout, entry.Date)
		require.NoError(t, err)
		assert.NotEqual(t, time.Saturday, day.Weekday(), entry.Date)
		assert.NotEqual(t, time.Sunday, day.Weekday(), entry.Date)
		assert.False(t, seen[entry.Date], "duplicate date %s", entry.Date)
		seen[entry.Date] = true

		require.Len(t, entry.TimeSlots, 2)
		assert.Equal(t, "09:00", entry.TimeSlots[0].StartTime)
		assert.Equal(t, "10:00", entry.TimeSlots[0].EndTime)
		assert.Equal(t, "10:00", entry.TimeSlots[1].StartTime)
		assert.Equal(t, "11:00", entry.TimeSlots[1].EndTime)
		assert.False(t, entry.TimeSlots[0].IsBooked)
		assert.False(t, entry.TimeSlots[1].IsBooked)
	}

	// window never extends past the 30th day
	last, err := time.Parse(util.DateLayout, availability[len(availability)-1].Date)
	require.NoError(t, err)
	assert.True(t, last.Before(start.AddDate(0, 0, 30)))
}

// Weekend starts still begin the window on the start day itself, with the
// weekend entries skipped.
func TestDefaultAvailability_WeekendStart(t *testing.T) {
	// Saturday 2026-09-12
	start := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	availability := DefaultAvailability(start)
	require.NotEmpty(t, availability)
	assert.Equal(t, "2026-09-14", availability[0].Date)
}
