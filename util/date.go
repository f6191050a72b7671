package util

import (
	"strings"
	"time"
)

// DateLayout is the canonical calendar-day format stored for availability
// entries and appointments.
const DateLayout = "2006-01-02"

var acceptedDateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"02-01-2006",
}

// NormalizeDate parses a date in any accepted layout and returns the UTC
// calendar day as YYYY-MM-DD. Comparing normalized strings sidesteps the
// timezone sensitivity of comparing full timestamps.
func NormalizeDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", ValidationError(INVALID_DATE)
	}
	for _, layout := range acceptedDateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.UTC().Format(DateLayout), nil
		}
	}
	return "", ValidationError(INVALID_DATE)
}

// ParseClock validates an HH:MM clock value and returns it zero padded.
func ParseClock(value string) (string, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		return "", ValidationError(INVALID_TIME_SLOT)
	}
	return t.Format("15:04"), nil
}
