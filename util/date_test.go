package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain date", "2026-09-14", "2026-09-14", false},
		{"rfc3339 utc", "2026-09-14T10:30:00Z", "2026-09-14", false},
		{"rfc3339 with offset", "2026-09-15T01:30:00+05:30", "2026-09-14", false},
		{"millisecond timestamp", "2026-09-14T00:00:00.000Z", "2026-09-14", false},
		{"day first", "14-09-2026", "2026-09-14", false},
		{"surrounding whitespace", "  2026-09-14  ", "2026-09-14", false},
		{"empty", "", "", true},
		{"garbage", "next tuesday", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Two timestamps naming the same calendar day in different zones must
// normalize identically, otherwise slot lookups miss.
func TestNormalizeDate_TimezoneInsensitive(t *testing.T) {
	a, err := NormalizeDate("2026-09-14T23:00:00Z")
	assert.NoError(t, err)
	b, err := NormalizeDate("2026-09-14")
	assert.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParseClock(t *testing.T) {
	got, err := ParseClock("9:05")
	assert.NoError(t, err)
	assert.Equal(t, "09:05", got)

	got, err = ParseClock(" 10:00 ")
	assert.NoError(t, err)
	assert.Equal(t, "10:00", got)

	_, err = ParseClock("25:00")
	assert.Error(t, err)
	_, err = ParseClock("10am")
	assert.Error(t, err)
	_, err = ParseClock("")
	assert.Error(t, err)
}
