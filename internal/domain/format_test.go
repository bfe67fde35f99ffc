package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		input    time.Duration
		expected string
	}{
		{0, "0s"},
		{999 * time.Millisecond, "0s"},
		{42 * time.Second, "42s"},
		{time.Minute, "1m 0s"},
		{time.Hour, "1h 0s"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1h 2m 3s"},
		{26*time.Hour + 5*time.Second, "26h 5s"},
		{-time.Minute, "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.input))
		})
	}
}

func TestFormatDateAndClock(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*3600)
	instant := time.Date(2024, 3, 9, 23, 5, 7, 0, time.UTC)

	assert.Equal(t, "10/03/2024", FormatDate(instant, zone))
	assert.Equal(t, "09/03/2024", FormatDate(instant, time.UTC))
	assert.Equal(t, "01:05", FormatClock(instant, zone))
	assert.Equal(t, "2024-03-10 01:05:07", FormatTimeText(instant, zone))
}
