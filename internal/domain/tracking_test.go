package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTracking_IsOpen(t *testing.T) {
	start := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	assert.True(t, Tracking{StartTime: start}.IsOpen())
	assert.False(t, Tracking{StartTime: start, EndTime: &end}.IsOpen())
}

func TestTracking_Duration(t *testing.T) {
	start := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)
	now := start.Add(3 * time.Hour)

	tests := []struct {
		name     string
		tracking Tracking
		expected time.Duration
	}{
		{"closed tracking", Tracking{StartTime: start, EndTime: &end}, 90 * time.Minute},
		{"open tracking counts to now", Tracking{StartTime: start}, 3 * time.Hour},
		{"start after now", Tracking{StartTime: now.Add(time.Minute)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.tracking.Duration(now))
		})
	}
}
