package domain

import (
	"time"
)

// Tracking is a named span of work. This is a pure domain model without
// database-specific concerns.
type Tracking struct {
	ID          int64
	Description string
	StartTime   time.Time
	EndTime     *time.Time
}

// IsOpen returns true while the tracking has no end time.
func (t Tracking) IsOpen() bool {
	return t.EndTime == nil
}

// Duration returns the tracked time. An open tracking counts up to now.
func (t Tracking) Duration(now time.Time) time.Duration {
	end := now
	if t.EndTime != nil {
		end = *t.EndTime
	}
	if end.Before(t.StartTime) {
		return 0
	}
	return end.Sub(t.StartTime)
}
