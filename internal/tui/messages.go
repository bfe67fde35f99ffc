package tui

import (
	"time"

	"vault-tracker/internal/domain"
	"vault-tracker/internal/events"
)

// TickMsg advances the clock shown for running trackings.
type TickMsg time.Time

// TrackingsMsg carries a freshly loaded day.
type TrackingsMsg struct {
	Day       time.Time
	Trackings []domain.Tracking
}

// ChangedMsg wraps an event from the tracking bus.
type ChangedMsg struct {
	Event events.Event
}

// ActionDoneMsg reports the outcome of a start or stop.
type ActionDoneMsg struct {
	Status string
	Err    error
}
