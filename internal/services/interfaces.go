package services

import (
	"time"

	"vault-tracker/internal/domain"
)

// DayRange is one UTC calendar day, [Start, End).
type DayRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the day.
func (r DayRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// DescriptionTotal aggregates the trackings of a day that share a description.
type DescriptionTotal struct {
	Description string        `json:"description"`
	Duration    time.Duration `json:"duration"`
	Sessions    int           `json:"sessions"`
	FirstStart  time.Time     `json:"first_start"`
	Running     bool          `json:"running"`
}

// DaySummary is the report for one day.
type DaySummary struct {
	Day      DayRange           `json:"day"`
	Totals   []DescriptionTotal `json:"totals"` // ordered by first start
	Total    time.Duration      `json:"total"`
	Sessions int                `json:"sessions"`
	Running  bool               `json:"running"`
}

// TimeService handles day arithmetic and duration display.
type TimeService interface {
	Now() time.Time
	Location() *time.Location

	// Day operations
	Today() time.Time
	DayRange(day time.Time) DayRange
	ShiftDay(selected time.Time, delta int) (time.Time, bool)
	IsToday(t time.Time) bool
	ParseDay(text string) (time.Time, error)

	// Duration operations
	FormatTrackingDuration(tracking domain.Tracking) string
}

// ReportingService aggregates trackings into summaries.
type ReportingService interface {
	SummarizeDay(day time.Time, trackings []domain.Tracking) *DaySummary
	CalculateTotalDuration(trackings []domain.Tracking) time.Duration
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TimeService      TimeService
	ReportingService ReportingService
}

// NewServiceContainer wires the services around one clock and zone.
func NewServiceContainer(loc *time.Location, now func() time.Time) *ServiceContainer {
	timeService := NewTimeService(loc, now)
	return &ServiceContainer{
		TimeService:      timeService,
		ReportingService: NewReportingService(timeService),
	}
}
