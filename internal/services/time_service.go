package services

import (
	"strings"
	"time"

	"vault-tracker/internal/domain"
	"vault-tracker/internal/errors"
	"vault-tracker/internal/repository/sqlite"
)

const dayLayout = "2006-01-02"

// timeServiceImpl implements the TimeService interface
type timeServiceImpl struct {
	loc *time.Location
	now func() time.Time
}

// NewTimeService creates a new TimeService instance. Nil arguments fall back
// to time.Local and time.Now.
func NewTimeService(loc *time.Location, now func() time.Time) TimeService {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &timeServiceImpl{loc: loc, now: now}
}

func (t *timeServiceImpl) Now() time.Time {
	return t.now()
}

func (t *timeServiceImpl) Location() *time.Location {
	return t.loc
}

// Today returns the start of the current UTC day.
func (t *timeServiceImpl) Today() time.Time {
	return sqlite.DayStart(t.now())
}

// DayRange returns the UTC day containing day, the same window the store
// fetches for a single day.
func (t *timeServiceImpl) DayRange(day time.Time) DayRange {
	start := sqlite.DayStart(day)
	return DayRange{
		Start: start,
		End:   start.AddDate(0, 0, 1),
	}
}

// ShiftDay moves the selected day by delta days. Moving past today is
// refused and returns the selection unchanged with false.
func (t *timeServiceImpl) ShiftDay(selected time.Time, delta int) (time.Time, bool) {
	shifted := sqlite.DayStart(selected).AddDate(0, 0, delta)
	if shifted.After(t.Today()) {
		return sqlite.DayStart(selected), false
	}
	return shifted, true
}

// IsToday checks if a given time is within the current UTC day
func (t *timeServiceImpl) IsToday(timeValue time.Time) bool {
	return sqlite.DayStart(timeValue).Equal(t.Today())
}

// ParseDay accepts "", "today", "yesterday" or YYYY-MM-DD and returns the
// start of that UTC day.
func (t *timeServiceImpl) ParseDay(text string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "", "today":
		return t.Today(), nil
	case "yesterday":
		return t.Today().AddDate(0, 0, -1), nil
	}

	day, err := time.ParseInLocation(dayLayout, strings.TrimSpace(text), time.UTC)
	if err != nil {
		return time.Time{}, errors.NewInvalidInputError("date", text, "expected YYYY-MM-DD, today or yesterday")
	}
	return day, nil
}

// FormatTrackingDuration renders the tracking's duration, counting an open
// tracking up to now.
func (t *timeServiceImpl) FormatTrackingDuration(tracking domain.Tracking) string {
	return domain.FormatDuration(tracking.Duration(t.now()))
}
