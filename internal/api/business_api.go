package api

import (
	"context"
	"strconv"
	"time"

	"vault-tracker/internal/domain"
	"vault-tracker/internal/errors"
	"vault-tracker/internal/services"
)

// TrackingSession is the running tracking with its elapsed time rendered.
type TrackingSession struct {
	Tracking *domain.Tracking `json:"tracking"`
	Duration string           `json:"duration"`
}

// GetTracking returns a single tracking by ID
func (a *apiImpl) GetTracking(ctx context.Context, id int64) (*domain.Tracking, error) {
	if err := a.validator.ValidateTrackingID(id); err != nil {
		return nil, errors.NewValidationError("invalid tracking ID", err)
	}

	dbTracking, err := a.store.GetTracking(ctx, id)
	if err != nil {
		return nil, err
	}
	if dbTracking == nil {
		return nil, errors.NewNotFoundError("tracking", strconv.FormatInt(id, 10))
	}

	tracking := a.mapper.FromDatabase(*dbTracking)
	return &tracking, nil
}

// CurrentTracking returns the running session, or nil when nothing runs.
func (a *apiImpl) CurrentTracking(ctx context.Context) (*TrackingSession, error) {
	running, err := a.currentTracking(ctx)
	if err != nil || running == nil {
		return nil, err
	}
	return &TrackingSession{
		Tracking: running,
		Duration: a.services.TimeService.FormatTrackingDuration(*running),
	}, nil
}

// DayTrackings returns the trackings started on the given day, oldest first.
func (a *apiImpl) DayTrackings(ctx context.Context, day time.Time) []domain.Tracking {
	return a.mapper.FromDatabaseSlice(a.store.FetchTrackings(ctx, day, nil))
}

// RangeTrackings returns the trackings started between the two days, both inclusive.
func (a *apiImpl) RangeTrackings(ctx context.Context, from, to time.Time) ([]domain.Tracking, error) {
	if err := a.validator.ValidateDateRange(from, to); err != nil {
		return nil, errors.NewValidationError("invalid date range", err)
	}
	return a.mapper.FromDatabaseSlice(a.store.FetchTrackings(ctx, from, &to)), nil
}

func (a *apiImpl) DaySummary(ctx context.Context, day time.Time) *services.DaySummary {
	return a.services.ReportingService.SummarizeDay(day, a.DayTrackings(ctx, day))
}

func (a *apiImpl) Now() time.Time {
	return a.services.TimeService.Now()
}

func (a *apiImpl) Today() time.Time {
	return a.services.TimeService.Today()
}

func (a *apiImpl) IsToday(t time.Time) bool {
	return a.services.TimeService.IsToday(t)
}

func (a *apiImpl) Location() *time.Location {
	return a.services.TimeService.Location()
}

func (a *apiImpl) ParseDay(text string) (time.Time, error) {
	return a.services.TimeService.ParseDay(text)
}

func (a *apiImpl) ShiftDay(selected time.Time, delta int) (time.Time, bool) {
	return a.services.TimeService.ShiftDay(selected, delta)
}

// TimeText renders t as local wall-clock text in the form edits accept.
func (a *apiImpl) TimeText(t time.Time) string {
	return domain.FormatTimeText(t, a.Location())
}

func (a *apiImpl) FormatDuration(tracking domain.Tracking) string {
	return a.services.TimeService.FormatTrackingDuration(tracking)
}
