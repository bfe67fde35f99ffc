package api

import (
	"context"
	"log/slog"
	"time"

	"vault-tracker/internal/domain"
	"vault-tracker/internal/errors"
	"vault-tracker/internal/events"
	"vault-tracker/internal/logging"
	"vault-tracker/internal/repository/sqlite"
	"vault-tracker/internal/services"
	"vault-tracker/internal/validation"
)

// API is the surface the CLI and the day view drive. Every mutation is
// validated, applied, saved and then announced on the event bus.
type API interface {
	// Tracking workflows
	StartTracking(ctx context.Context, description string) (*domain.Tracking, error)
	StopTracking(ctx context.Context) (*domain.Tracking, error)
	ResumeTracking(ctx context.Context, id int64) (*domain.Tracking, error)
	EditTracking(ctx context.Context, id int64, description, startText, endText string) error
	DeleteTracking(ctx context.Context, id int64) error

	// Queries
	GetTracking(ctx context.Context, id int64) (*domain.Tracking, error)
	CurrentTracking(ctx context.Context) (*TrackingSession, error)
	DayTrackings(ctx context.Context, day time.Time) []domain.Tracking
	RangeTrackings(ctx context.Context, from, to time.Time) ([]domain.Tracking, error)
	DaySummary(ctx context.Context, day time.Time) *services.DaySummary

	// Days and clock
	Now() time.Time
	Today() time.Time
	IsToday(t time.Time) bool
	Location() *time.Location
	ParseDay(text string) (time.Time, error)
	ShiftDay(selected time.Time, delta int) (time.Time, bool)
	TimeText(t time.Time) string
	FormatDuration(tracking domain.Tracking) string

	Subscribe(fn func(events.Event)) func()
	Save(ctx context.Context) error
	Close(ctx context.Context) error
}

type apiImpl struct {
	store     sqlite.Repository
	mapper    *domain.TrackingMapper
	services  *services.ServiceContainer
	validator *validation.TrackingValidator
	bus       *events.Bus
	logger    *slog.Logger
}

// New creates the API around an open store. Nil collaborators other than
// the store fall back to defaults.
func New(store sqlite.Repository, svc *services.ServiceContainer, validator *validation.TrackingValidator, bus *events.Bus, logger *slog.Logger) API {
	if svc == nil {
		svc = services.NewServiceContainer(time.Local, time.Now)
	}
	if validator == nil {
		validator = validation.NewTrackingValidator()
	}
	if bus == nil {
		bus = events.NewBus()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &apiImpl{
		store:     store,
		mapper:    domain.NewTrackingMapper(),
		services:  svc,
		validator: validator,
		bus:       bus,
		logger:    logger,
	}
}

// StartTracking ends the running tracking, if any, and starts a new one.
func (a *apiImpl) StartTracking(ctx context.Context, description string) (*domain.Tracking, error) {
	normalized, err := a.validator.ValidateDescription(description)
	if err != nil {
		return nil, errors.NewValidationError("invalid description", err)
	}

	if err := a.store.SwitchTracking(ctx, normalized); err != nil {
		return nil, err
	}
	if err := a.save(ctx); err != nil {
		return nil, err
	}

	started, err := a.currentTracking(ctx)
	if err != nil {
		return nil, err
	}
	var id int64
	if started != nil {
		id = started.ID
	}
	a.logger.Info("tracking started", "id", id, "description", normalized)
	a.bus.Publish(events.Event{Kind: events.Started, TrackingID: id})
	return started, nil
}

// StopTracking ends the running tracking. It returns nil when nothing was running.
func (a *apiImpl) StopTracking(ctx context.Context) (*domain.Tracking, error) {
	running, err := a.currentTracking(ctx)
	if err != nil {
		return nil, err
	}
	if running == nil {
		return nil, nil
	}

	if err := a.store.EndLastTracking(ctx); err != nil {
		return nil, err
	}
	if err := a.save(ctx); err != nil {
		return nil, err
	}

	stopped, err := a.store.GetTracking(ctx, running.ID)
	if err != nil {
		return nil, err
	}
	a.logger.Info("tracking stopped", "id", running.ID)
	a.bus.Publish(events.Event{Kind: events.Stopped, TrackingID: running.ID})
	if stopped == nil {
		return nil, nil
	}
	tracking := a.mapper.FromDatabase(*stopped)
	return &tracking, nil
}

// ResumeTracking starts a new tracking with the description of an existing one.
func (a *apiImpl) ResumeTracking(ctx context.Context, id int64) (*domain.Tracking, error) {
	previous, err := a.GetTracking(ctx, id)
	if err != nil {
		return nil, err
	}
	return a.StartTracking(ctx, previous.Description)
}

// EditTracking overwrites a tracking's description and times. Times are
// local wall-clock text; an empty end text reopens the tracking. Editing an
// id that does not exist succeeds without changing anything.
func (a *apiImpl) EditTracking(ctx context.Context, id int64, description, startText, endText string) error {
	normalized, err := a.validator.ValidateForEdit(id, description, startText, endText)
	if err != nil {
		return errors.NewValidationError("invalid tracking edit", err)
	}

	var end sqlite.TimeValue
	if endText != "" {
		end = sqlite.TimeText(endText)
	}
	if err := a.store.UpdateTracking(ctx, id, normalized, sqlite.TimeText(startText), end); err != nil {
		return err
	}
	if err := a.save(ctx); err != nil {
		return err
	}

	if !a.validator.IsOrdered(startText, endText) {
		a.logger.Warn("edited tracking ends before it starts", "id", id, "start", startText, "end", endText)
	}
	a.logger.Info("tracking edited", "id", id)
	a.bus.Publish(events.Event{Kind: events.Edited, TrackingID: id})
	return nil
}

// DeleteTracking removes a tracking. Deleting a missing id succeeds.
func (a *apiImpl) DeleteTracking(ctx context.Context, id int64) error {
	if err := a.validator.ValidateTrackingID(id); err != nil {
		return errors.NewValidationError("invalid tracking ID", err)
	}

	if err := a.store.DeleteTracking(ctx, id); err != nil {
		return err
	}
	if err := a.save(ctx); err != nil {
		return err
	}

	a.logger.Info("tracking deleted", "id", id)
	a.bus.Publish(events.Event{Kind: events.Deleted, TrackingID: id})
	return nil
}

func (a *apiImpl) Subscribe(fn func(events.Event)) func() {
	return a.bus.Subscribe(fn)
}

func (a *apiImpl) Save(ctx context.Context) error {
	return a.save(ctx)
}

// Close saves the database one last time and releases the store.
func (a *apiImpl) Close(ctx context.Context) error {
	saveErr := a.save(ctx)
	if err := a.store.Close(); err != nil {
		return err
	}
	return saveErr
}

func (a *apiImpl) save(ctx context.Context) error {
	if err := a.store.Save(ctx); err != nil {
		a.logger.Error("saving tracking database failed", "error", err)
		return err
	}
	return nil
}

func (a *apiImpl) currentTracking(ctx context.Context) (*domain.Tracking, error) {
	current, err := a.store.CurrentTracking(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}
	tracking := a.mapper.FromDatabase(*current)
	return &tracking, nil
}
