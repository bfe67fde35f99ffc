package sqlite

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"vault-tracker/internal/blob"
	"vault-tracker/internal/errors"
	"vault-tracker/internal/logging"
)

// Repository defines the tracking operations the rest of the application uses.
type Repository interface {
	// Write operations
	CreateTracking(ctx context.Context, description string) error
	EndLastTracking(ctx context.Context) error
	SwitchTracking(ctx context.Context, description string) error
	UpdateTracking(ctx context.Context, id int64, description string, start TimeValue, end TimeValue) error
	DeleteTracking(ctx context.Context, id int64) error

	// Read operations
	FetchTrackings(ctx context.Context, startPeriod time.Time, endPeriod *time.Time) []*Tracking
	CurrentTracking(ctx context.Context) (*Tracking, error)
	GetTracking(ctx context.Context, id int64) (*Tracking, error)

	// Persistence
	Save(ctx context.Context) error
	Close() error
}

// Store keeps the tracking table in an in-memory SQLite database whose
// serialized image lives in a blob store. Mutations only reach the blob on Save.
type Store struct {
	mu     sync.Mutex
	h      *handle
	blobs  blob.Store
	path   string
	loc    *time.Location
	now    func() time.Time
	logger *slog.Logger
}

var _ Repository = (*Store)(nil)

// Open loads the image at path from blobs. A missing or unreadable image is
// logged and replaced by an empty database. The schema is ensured and the
// image written back once, so the file exists even without trackings.
func Open(ctx context.Context, blobs blob.Store, path string, opts ...Option) (*Store, error) {
	s := &Store{
		blobs:  blobs,
		path:   path,
		loc:    time.Local,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	h, err := s.openImage(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	s.h = h

	if err := s.h.applySchema(ctx); err != nil {
		s.h.close()
		return nil, errors.NewDatabaseError("ensure schema", err)
	}

	if err := s.Save(ctx); err != nil {
		s.h.close()
		return nil, err
	}
	logging.Debugln("opened tracking database", s.path)
	return s, nil
}

func (s *Store) openImage(ctx context.Context) (*handle, error) {
	image := s.readImage(ctx)

	h, err := openHandle(ctx)
	if err != nil {
		return nil, err
	}
	if len(image) == 0 {
		return h, nil
	}

	if err := h.load(ctx, image); err != nil {
		s.logger.Warn("tracking database unreadable, starting empty", "path", s.path, "error", err)
		h.close()
		return openHandle(ctx)
	}
	return h, nil
}

// readImage returns nil when there is nothing usable to load.
func (s *Store) readImage(ctx context.Context) []byte {
	exists, err := s.blobs.Exists(ctx, s.path)
	if err != nil {
		s.logger.Warn("cannot check tracking database", "path", s.path, "error", err)
		return nil
	}
	if !exists {
		return nil
	}
	image, err := s.blobs.ReadBinary(ctx, s.path)
	if err != nil {
		s.logger.Warn("cannot read tracking database, starting empty", "path", s.path, "error", err)
		return nil
	}
	return image
}

// Save writes the full database image to the blob store.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	image, err := s.h.image()
	if err != nil {
		return errors.NewDatabaseError("serialize database", err)
	}
	if err := s.blobs.WriteBinary(ctx, s.path, image); err != nil {
		if errors.IsAppError(err) {
			return err
		}
		return errors.NewStorageError("write", s.path, err)
	}
	logging.Debugf("saved %s (%d bytes)\n", s.path, len(image))
	return nil
}

// Close releases the database without saving.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.close()
}

// CreateTracking starts a new open tracking at the current time.
func (s *Store) CreateTracking(ctx context.Context, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createTracking(ctx, s.h.conn, description)
}

// EndLastTracking closes the open tracking with the latest start. It does
// nothing when no tracking is open.
func (s *Store) EndLastTracking(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.endLastTracking(ctx, s.h.conn)
}

// SwitchTracking ends the open tracking and starts a new one in a single
// transaction.
func (s *Store) SwitchTracking(ctx context.Context, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.h.conn.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin switch", err)
	}
	defer tx.Rollback()

	if err := s.endLastTracking(ctx, tx); err != nil {
		return err
	}
	if err := s.createTracking(ctx, tx, description); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit switch", err)
	}
	return nil
}

func (s *Store) createTracking(ctx context.Context, q querier, description string) error {
	query := `
	INSERT INTO tracking (description, startTime, endTime)
	VALUES (?, ?, NULL)`

	return execute(ctx, q, "create tracking", query, description, FormatTimeSQL(s.now()))
}

func (s *Store) endLastTracking(ctx context.Context, q querier) error {
	query := `
	UPDATE tracking
	SET endTime = ?
	WHERE id = (
		SELECT id FROM tracking
		WHERE endTime IS NULL
		ORDER BY startTime DESC, id DESC
		LIMIT 1
	)`

	return execute(ctx, q, "end tracking", query, FormatTimeSQL(s.now()))
}

// UpdateTracking overwrites description, start and end of the tracking with
// id. A nil end reopens the tracking. Updating a missing id does nothing.
func (s *Store) UpdateTracking(ctx context.Context, id int64, description string, start TimeValue, end TimeValue) error {
	if start == nil {
		return errors.NewInvalidInputError("start", nil, "start time is required")
	}
	startSQL, err := timeValueToUTC(start, s.loc)
	if err != nil {
		return err
	}

	var endSQL any
	if end != nil {
		text, err := timeValueToUTC(end, s.loc)
		if err != nil {
			return err
		}
		endSQL = text
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
	UPDATE tracking
	SET description = ?, startTime = ?, endTime = ?
	WHERE id = ?`

	return execute(ctx, s.h.conn, "update tracking", query, description, startSQL, endSQL, id)
}

// DeleteTracking removes the tracking with id, if present.
func (s *Store) DeleteTracking(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return execute(ctx, s.h.conn, "delete tracking", `DELETE FROM tracking WHERE id = ?`, id)
}

// FetchTrackings returns the trackings that started between the UTC
// midnight of startPeriod and the end of the UTC day of endPeriod, or of
// startPeriod when endPeriod is nil, ordered by start. A failing query is
// logged and yields an empty result.
func (s *Store) FetchTrackings(ctx context.Context, startPeriod time.Time, endPeriod *time.Time) []*Tracking {
	last := startPeriod
	if endPeriod != nil {
		last = *endPeriod
	}
	from := DayStart(startPeriod)
	until := DayStart(last).AddDate(0, 0, 1)

	query := `
	SELECT ` + trackingColumns + `
	FROM tracking
	WHERE startTime >= ? AND startTime < ?
	ORDER BY startTime ASC, id ASC`

	s.mu.Lock()
	defer s.mu.Unlock()

	trackings, err := QueryMultiple(ctx, s.h.conn, query, ScanTrackings, "trackings", FormatTimeSQL(from), FormatTimeSQL(until))
	if err != nil {
		s.logger.Warn("fetch trackings failed", "from", from, "until", until, "error", err)
		return []*Tracking{}
	}
	logging.Debugf("fetched %d trackings from %s until %s\n", len(trackings), FormatTimeSQL(from), FormatTimeSQL(until))
	return trackings
}

// CurrentTracking returns the open tracking with the latest start, or nil.
func (s *Store) CurrentTracking(ctx context.Context) (*Tracking, error) {
	query := `
	SELECT ` + trackingColumns + `
	FROM tracking
	WHERE endTime IS NULL
	ORDER BY startTime DESC, id DESC
	LIMIT 1`

	s.mu.Lock()
	defer s.mu.Unlock()
	return QuerySingle(ctx, s.h.conn, query, ScanTracking, "tracking")
}

// GetTracking returns the tracking with id, or nil when it does not exist.
func (s *Store) GetTracking(ctx context.Context, id int64) (*Tracking, error) {
	query := `
	SELECT ` + trackingColumns + `
	FROM tracking
	WHERE id = ?`

	s.mu.Lock()
	defer s.mu.Unlock()
	return QuerySingle(ctx, s.h.conn, query, ScanTracking, "tracking", id)
}
