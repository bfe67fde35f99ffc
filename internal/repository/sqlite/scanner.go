package sqlite

import (
	"database/sql"
	"time"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// trackingColumns selects timestamps as epoch milliseconds so they scan
// straight into instants.
const trackingColumns = `id, description, unixepoch(startTime) * 1000, unixepoch(endTime) * 1000`

// ScanTracking scans one row selected with trackingColumns.
func ScanTracking(scanner Scanner) (*Tracking, error) {
	tracking := &Tracking{}
	var startMillis int64
	var endMillis sql.NullInt64

	if err := scanner.Scan(&tracking.ID, &tracking.Description, &startMillis, &endMillis); err != nil {
		return nil, err
	}

	tracking.StartTime = time.UnixMilli(startMillis).UTC()
	if endMillis.Valid {
		end := time.UnixMilli(endMillis.Int64).UTC()
		tracking.EndTime = &end
	}
	return tracking, nil
}

// ScanTrackings scans every remaining row. The result is never nil.
func ScanTrackings(rows Rows) ([]*Tracking, error) {
	trackings := []*Tracking{}
	for rows.Next() {
		tracking, err := ScanTracking(rows)
		if err != nil {
			return nil, err
		}
		trackings = append(trackings, tracking)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return trackings, nil
}
