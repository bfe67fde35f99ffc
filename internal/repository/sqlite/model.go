package sqlite

import "time"

// Tracking is one row of the tracking table with its timestamps
// materialized as instants.
type Tracking struct {
	ID          int64
	Description string
	StartTime   time.Time
	EndTime     *time.Time // nil while the tracking is still running
}
