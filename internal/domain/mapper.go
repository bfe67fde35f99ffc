package domain

import (
	"vault-tracker/internal/repository/sqlite"
)

// TrackingMapper handles conversion between domain and database Tracking models.
type TrackingMapper struct{}

// NewTrackingMapper creates a new TrackingMapper instance.
func NewTrackingMapper() *TrackingMapper {
	return &TrackingMapper{}
}

// FromDatabase converts a database Tracking to a domain Tracking.
func (m *TrackingMapper) FromDatabase(dbTracking sqlite.Tracking) Tracking {
	return Tracking{
		ID:          dbTracking.ID,
		Description: dbTracking.Description,
		StartTime:   dbTracking.StartTime,
		EndTime:     dbTracking.EndTime,
	}
}

// FromDatabaseSlice converts database Trackings to domain Trackings. Nil
// entries are skipped.
func (m *TrackingMapper) FromDatabaseSlice(dbTrackings []*sqlite.Tracking) []Tracking {
	trackings := make([]Tracking, 0, len(dbTrackings))
	for _, dbTracking := range dbTrackings {
		if dbTracking == nil {
			continue
		}
		trackings = append(trackings, m.FromDatabase(*dbTracking))
	}
	return trackings
}
