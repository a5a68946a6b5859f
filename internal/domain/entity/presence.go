package entity

import (
	"time"

	"github.com/google/uuid"
)

// EntryMethod records which mechanism opened a presence record.
type EntryMethod string

const (
	// EntryMethodManual is a user-initiated check-in.
	EntryMethodManual EntryMethod = "manual"
	// EntryMethodRadar is a check-in caused by a Radar geofence or trip event.
	EntryMethodRadar EntryMethod = "radar"
	// EntryMethodBackground is a check-in caused by the background proximity scan.
	EntryMethodBackground EntryMethod = "background"
)

// String returns the string representation of the EntryMethod.
func (m EntryMethod) String() string {
	return string(m)
}

// IsValid checks if the EntryMethod is a valid value.
func (m EntryMethod) IsValid() bool {
	switch m {
	case EntryMethodManual, EntryMethodRadar, EntryMethodBackground:
		return true
	default:
		return false
	}
}

// PresenceRecord is one user's continuous occupancy of one court.
// A record with a nil ExitedAt is open: the user is currently checked in.
// At most one open record exists per (UserID, CourtID).
type PresenceRecord struct {
	ID           uuid.UUID   `json:"id"`
	UserID       string      `json:"user_id"`
	CourtID      string      `json:"court_id"`
	EnteredAt    time.Time   `json:"entered_at"`
	ExitedAt     *time.Time  `json:"exited_at,omitempty"`
	EntryMethod  EntryMethod `json:"entry_method"`
	RadarEventID *string     `json:"radar_event_id,omitempty"`
}

// IsOpen reports whether the record has not been closed yet.
func (p *PresenceRecord) IsOpen() bool {
	return p.ExitedAt == nil
}

// CheckIn is the cached view of the court a user is currently checked into.
type CheckIn struct {
	CourtID   string    `json:"court_id"`
	EnteredAt time.Time `json:"entered_at"`
}

// ToCheckIn projects an open record onto the CheckIn view.
func (p *PresenceRecord) ToCheckIn() *CheckIn {
	return &CheckIn{CourtID: p.CourtID, EnteredAt: p.EnteredAt}
}
