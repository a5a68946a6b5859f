package entity

import "time"

// GeofenceEventType is the normalized event vocabulary consumed by the coordinator.
type GeofenceEventType string

const (
	GeofenceEventEntry GeofenceEventType = "entry"
	GeofenceEventExit  GeofenceEventType = "exit"
	GeofenceEventDwell GeofenceEventType = "dwell"
)

// GeofenceEventOrigin identifies the mechanism that produced an event.
type GeofenceEventOrigin string

const (
	// OriginGeofence is a Radar geofence entry/exit/dwell.
	OriginGeofence GeofenceEventOrigin = "geofence"
	// OriginTrip is a Radar trip arrival or departure.
	OriginTrip GeofenceEventOrigin = "trip"
	// OriginProximity is the background proximity scan. The presence write
	// has already been applied when such an event is delivered.
	OriginProximity GeofenceEventOrigin = "proximity"
)

// GeofenceEvent is an ephemeral entry/exit/dwell notification for one court.
type GeofenceEvent struct {
	Type            GeofenceEventType   `json:"type"`
	Origin          GeofenceEventOrigin `json:"origin"`
	UserID          string              `json:"user_id"`
	CourtID         string              `json:"court_id"`
	CourtName       string              `json:"court_name,omitempty"`
	ExternalEventID string              `json:"external_event_id,omitempty"`
	Timestamp       time.Time           `json:"timestamp"`
}

// ExternalEventRef returns the external event id as a nullable reference.
func (e *GeofenceEvent) ExternalEventRef() *string {
	if e.ExternalEventID == "" {
		return nil
	}
	id := e.ExternalEventID

	return &id
}
