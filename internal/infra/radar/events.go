package radar

import (
	"time"

	"courtcrowd/internal/domain/entity"
)

// Radar event types the service reacts to.
const (
	TypeEnteredGeofence          = "user.entered_geofence"
	TypeExitedGeofence           = "user.exited_geofence"
	TypeDwelledInGeofence        = "user.dwelled_in_geofence"
	TypeArrivedAtTripDestination = "user.arrived_at_trip_destination"
	TypeLeftTripDestination      = "user.left_trip_destination"
	TypeStoppedTrip              = "user.stopped_trip"
)

// Normalize maps a Radar event onto the service vocabulary.
// It returns false for unknown types and for events that carry no court id.
func Normalize(ev *Event, fallbackUserID string) (entity.GeofenceEvent, bool) {
	out := entity.GeofenceEvent{
		ExternalEventID: ev.ID,
		UserID:          fallbackUserID,
		Timestamp:       ev.ActualCreatedAt,
	}
	if out.Timestamp.IsZero() {
		out.Timestamp = ev.CreatedAt
	}
	if out.Timestamp.IsZero() {
		out.Timestamp = time.Now().UTC()
	}
	if ev.User != nil && ev.User.UserID != "" {
		out.UserID = ev.User.UserID
	}

	switch ev.Type {
	case TypeEnteredGeofence, TypeExitedGeofence, TypeDwelledInGeofence:
		if ev.Geofence == nil {
			return entity.GeofenceEvent{}, false
		}
		out.Origin = entity.OriginGeofence
		out.CourtID = ev.Geofence.ExternalID
		out.CourtName = ev.Geofence.Description

		switch ev.Type {
		case TypeEnteredGeofence:
			out.Type = entity.GeofenceEventEntry
		case TypeExitedGeofence:
			out.Type = entity.GeofenceEventExit
		default:
			out.Type = entity.GeofenceEventDwell
		}

	case TypeArrivedAtTripDestination, TypeLeftTripDestination, TypeStoppedTrip:
		if ev.Trip == nil {
			return entity.GeofenceEvent{}, false
		}
		out.Origin = entity.OriginTrip
		out.CourtID = ev.Trip.DestinationGeofenceExternalID
		out.Type = entity.GeofenceEventExit
		if ev.Type == TypeArrivedAtTripDestination {
			out.Type = entity.GeofenceEventEntry
		}

	default:
		return entity.GeofenceEvent{}, false
	}

	if out.CourtID == "" || out.UserID == "" {
		return entity.GeofenceEvent{}, false
	}

	return out, true
}
