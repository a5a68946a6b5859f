package entity

// GeofencingPhase is the coordinator's position in its state machine.
type GeofencingPhase string

const (
	PhaseUninitialized    GeofencingPhase = "uninitialized"
	PhaseInitializing     GeofencingPhase = "initializing"
	PhaseReadyUnavailable GeofencingPhase = "ready-unavailable"
	PhaseReadyDenied      GeofencingPhase = "ready-denied"
	PhaseReadyIdle        GeofencingPhase = "ready-idle"
	PhaseReadyTracking    GeofencingPhase = "ready-tracking"
)

// IsReady reports whether initialization has finished.
func (p GeofencingPhase) IsReady() bool {
	switch p {
	case PhaseReadyUnavailable, PhaseReadyDenied, PhaseReadyIdle, PhaseReadyTracking:
		return true
	default:
		return false
	}
}

// GeofencingState is the process-local view a coordinator exposes to the presentation layer.
// ActiveCheckIn is a cache of the user's open presence record and is overwritten on reconciliation.
type GeofencingState struct {
	UserID           string           `json:"user_id"`
	Phase            GeofencingPhase  `json:"phase"`
	Initialized      bool             `json:"initialized"`
	Tracking         bool             `json:"tracking"`
	PermissionStatus PermissionStatus `json:"permission_status"`
	ActiveCheckIn    *CheckIn         `json:"active_check_in"`
	LastEvent        *GeofenceEvent   `json:"last_event"`
	Loading          bool             `json:"loading"`
	Error            string           `json:"error,omitempty"`
}

// Clone returns a copy that shares no pointers with the receiver.
func (s GeofencingState) Clone() GeofencingState {
	out := s
	if s.ActiveCheckIn != nil {
		checkIn := *s.ActiveCheckIn
		out.ActiveCheckIn = &checkIn
	}
	if s.LastEvent != nil {
		event := *s.LastEvent
		out.LastEvent = &event
	}

	return out
}
