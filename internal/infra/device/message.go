package device

import "courtcrowd/internal/domain/entity"

// MessageType identifies a device bridge frame.
type MessageType string

// Server to device.
const (
	MessagePermissionRequest MessageType = "permission_request"
	MessageLocationRequest   MessageType = "location_request"
	MessageTrackingStart     MessageType = "tracking_start"
	MessageTrackingStop      MessageType = "tracking_stop"
	MessageState             MessageType = "state"
)

// Device to server.
const (
	MessagePermissionResult MessageType = "permission_result"
	MessageLocationResult   MessageType = "location_result"
	MessagePermissionStatus MessageType = "permission_status"
	MessageForeground       MessageType = "foreground"
	MessageFixes            MessageType = "fixes"
)

// IsReply reports whether the frame answers a server request.
func (t MessageType) IsReply() bool {
	return t == MessagePermissionResult || t == MessageLocationResult
}

// Message is a JSON frame exchanged over the device websocket.
type Message struct {
	Type      MessageType `json:"type"`
	RequestID string      `json:"request_id,omitempty"`

	Background bool                    `json:"background,omitempty"`
	Status     entity.PermissionStatus `json:"status,omitempty"`
	Fix        *entity.LocationFix     `json:"fix,omitempty"`
	Fixes      []entity.LocationFix    `json:"fixes,omitempty"`
	State      *entity.GeofencingState `json:"state,omitempty"`

	MinDistanceMeters float64 `json:"min_distance_meters,omitempty"`
	IntervalSeconds   int     `json:"interval_seconds,omitempty"`

	Error string `json:"error,omitempty"`
}
