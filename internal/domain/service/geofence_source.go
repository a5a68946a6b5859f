package service

import (
	"context"

	"courtcrowd/internal/domain/entity"
)

// GeofenceSource wraps a third-party geofencing SDK and delivers normalized events.
// When the SDK is unavailable every method is a no-op returning false, nil or PermissionUnavailable.
type GeofenceSource interface {
	IsAvailable() bool

	// Initialize performs one-time SDK setup. It returns false on a missing key or init failure.
	Initialize(ctx context.Context, apiKey string) bool

	RequestPermissions(ctx context.Context, userID string) bool
	PermissionStatus(userID string) entity.PermissionStatus

	// SetUserID associates the user with subsequent SDK events.
	SetUserID(ctx context.Context, userID string) bool

	StartTracking(ctx context.Context, userID string) bool
	StopTracking(ctx context.Context, userID string) bool

	// TrackOnce submits a single fix and returns the events it produced.
	TrackOnce(ctx context.Context, userID string, fix *entity.LocationFix) ([]entity.GeofenceEvent, bool)

	// OnGeofenceEvent registers fn for every event. Subscribers are called in registration order.
	OnGeofenceEvent(fn func(entity.GeofenceEvent)) (unsubscribe func())
}

// GeofenceCapability is the tagged result of probing for a geofencing SDK at startup.
type GeofenceCapability struct {
	source GeofenceSource
	reason string
}

// Available wraps a loaded SDK handle.
func Available(source GeofenceSource) GeofenceCapability {
	return GeofenceCapability{source: source}
}

// Unavailable records why no SDK could be loaded.
func Unavailable(reason string) GeofenceCapability {
	return GeofenceCapability{reason: reason}
}

// Source returns the SDK handle and true when the capability is Available.
func (c GeofenceCapability) Source() (GeofenceSource, bool) {
	return c.source, c.source != nil
}

// Reason returns why the capability is Unavailable.
func (c GeofenceCapability) Reason() string {
	return c.reason
}
