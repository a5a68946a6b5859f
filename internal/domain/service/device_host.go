package service

import (
	"context"
	"time"

	"courtcrowd/internal/domain/entity"
)

// DeviceHost is the OS location services of a user's device as seen from the server.
// Calls block until the device answers or ctx expires.
type DeviceHost interface {
	// RequestPermission prompts for foreground, and when background is set also background, location access.
	RequestPermission(ctx context.Context, userID string, background bool) (entity.PermissionStatus, error)

	// PermissionStatus returns the last permission status the device reported.
	PermissionStatus(userID string) entity.PermissionStatus

	// CurrentFix asks the device for a one-shot location fix.
	CurrentFix(ctx context.Context, userID string) (*entity.LocationFix, error)

	// StartBackgroundUpdates registers the device's background location task.
	StartBackgroundUpdates(ctx context.Context, userID string, minDistanceMeters float64, interval time.Duration) error

	// StopBackgroundUpdates unregisters the device's background location task.
	StopBackgroundUpdates(ctx context.Context, userID string) error

	// PushState sends a state snapshot to the user's connected devices.
	PushState(userID string, state entity.GeofencingState)
}
