package usecase

import (
	"context"

	"courtcrowd/internal/domain/entity"
)

// LocationProvider obtains fixes from a user's device and runs the background proximity fallback.
// None of its operations return errors: failures are logged and reported as nil or false.
type LocationProvider interface {
	// GetCurrentLocation requests foreground permission when needed and returns a one-shot fix, or nil.
	GetCurrentLocation(ctx context.Context, userID string) *entity.LocationFix

	// StartBackgroundTracking requests background permission and registers the recurring task.
	// It returns true when tracking is running, including when it already was.
	StartBackgroundTracking(ctx context.Context, userID string) bool

	// StopBackgroundTracking unregisters the task and closes every open presence record of the user.
	StopBackgroundTracking(ctx context.Context, userID string) bool

	IsTracking(userID string) bool

	// IngestFixes accepts device-delivered background fixes and returns how many were kept.
	IngestFixes(ctx context.Context, userID string, fixes []entity.LocationFix) int

	// EvaluateFix opens and closes presence records by proximity and returns the applied transitions.
	EvaluateFix(ctx context.Context, userID string, fix entity.LocationFix) []entity.GeofenceEvent

	// OnProximityEvent subscribes to transitions applied by the proximity scan.
	OnProximityEvent(fn func(entity.GeofenceEvent)) (unsubscribe func())

	// RefreshCourts rebuilds the court index from the catalog.
	RefreshCourts(ctx context.Context) error

	// Run evaluates pending fixes and refreshes the court index until ctx is done.
	Run(ctx context.Context)
}
