package usecase

import (
	"context"

	"courtcrowd/internal/domain/entity"
)

// GeofencingUsecase manages one geofencing coordinator per authenticated user session.
// Apart from a missing session, failures are reported as false plus the Error field of the state.
type GeofencingUsecase interface {
	// Start creates and initializes the user's session, or reconciles an existing one.
	Start(ctx context.Context, userID string) (entity.GeofencingState, error)

	// Stop tears the session down. Writes already in flight complete but no longer touch state.
	Stop(ctx context.Context, userID string) error

	State(userID string) (entity.GeofencingState, error)

	RequestPermissions(ctx context.Context, userID string) (bool, error)
	EnableTracking(ctx context.Context, userID string) (bool, error)
	DisableTracking(ctx context.Context, userID string) (bool, error)

	// ManualCheckIn bypasses the geofencing source and writes with method manual.
	ManualCheckIn(ctx context.Context, userID, courtID string) (bool, error)
	ManualCheckOut(ctx context.Context, userID string) (bool, error)

	// ForceLocationCheck takes a one-shot fix and evaluates it immediately.
	ForceLocationCheck(ctx context.Context, userID string) (bool, error)

	// Reconcile overwrites the cached check-in with the authoritative open record.
	Reconcile(ctx context.Context, userID string) (entity.GeofencingState, error)

	// Subscribe streams state snapshots of the user's session.
	Subscribe(userID string, fn func(entity.GeofencingState)) (unsubscribe func(), err error)
}
