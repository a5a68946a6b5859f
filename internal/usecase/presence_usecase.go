package usecase

import (
	"context"
	"time"

	"courtcrowd/internal/domain/entity"
)

// CheckInResult describes the open record after a check-in.
type CheckInResult struct {
	Record *entity.PresenceRecord
	Court  *entity.Court
	// Created is false when the record was already open.
	Created bool
}

// CheckOutResult describes the outcome of a check-out.
type CheckOutResult struct {
	// Closed is false when there was no open record to close.
	Closed   bool
	ExitedAt time.Time
}

// PresenceUsecase is the only writer of presence records.
type PresenceUsecase interface {
	// CheckIn opens a record for (user, court). Calling it for an already open pair returns the existing record.
	CheckIn(ctx context.Context, userID, courtID string, method entity.EntryMethod, externalEventID *string) (*CheckInResult, error)

	// CheckOut closes the open record for (user, court). A missing record is a no-op result, not an error.
	CheckOut(ctx context.Context, userID, courtID string) (*CheckOutResult, error)

	// SwitchCourt closes the record at fromCourtID and opens one at toCourtID in a single transaction.
	SwitchCourt(ctx context.Context, userID, fromCourtID, toCourtID string, method entity.EntryMethod) (*CheckInResult, error)

	// CheckOutAll closes every open record of the user.
	CheckOutAll(ctx context.Context, userID string) (int64, error)

	// OpenRecords returns every open record of the user, newest first.
	OpenRecords(ctx context.Context, userID string) ([]*entity.PresenceRecord, error)

	// ActiveCheckIn returns the authoritative most recent open record, or nil.
	ActiveCheckIn(ctx context.Context, userID string) (*entity.CheckIn, error)

	// CourtOccupancy returns the number of players currently checked into a court.
	CourtOccupancy(ctx context.Context, courtID string) (int64, error)
}
