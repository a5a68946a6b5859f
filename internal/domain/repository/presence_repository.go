package repository

import (
	"context"
	"time"

	"courtcrowd/internal/domain/entity"
	"courtcrowd/internal/errors"
)

// Domain-specific errors for presence persistence.
var (
	// ErrPresenceNotFound is returned when no open presence record matches.
	ErrPresenceNotFound = errors.New("presence record not found")
)

// PresenceRepository defines the interface for court_presence operations.
// Implementations must enforce at most one open record per (user, court).
type PresenceRepository interface {
	// InsertOpen inserts an open record unless one already exists for the same (user, court).
	// It reports whether a new row was created.
	InsertOpen(ctx context.Context, record *entity.PresenceRecord) (bool, error)

	// FindOpen returns the open record for (user, court), or ErrPresenceNotFound.
	FindOpen(ctx context.Context, userID, courtID string) (*entity.PresenceRecord, error)

	// FindLatestOpenByUser returns the most recently entered open record of a user, or ErrPresenceNotFound.
	FindLatestOpenByUser(ctx context.Context, userID string) (*entity.PresenceRecord, error)

	// FindOpenByUser returns all open records of a user.
	FindOpenByUser(ctx context.Context, userID string) ([]*entity.PresenceRecord, error)

	// CloseOpen sets exited_at on the open record for (user, court) and returns the affected row count.
	CloseOpen(ctx context.Context, userID, courtID string, exitedAt time.Time) (int64, error)

	// CloseAllOpenByUser sets exited_at on every open record of the user.
	CloseAllOpenByUser(ctx context.Context, userID string, exitedAt time.Time) (int64, error)

	// CountOpenByCourt returns the number of users currently checked into a court.
	CountOpenByCourt(ctx context.Context, courtID string) (int64, error)
}
