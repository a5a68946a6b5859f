package repository

import (
	"context"

	"courtcrowd/internal/domain/entity"
	"courtcrowd/internal/errors"
)

// Domain-specific errors for court persistence.
var (
	// ErrCourtNotFound is returned when a court is not found.
	ErrCourtNotFound = errors.New("court not found")
)

// CourtRepository defines read access to the court catalog.
type CourtRepository interface {
	// FindCourtByID retrieves a court by its ID.
	FindCourtByID(ctx context.Context, id string) (*entity.Court, error)

	// ListCourts returns the whole catalog. Used to rebuild the proximity index.
	ListCourts(ctx context.Context) ([]*entity.Court, error)
}
