// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"courtcrowd/internal/domain/entity"
	"courtcrowd/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// UpsertDevice persists a device keyed by (UserID, DeviceID), refreshing its push token.
	UpsertDevice(ctx context.Context, device *entity.UserDevice) error

	// FindActiveDevicesByUser retrieves all active devices for a specific user.
	FindActiveDevicesByUser(ctx context.Context, userID string) ([]*entity.UserDevice, error)

	// DeleteDevice removes a device by its ID.
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
