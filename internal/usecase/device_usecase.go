package usecase

import (
	"context"

	"courtcrowd/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	PushToken string `json:"push_token" validate:"required,max=255"`
	DeviceID  string `json:"device_id" validate:"required,max=255"`
	Platform  string `json:"platform" validate:"required,oneof=ios android"`
}

// DeviceUsecase defines the interface for push target registration
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes the token of an existing one
	RegisterDevice(ctx context.Context, userID string, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	// UnregisterDevice removes a device owned by the user
	UnregisterDevice(ctx context.Context, userID string, deviceID uuid.UUID) error
}
