package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "courtcrowd/internal/delivery/context"
	"courtcrowd/internal/domain/entity"
	domainerrors "courtcrowd/internal/domain/errors"
	"courtcrowd/internal/domain/repository"
	"courtcrowd/internal/errors"
	"courtcrowd/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

// RegisterDevice registers a new device or refreshes the push token of an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, userID string, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	if userID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("user id is required")
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	now := time.Now().UTC()
	device := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    userID,
		PushToken: deviceInfo.PushToken,
		DeviceID:  deviceInfo.DeviceID,
		Platform:  deviceInfo.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	// Keep the identity of a device registered before.
	for _, existing := range devices {
		if existing.DeviceID == deviceInfo.DeviceID {
			device.ID = existing.ID
			device.CreatedAt = existing.CreatedAt

			break
		}
	}

	if err := s.deviceRepo.UpsertDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to upsert device")
	}

	s.log(ctx).Debug("Device registered",
		slog.String("user_id", userID),
		slog.String("device_id", device.DeviceID),
		slog.String("platform", device.Platform),
	)

	return device, nil
}

// UnregisterDevice removes a device after verifying the user owns it
func (s *deviceService) UnregisterDevice(ctx context.Context, userID string, deviceID uuid.UUID) error {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to find devices by user")
	}

	owned := false
	for _, device := range devices {
		if device.ID == deviceID {
			owned = true

			break
		}
	}
	if !owned {
		return domainerrors.ErrDeviceNotFound
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}

func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}
