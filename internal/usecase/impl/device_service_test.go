package impl

import (
	"context"
	"testing"

	"courtcrowd/internal/domain/entity"
	domainerrors "courtcrowd/internal/domain/errors"
	"courtcrowd/internal/domain/repository"
	"courtcrowd/internal/errors"
	mockRepo "courtcrowd/internal/mocks/repository"
	"courtcrowd/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Logger:     discardLogger(),
	})

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceInfo := &usecase.DeviceInfo{
		PushToken: "test-push-token",
		DeviceID:  "device-123",
		Platform:  "ios",
	}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, "u1").
		Return([]*entity.UserDevice{}, nil)
	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, "u1", deviceInfo)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, device.ID)
	assert.Equal(t, "u1", device.UserID)
	assert.Equal(t, deviceInfo.PushToken, device.PushToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, deviceInfo.Platform, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_RefreshesExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	existing := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    "u1",
		PushToken: "old-token",
		DeviceID:  "device-123",
		Platform:  "ios",
		IsActive:  true,
	}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, "u1").
		Return([]*entity.UserDevice{existing}, nil)
	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.MatchedBy(func(d *entity.UserDevice) bool {
			return d.ID == existing.ID && d.PushToken == "new-token"
		})).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, "u1", &usecase.DeviceInfo{
		PushToken: "new-token",
		DeviceID:  "device-123",
		Platform:  "ios",
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, device.ID)
	assert.Equal(t, "new-token", device.PushToken)
}

func TestDeviceService_RegisterDevice_Errors(t *testing.T) {
	t.Parallel()

	info := &usecase.DeviceInfo{PushToken: "token", DeviceID: "device-1", Platform: "android"}

	tests := []struct {
		name    string
		userID  string
		setup   func(fx deviceServiceFixtures)
		wantErr error
	}{
		{
			name:    "missing user",
			userID:  "",
			setup:   func(deviceServiceFixtures) {},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:   "lookup fails",
			userID: "u1",
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindActiveDevicesByUser(mock.Anything, "u1").Return(nil, assert.AnError)
			},
			wantErr: assert.AnError,
		},
		{
			name:   "upsert fails",
			userID: "u1",
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindActiveDevicesByUser(mock.Anything, "u1").Return(nil, nil)
				fx.deviceRepo.EXPECT().UpsertDevice(mock.Anything, mock.Anything).
					Return(domainerrors.ErrDeviceRegistrationFailed.WrapMessage("missing required device information"))
			},
			wantErr: domainerrors.ErrDeviceRegistrationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestDeviceService(t)
			tt.setup(fx)

			device, err := fx.service.RegisterDevice(context.Background(), tt.userID, info)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.Nil(t, device)
		})
	}
}

func TestDeviceService_UnregisterDevice(t *testing.T) {
	t.Parallel()

	owned := &entity.UserDevice{ID: uuid.New(), UserID: "u1", DeviceID: "device-1"}

	tests := []struct {
		name     string
		deviceID uuid.UUID
		setup    func(fx deviceServiceFixtures)
		wantErr  error
	}{
		{
			name:     "owned device",
			deviceID: owned.ID,
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().DeleteDevice(mock.Anything, owned.ID).Return(nil)
			},
		},
		{
			name:     "device of another user",
			deviceID: uuid.New(),
			setup:    func(deviceServiceFixtures) {},
			wantErr:  domainerrors.ErrDeviceNotFound,
		},
		{
			name:     "deleted concurrently",
			deviceID: owned.ID,
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().DeleteDevice(mock.Anything, owned.ID).Return(repository.ErrDeviceNotFound)
			},
			wantErr: domainerrors.ErrDeviceNotFound,
		},
		{
			name:     "delete fails",
			deviceID: owned.ID,
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().DeleteDevice(mock.Anything, owned.ID).Return(assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestDeviceService(t)
			fx.deviceRepo.EXPECT().FindActiveDevicesByUser(mock.Anything, "u1").Return([]*entity.UserDevice{owned}, nil)
			tt.setup(fx)

			err := fx.service.UnregisterDevice(context.Background(), "u1", tt.deviceID)
			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}
