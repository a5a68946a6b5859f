package handler

import (
	"net/http"
	"testing"

	"courtcrowd/internal/domain/entity"
	domainerrors "courtcrowd/internal/domain/errors"
	mockUC "courtcrowd/internal/mocks/usecase"
	"courtcrowd/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeviceTestEcho(t *testing.T) (*echo.Echo, *mockUC.MockDeviceUsecase) {
	t.Helper()

	e, auth := newTestEcho(t)
	deviceUC := mockUC.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: discardLogger()})

	g := e.Group("/devices", auth.Authenticate)
	g.POST("", h.RegisterDevice)
	g.DELETE("/:id", h.UnregisterDevice)

	return e, deviceUC
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	t.Parallel()

	e, deviceUC := newDeviceTestEcho(t)
	deviceUC.EXPECT().RegisterDevice(mock.Anything, testUserID, &usecase.DeviceInfo{
		PushToken: "fcm-token",
		DeviceID:  "device-1",
		Platform:  "ios",
	}).Return(&entity.UserDevice{ID: uuid.New(), UserID: testUserID, DeviceID: "device-1"}, nil)

	rec := doRequest(e, http.MethodPost, "/devices", `{"push_token":"fcm-token","device_id":"device-1","platform":"ios"}`, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	device := decodeData[entity.UserDevice](t, rec)
	assert.Equal(t, "device-1", device.DeviceID)
}

func TestDeviceHandler_RegisterDevice_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "unknown platform", body: `{"push_token":"fcm-token","device_id":"device-1","platform":"web"}`},
		{name: "missing token", body: `{"device_id":"device-1","platform":"android"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, _ := newDeviceTestEcho(t)

			rec := doRequest(e, http.MethodPost, "/devices", tt.body, true)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestDeviceHandler_UnregisterDevice(t *testing.T) {
	t.Parallel()

	deviceID := uuid.New()

	tests := []struct {
		name     string
		target   string
		setup    func(m *mockUC.MockDeviceUsecase)
		wantCode int
	}{
		{
			name:   "removed",
			target: "/devices/" + deviceID.String(),
			setup: func(m *mockUC.MockDeviceUsecase) {
				m.EXPECT().UnregisterDevice(mock.Anything, testUserID, deviceID).Return(nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:   "not owned",
			target: "/devices/" + deviceID.String(),
			setup: func(m *mockUC.MockDeviceUsecase) {
				m.EXPECT().UnregisterDevice(mock.Anything, testUserID, deviceID).Return(domainerrors.ErrDeviceNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "invalid id",
			target:   "/devices/not-a-uuid",
			setup:    func(*mockUC.MockDeviceUsecase) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, deviceUC := newDeviceTestEcho(t)
			tt.setup(deviceUC)

			rec := doRequest(e, http.MethodDelete, tt.target, "", true)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
