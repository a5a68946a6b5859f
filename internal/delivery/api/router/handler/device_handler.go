package handler

import (
	"log/slog"
	"net/http"

	"courtcrowd/internal/delivery/api/middleware"
	"courtcrowd/internal/delivery/api/response"
	"courtcrowd/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDevice registers a push target for check-in confirmations
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.DeviceInfo
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// UnregisterDevice removes a push target
func (h *DeviceHandler) UnregisterDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	if err := h.deviceUC.UnregisterDevice(c.Request().Context(), userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
