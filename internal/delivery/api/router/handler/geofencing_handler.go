package handler

import (
	"context"
	"log/slog"
	"net/http"

	"courtcrowd/internal/delivery/api/middleware"
	"courtcrowd/internal/delivery/api/response"
	"courtcrowd/internal/domain/entity"
	"courtcrowd/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GeofencingHandlerParams holds dependencies for GeofencingHandler, injected by Fx.
type GeofencingHandlerParams struct {
	fx.In

	GeofencingUC usecase.GeofencingUsecase
	Logger       *slog.Logger
}

// GeofencingHandler exposes the user's geofencing session.
type GeofencingHandler struct {
	geofencingUC usecase.GeofencingUsecase
	logger       *slog.Logger
}

// NewGeofencingHandler is the constructor for GeofencingHandler.
func NewGeofencingHandler(params GeofencingHandlerParams) *GeofencingHandler {
	return &GeofencingHandler{
		geofencingUC: params.GeofencingUC,
		logger:       params.Logger,
	}
}

// CheckInRequest represents the request body for a manual check-in.
type CheckInRequest struct {
	CourtID string `json:"court_id" validate:"required,max=255"`
}

// ActionResponse is returned by session operations. OK is false when the operation failed;
// the reason is carried in State.Error.
type ActionResponse struct {
	OK    bool                   `json:"ok"`
	State entity.GeofencingState `json:"state"`
}

// StartSession initializes the user's geofencing session.
func (h *GeofencingHandler) StartSession(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	state, err := h.geofencingUC.Start(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state)
}

// StopSession tears the user's geofencing session down.
func (h *GeofencingHandler) StopSession(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.geofencingUC.Stop(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetState returns the current state snapshot.
func (h *GeofencingHandler) GetState(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	state, err := h.geofencingUC.State(userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state)
}

// RequestPermissions prompts the device for location permission.
func (h *GeofencingHandler) RequestPermissions(c echo.Context) error {
	return h.action(c, h.geofencingUC.RequestPermissions)
}

// EnableTracking starts geofence tracking.
func (h *GeofencingHandler) EnableTracking(c echo.Context) error {
	return h.action(c, h.geofencingUC.EnableTracking)
}

// DisableTracking stops geofence tracking.
func (h *GeofencingHandler) DisableTracking(c echo.Context) error {
	return h.action(c, h.geofencingUC.DisableTracking)
}

// CheckIn checks the user into a court chosen in the app.
func (h *GeofencingHandler) CheckIn(c echo.Context) error {
	var req CheckInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid check-in input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	return h.action(c, func(ctx context.Context, userID string) (bool, error) {
		return h.geofencingUC.ManualCheckIn(ctx, userID, req.CourtID)
	})
}

// CheckOut checks the user out of the current court.
func (h *GeofencingHandler) CheckOut(c echo.Context) error {
	return h.action(c, h.geofencingUC.ManualCheckOut)
}

// ForceLocationCheck evaluates a one-shot fix immediately.
func (h *GeofencingHandler) ForceLocationCheck(c echo.Context) error {
	return h.action(c, h.geofencingUC.ForceLocationCheck)
}

// Reconcile refreshes the cached check-in, typically when the app returns to the foreground.
func (h *GeofencingHandler) Reconcile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	state, err := h.geofencingUC.Reconcile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state)
}

func (h *GeofencingHandler) action(c echo.Context, op func(ctx context.Context, userID string) (bool, error)) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	succeeded, err := op(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	state, err := h.geofencingUC.State(userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ActionResponse{OK: succeeded, State: state})
}
