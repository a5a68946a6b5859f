package handler

import (
	"log/slog"
	"net/http"
	"time"

	"courtcrowd/internal/delivery/api/middleware"
	"courtcrowd/internal/delivery/api/response"
	"courtcrowd/internal/domain/entity"
	"courtcrowd/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	Provider usecase.LocationProvider
	Logger   *slog.Logger
}

// LocationHandler receives fixes delivered by the device's background location task.
type LocationHandler struct {
	provider usecase.LocationProvider
	logger   *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler.
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		provider: params.Provider,
		logger:   params.Logger,
	}
}

// FixRequest is a single location sample.
type FixRequest struct {
	Latitude  float64   `json:"latitude" validate:"latitude"`
	Longitude float64   `json:"longitude" validate:"longitude"`
	Accuracy  float64   `json:"accuracy" validate:"gte=0"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
}

// IngestFixesRequest represents the request body for a background fix batch.
type IngestFixesRequest struct {
	Fixes []FixRequest `json:"fixes" validate:"required,min=1,max=100,dive"`
}

// IngestFixes queues background fixes for evaluation.
func (h *LocationHandler) IngestFixes(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req IngestFixesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	fixes := make([]entity.LocationFix, 0, len(req.Fixes))
	for _, fix := range req.Fixes {
		fixes = append(fixes, entity.LocationFix{
			Latitude:  fix.Latitude,
			Longitude: fix.Longitude,
			Accuracy:  fix.Accuracy,
			Timestamp: fix.Timestamp,
		})
	}

	accepted := h.provider.IngestFixes(c.Request().Context(), userID, fixes)

	return response.Success(c, http.StatusAccepted, map[string]int{"accepted": accepted})
}
