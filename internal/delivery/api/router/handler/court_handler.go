package handler

import (
	"net/http"

	"courtcrowd/internal/delivery/api/response"
	"courtcrowd/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CourtHandlerParams holds dependencies for CourtHandler, injected by Fx.
type CourtHandlerParams struct {
	fx.In

	PresenceUC usecase.PresenceUsecase
}

// CourtHandler serves court occupancy.
type CourtHandler struct {
	presenceUC usecase.PresenceUsecase
}

// NewCourtHandler is the constructor for CourtHandler.
func NewCourtHandler(params CourtHandlerParams) *CourtHandler {
	return &CourtHandler{presenceUC: params.PresenceUC}
}

// OccupancyResponse is the live player count of a court.
type OccupancyResponse struct {
	CourtID string `json:"court_id"`
	Players int64  `json:"players"`
}

// GetOccupancy returns how many players are checked into a court.
func (h *CourtHandler) GetOccupancy(c echo.Context) error {
	courtID := c.Param("id")

	players, err := h.presenceUC.CourtOccupancy(c.Request().Context(), courtID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, OccupancyResponse{CourtID: courtID, Players: players})
}
