package handler

import (
	"net/http"
	"testing"

	domainerrors "courtcrowd/internal/domain/errors"
	mockUC "courtcrowd/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCourtHandler_GetOccupancy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		players  int64
		err      error
		wantCode int
	}{
		{name: "occupied", players: 4, wantCode: http.StatusOK},
		{name: "unknown court", err: domainerrors.ErrCourtNotFound, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, auth := newTestEcho(t)
			presenceUC := mockUC.NewMockPresenceUsecase(t)
			presenceUC.EXPECT().CourtOccupancy(mock.Anything, "court-1").Return(tt.players, tt.err)
			h := NewCourtHandler(CourtHandlerParams{PresenceUC: presenceUC})
			e.GET("/courts/:id/occupancy", h.GetOccupancy, auth.Authenticate)

			rec := doRequest(e, http.MethodGet, "/courts/court-1/occupancy", "", true)

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.err == nil {
				assert.Equal(t, OccupancyResponse{CourtID: "court-1", Players: tt.players}, decodeData[OccupancyResponse](t, rec))
			}
		})
	}
}
