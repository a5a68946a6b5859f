package handler

import (
	"io"
	"log/slog"
	"net/http"

	"courtcrowd/internal/delivery/api/response"
	"courtcrowd/internal/errors"
	"courtcrowd/internal/infra/radar"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	headerRadarSigningToken = "X-Radar-Signing-Token"
	headerRadarSignature    = "X-Radar-Signature"
)

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	Webhooks radar.Webhooks
	Logger   *slog.Logger
}

// WebhookHandler receives geofence events pushed by Radar.
type WebhookHandler struct {
	webhooks radar.Webhooks
	logger   *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler.
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	return &WebhookHandler{
		webhooks: params.Webhooks,
		logger:   params.Logger,
	}
}

// HandleRadar verifies and dispatches a Radar webhook delivery.
func (h *WebhookHandler) HandleRadar(c echo.Context) error {
	req := c.Request()
	if !h.webhooks.VerifySignature(req.Header.Get(headerRadarSigningToken), req.Header.Get(headerRadarSignature)) {
		return response.Unauthorized(c, "INVALID_SIGNATURE", "Webhook signature verification failed")
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Failed to read webhook body")
	}

	emitted, err := h.webhooks.HandleWebhook(req.Context(), body)
	switch {
	case errors.Is(err, radar.ErrUnavailable):
		return response.Error(c, http.StatusServiceUnavailable, "RADAR_UNAVAILABLE", "Radar is not configured", nil)
	case errors.Is(err, radar.ErrInvalidPayload):
		return response.BadRequest(c, "INVALID_PAYLOAD", "Invalid webhook payload")
	case err != nil:
		return errors.WithStack(err)
	}

	h.logger.Debug("Radar webhook processed", slog.Int("emitted", emitted))

	return response.Success(c, http.StatusOK, map[string]int{"emitted": emitted})
}
