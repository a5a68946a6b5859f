package handler

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"courtcrowd/config"
	"courtcrowd/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push messages carrying presence events
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validate       tokenValidator
	processor      *EventProcessor
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Processor *EventProcessor
	Logger    *slog.Logger
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Push requests are OIDC signed by Google outside of local development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		validate:       idtoken.Validate,
		processor:      params.Processor,
		logger:         params.Logger,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if err := h.processor.Process(c.Request().Context(), data, pushMsg.Message.Attributes["request_id"]); err != nil {
		h.logger.Error("[Worker] Failed to process presence event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
			slog.Bool("retryable", IsRetryableError(err)),
		)
		// 503 triggers a Pub/Sub retry, 200 acknowledges a message that can never succeed
		if IsRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}
	}

	return c.NoContent(http.StatusOK)
}

// verifyPubSubToken verifies the OIDC token Google attaches to Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Without a configured audience the push endpoint URL is expected
	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
