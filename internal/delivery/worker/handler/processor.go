package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	deliverycontext "courtcrowd/internal/delivery/context"
	domainerrors "courtcrowd/internal/domain/errors"
	"courtcrowd/internal/domain/service"
	"courtcrowd/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// retryableError wraps an error to indicate the message should be redelivered
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryableError checks if an error is retryable
func IsRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// EventProcessorParams holds dependencies for the EventProcessor
type EventProcessorParams struct {
	fx.In

	ConfirmationUC usecase.ConfirmationUsecase
	Logger         *slog.Logger
}

// EventProcessor turns an encoded presence event into a push confirmation.
// It is shared by the Pub/Sub push endpoint and the Kafka consumer.
type EventProcessor struct {
	confirmationUC usecase.ConfirmationUsecase
	logger         *slog.Logger
}

// NewEventProcessor creates a new EventProcessor
func NewEventProcessor(params EventProcessorParams) *EventProcessor {
	return &EventProcessor{
		confirmationUC: params.ConfirmationUC,
		logger:         params.Logger,
	}
}

// Process decodes data and delivers the confirmation.
// Malformed and invalid events are dropped; delivery failures are returned as retryable.
func (p *EventProcessor) Process(ctx context.Context, data []byte, requestID string) error {
	var event service.PresenceEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return errors.Wrap(err, "failed to parse presence event")
	}

	// Priority: transport attributes > event field > existing context
	if requestID == "" {
		requestID = event.RequestID
	}
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}

	reqLogger := p.logger.With(
		slog.String("request_id", requestID),
		slog.String("user_id", event.UserID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing presence event",
		slog.String("event_id", event.EventID),
		slog.String("kind", string(event.Kind)),
		slog.String("court_id", event.CourtID),
	)

	if err := p.confirmationUC.DeliverPresenceEvent(ctx, &event); err != nil {
		if errors.Is(err, domainerrors.ErrValidationFailed) {
			return err
		}

		return newRetryableError(err)
	}

	reqLogger.Info("[Worker] Presence event processed", slog.String("event_id", event.EventID))

	return nil
}
