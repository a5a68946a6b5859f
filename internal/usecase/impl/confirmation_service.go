package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "courtcrowd/internal/delivery/context"
	"courtcrowd/internal/domain/entity"
	domainerrors "courtcrowd/internal/domain/errors"
	"courtcrowd/internal/domain/repository"
	"courtcrowd/internal/domain/service"
	"courtcrowd/internal/errors"
	"courtcrowd/internal/infra/metrics"
	"courtcrowd/internal/usecase"

	"go.uber.org/fx"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500
)

type confirmationService struct {
	deviceRepo      repository.DeviceRepository
	courtRepo       repository.CourtRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// ConfirmationServiceParams holds dependencies for ConfirmationService, injected by Fx.
type ConfirmationServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	CourtRepo       repository.CourtRepository
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

// NewConfirmationService creates a new confirmation service instance
func NewConfirmationService(params ConfirmationServiceParams) usecase.ConfirmationUsecase {
	return &confirmationService{
		deviceRepo:      params.DeviceRepo,
		courtRepo:       params.CourtRepo,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
	}
}

// DeliverPresenceEvent sends the confirmation for one presence transition to the user's devices
func (s *confirmationService) DeliverPresenceEvent(ctx context.Context, event *service.PresenceEvent) error {
	if event == nil || event.UserID == "" || event.CourtID == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("presence event requires user and court")
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, event.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to fetch devices")
	}
	if len(devices) == 0 {
		s.log(ctx).Debug("No devices to confirm presence event",
			slog.String("event_id", event.EventID),
			slog.String("user_id", event.UserID),
		)

		return nil
	}

	tokens := make([]string, 0, len(devices))
	deviceMap := make(map[string]*entity.UserDevice, len(devices)) // token -> device mapping
	for _, device := range devices {
		tokens = append(tokens, device.PushToken)
		deviceMap[device.PushToken] = device
	}

	title, body := s.confirmationText(ctx, event)
	data := map[string]string{
		"event_id":    event.EventID,
		"kind":        string(event.Kind),
		"court_id":    event.CourtID,
		"method":      event.Method,
		"occurred_at": event.OccurredAt.UTC().Format(time.RFC3339),
	}

	var (
		totalSent     int
		totalFailed   int
		invalidTokens []string
	)
	for start := 0; start < len(tokens); start += firebaseBatchSize {
		batch := tokens[start:min(start+firebaseBatchSize, len(tokens))]

		sent, failed, batchInvalid, err := s.notificationSvc.SendBatchNotification(ctx, batch, title, body, data)
		if err != nil {
			s.log(ctx).Warn("Failed to send confirmation batch",
				slog.String("event_id", event.EventID),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err),
			)
			totalFailed += len(batch)

			continue
		}
		totalSent += sent
		totalFailed += failed
		invalidTokens = append(invalidTokens, batchInvalid...)
	}

	metrics.NotificationsSent.WithLabelValues(metrics.OutcomeOK).Add(float64(totalSent))
	metrics.NotificationsSent.WithLabelValues(metrics.OutcomeFailed).Add(float64(totalFailed))

	// Devices with invalid tokens will never receive a confirmation again
	for _, token := range invalidTokens {
		device, ok := deviceMap[token]
		if !ok {
			continue
		}
		if err := s.deviceRepo.DeleteDevice(ctx, device.ID); err != nil && !errors.Is(err, repository.ErrDeviceNotFound) {
			s.log(ctx).Warn("Failed to delete device with invalid token",
				slog.String("device_id", device.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	s.log(ctx).Info("Presence confirmation delivered",
		slog.String("event_id", event.EventID),
		slog.String("user_id", event.UserID),
		slog.String("kind", string(event.Kind)),
		slog.Int("sent", totalSent),
		slog.Int("failed", totalFailed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	if totalSent == 0 && totalFailed > len(invalidTokens) {
		return errors.Errorf("confirmation for event %s was not delivered", event.EventID)
	}

	return nil
}

func (s *confirmationService) confirmationText(ctx context.Context, event *service.PresenceEvent) (title, body string) {
	courtName := event.CourtName
	if courtName == "" {
		if court, err := s.courtRepo.FindCourtByID(ctx, event.CourtID); err == nil {
			courtName = court.Name
		} else {
			courtName = "the court"
		}
	}

	if event.Kind == service.PresenceCheckedOut {
		return "Checked out", fmt.Sprintf("You left %s. See you next time!", courtName)
	}

	return "Checked in", fmt.Sprintf("You're on the board at %s.", courtName)
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *confirmationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}
