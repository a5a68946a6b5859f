// Package notification delivers check-in confirmations through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"courtcrowd/config"
	"courtcrowd/internal/domain/service"
	"courtcrowd/internal/errors"
	"courtcrowd/internal/infra/metrics"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// maxMulticastTokens is the FCM limit per multicast request
const maxMulticastTokens = 500

// multicastSender is the subset of *messaging.Client used by the service
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
}

// New creates the notification service. Without Firebase credentials a no-op service is returned.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Info("Firebase not configured, push notifications disabled")

		return &noopService{logger: logger}, nil
	}

	return NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	var appCfg *firebase.Config
	if projectID != "" {
		appCfg = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendBatchNotification sends push notifications to device tokens, chunked by the FCM multicast limit
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	invalidTokens = make([]string, 0)

	for start := 0; start < len(tokens); start += maxMulticastTokens {
		chunk := tokens[start:min(start+maxMulticastTokens, len(tokens))]

		response, sendErr := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: chunk,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		})
		if sendErr != nil {
			metrics.NotificationsSent.WithLabelValues(metrics.OutcomeFailed).Add(float64(len(chunk)))

			return successCount, failureCount, invalidTokens, errors.Wrap(sendErr, "failed to send multicast notification")
		}

		successCount += response.SuccessCount
		failureCount += response.FailureCount

		for idx, sendResponse := range response.Responses {
			if sendResponse.Error == nil {
				continue
			}
			if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
				invalidTokens = append(invalidTokens, chunk[idx])
			}
		}
	}

	metrics.NotificationsSent.WithLabelValues(metrics.OutcomeOK).Add(float64(successCount))
	metrics.NotificationsSent.WithLabelValues(metrics.OutcomeFailed).Add(float64(failureCount))

	return successCount, failureCount, invalidTokens, nil
}

// noopService drops notifications when Firebase is not configured
type noopService struct {
	logger *slog.Logger
}

func (s *noopService) SendBatchNotification(ctx context.Context, tokens []string, title, _ string, _ map[string]string) (int, int, []string, error) {
	s.logger.DebugContext(ctx, "Push notifications disabled, dropping",
		slog.String("title", title),
		slog.Int("tokens", len(tokens)),
	)

	return 0, 0, nil, nil
}
