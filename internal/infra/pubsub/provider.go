package pubsub

import (
	"context"
	"log/slog"

	"courtcrowd/config"
	"courtcrowd/internal/domain/constants"
	"courtcrowd/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishPresenceEvent(ctx context.Context, event *service.PresenceEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("event_id", event.EventID),
		slog.String("kind", string(event.Kind)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	// If PubSub is not configured, return a no-op publisher
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.EventPublisher
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	case constants.PubSubProviderKafka:
		if len(cfg.Kafka.Brokers) == 0 {
			return nil, errors.New("brokers are required for kafka provider")
		}
		if cfg.Kafka.Topic == "" {
			return nil, errors.New("topic is required for kafka provider")
		}
		logger.Info("Using Kafka publisher",
			slog.Any("brokers", cfg.Kafka.Brokers),
			slog.String("topic", cfg.Kafka.Topic),
		)

		publisher = NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)

	case constants.PubSubProviderRabbitMQ:
		if cfg.RabbitMQ.URL == "" {
			return nil, errors.New("url is required for rabbitmq provider")
		}
		logger.Info("Using RabbitMQ publisher",
			slog.String("exchange", cfg.RabbitMQ.Exchange),
		)

		publisher, err = NewRabbitMQPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// presenceAttributes returns the message attributes used for filtering and tracing
func presenceAttributes(event *service.PresenceEvent) map[string]string {
	attributes := map[string]string{
		"event_id": event.EventID,
		"kind":     string(event.Kind),
		"user_id":  event.UserID,
		"court_id": event.CourtID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
