package worker

import (
	"context"
	"log/slog"
	"time"

	"courtcrowd/config"
	"courtcrowd/internal/delivery"
	"courtcrowd/internal/delivery/worker/handler"
	"courtcrowd/internal/domain/constants"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

// kafkaReader is the subset of *kafka.Reader used by the consumer
type kafkaReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaConsumer struct {
	reader      kafkaReader
	processor   *handler.EventProcessor
	logger      *slog.Logger
	maxAttempts int
	backoff     time.Duration

	stopCtx context.Context
	stop    context.CancelFunc
	done    chan struct{}
}

// KafkaConsumerParams holds dependencies for the Kafka consumer
type KafkaConsumerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Processor *handler.EventProcessor
}

// NewKafkaConsumer creates the presence event consumer. It serves nothing unless the kafka provider is configured.
func NewKafkaConsumer(params KafkaConsumerParams) delivery.Delivery {
	cfg := params.Cfg.PubSub
	if cfg == nil || cfg.Provider != constants.PubSubProviderKafka {
		return newKafkaConsumer(nil, params.Processor, params.Logger)
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	})
	consumer := newKafkaConsumer(reader, params.Processor, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: consumer.shutdown,
	})

	return consumer
}

func newKafkaConsumer(reader kafkaReader, processor *handler.EventProcessor, logger *slog.Logger) *kafkaConsumer {
	stopCtx, stop := context.WithCancel(context.Background())

	return &kafkaConsumer{
		reader:      reader,
		processor:   processor,
		logger:      logger,
		maxAttempts: defaultMaxAttempts,
		backoff:     defaultRetryBackoff,
		stopCtx:     stopCtx,
		stop:        stop,
		done:        make(chan struct{}),
	}
}

// Serve consumes presence events until shutdown. Offsets are committed after each message is settled.
func (k *kafkaConsumer) Serve(ctx context.Context) error {
	defer close(k.done)

	if k.reader == nil {
		k.logger.Info("Kafka consumer disabled")

		return nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stopAfter := context.AfterFunc(k.stopCtx, cancel)
	defer stopAfter()

	k.logger.Info("Starting Kafka consumer")

	for {
		msg, err := k.reader.FetchMessage(runCtx)
		if err != nil {
			if runCtx.Err() != nil {
				return nil
			}

			return errors.Wrap(err, "failed to fetch kafka message")
		}

		if !k.settle(runCtx, msg) {
			return nil
		}

		if err := k.reader.CommitMessages(runCtx, msg); err != nil {
			if runCtx.Err() != nil {
				return nil
			}
			k.logger.Warn("[Kafka] Failed to commit offset",
				slog.Int("partition", msg.Partition),
				slog.Int64("offset", msg.Offset),
				slog.Any("error", err),
			)
		}
	}
}

// settle processes msg, retrying retryable failures with linear backoff.
// It returns false when ctx ended before the message was settled.
func (k *kafkaConsumer) settle(ctx context.Context, msg kafka.Message) bool {
	attempts, ok, err := processWithRetry(ctx, k.processor, msg.Value, headerValue(msg.Headers, "request_id"), k.maxAttempts, k.backoff)
	if ok && err != nil {
		k.logger.Error("[Kafka] Dropping presence event",
			slog.Int64("offset", msg.Offset),
			slog.Int("attempts", attempts),
			slog.Any("error", err),
		)
	}

	return ok
}

func (k *kafkaConsumer) shutdown(ctx context.Context) error {
	k.logger.Info("Shutting down Kafka consumer")
	k.stop()

	select {
	case <-k.done:
	case <-ctx.Done():
	}

	return errors.WithStack(k.reader.Close())
}

func headerValue(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}

	return ""
}
