package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"courtcrowd/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

const kafkaWriteTimeout = 5 * time.Second

// kafkaWriter is the subset of *kafka.Writer used by the publisher
type kafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaPublisher implements EventPublisher on a Kafka topic.
// Messages are keyed by user id so events for one user share a partition.
type kafkaPublisher struct {
	writer kafkaWriter
	logger *slog.Logger
}

// NewKafkaPublisher creates a publisher writing to topic on brokers
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) service.EventPublisher {
	return &kafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
		logger: logger,
	}
}

// PublishPresenceEvent writes the event as a JSON message
func (p *kafkaPublisher) PublishPresenceEvent(ctx context.Context, event *service.PresenceEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := make([]kafka.Header, 0, 4)
	for k, v := range presenceAttributes(event) {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	ctx, cancel := context.WithTimeout(ctx, kafkaWriteTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(event.UserID),
		Value:   data,
		Headers: headers,
	}); err != nil {
		return errors.Wrap(err, "failed to write presence event to kafka")
	}

	p.logger.Debug("[Kafka] Event published", slog.String("event_id", event.EventID))

	return nil
}

// Close flushes pending writes
func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
