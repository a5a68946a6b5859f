package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"courtcrowd/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// RoutingKeyPrefix prefixes the event kind in routing keys, e.g. "presence.checked_in".
const RoutingKeyPrefix = "presence."

// amqpPublishChannel is the subset of *amqp.Channel used by the publisher
type amqpPublishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// rabbitMQPublisher implements EventPublisher on a durable topic exchange
type rabbitMQPublisher struct {
	channel  amqpPublishChannel
	conn     io.Closer
	exchange string
	logger   *slog.Logger
}

// NewRabbitMQPublisher dials url and declares the topic exchange
func NewRabbitMQPublisher(url, exchange string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to open rabbitmq channel")
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, errors.Wrapf(err, "failed to declare exchange %s", exchange)
	}

	return newRabbitMQPublisher(ch, conn, exchange, logger), nil
}

func newRabbitMQPublisher(channel amqpPublishChannel, conn io.Closer, exchange string, logger *slog.Logger) *rabbitMQPublisher {
	return &rabbitMQPublisher{
		channel:  channel,
		conn:     conn,
		exchange: exchange,
		logger:   logger,
	}
}

// PublishPresenceEvent publishes the event as a persistent JSON message routed by its kind
func (p *rabbitMQPublisher) PublishPresenceEvent(ctx context.Context, event *service.PresenceEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for k, v := range presenceAttributes(event) {
		headers[k] = v
	}

	if err := p.channel.PublishWithContext(ctx, p.exchange, RoutingKeyPrefix+string(event.Kind), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Timestamp:    event.OccurredAt,
		Headers:      headers,
		Body:         data,
	}); err != nil {
		return errors.Wrap(err, "failed to publish presence event to rabbitmq")
	}

	p.logger.Debug("[RabbitMQ] Event published", slog.String("event_id", event.EventID))

	return nil
}

// Close closes the channel and then the connection
func (p *rabbitMQPublisher) Close() error {
	_ = p.channel.Close()
	if p.conn == nil {
		return nil
	}

	return errors.WithStack(p.conn.Close())
}
