package worker

import (
	"context"
	"io"
	"log/slog"
	"time"

	"courtcrowd/config"
	"courtcrowd/internal/delivery"
	"courtcrowd/internal/delivery/worker/handler"
	"courtcrowd/internal/domain/constants"
	"courtcrowd/internal/infra/pubsub"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

const rabbitMQConsumerTag = "presenceworker"

// amqpConsumeChannel is the subset of *amqp.Channel used by the consumer
type amqpConsumeChannel interface {
	ConsumeWithContext(ctx context.Context, queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Close() error
}

type rabbitMQConsumer struct {
	channel     amqpConsumeChannel
	conn        io.Closer
	queue       string
	processor   *handler.EventProcessor
	logger      *slog.Logger
	maxAttempts int
	backoff     time.Duration

	stopCtx context.Context
	stop    context.CancelFunc
	done    chan struct{}
}

// RabbitMQConsumerParams holds dependencies for the RabbitMQ consumer
type RabbitMQConsumerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Processor *handler.EventProcessor
}

// NewRabbitMQConsumer binds the confirmation queue to every presence routing key.
// It serves nothing unless the rabbitmq provider is configured.
func NewRabbitMQConsumer(params RabbitMQConsumerParams) (delivery.Delivery, error) {
	cfg := params.Cfg.PubSub
	if cfg == nil || cfg.Provider != constants.PubSubProviderRabbitMQ {
		return newRabbitMQConsumer(nil, nil, "", params.Processor, params.Logger), nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial rabbitmq")
	}
	ch, err := declareConfirmationQueue(conn, cfg.RabbitMQ)
	if err != nil {
		_ = conn.Close()

		return nil, err
	}

	consumer := newRabbitMQConsumer(ch, conn, cfg.RabbitMQ.Queue, params.Processor, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: consumer.shutdown,
	})

	return consumer, nil
}

func declareConfirmationQueue(conn *amqp.Connection, cfg config.RabbitMQConfig) (*amqp.Channel, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open rabbitmq channel")
	}

	setup := func() error {
		if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
			return errors.Wrapf(err, "failed to declare exchange %s", cfg.Exchange)
		}
		if _, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
			return errors.Wrapf(err, "failed to declare queue %s", cfg.Queue)
		}
		if err := ch.QueueBind(cfg.Queue, pubsub.RoutingKeyPrefix+"*", cfg.Exchange, false, nil); err != nil {
			return errors.Wrapf(err, "failed to bind queue %s", cfg.Queue)
		}

		// One unacknowledged confirmation at a time, matching the sequential settle loop.
		return errors.WithStack(ch.Qos(1, 0, false))
	}
	if err := setup(); err != nil {
		_ = ch.Close()

		return nil, err
	}

	return ch, nil
}

func newRabbitMQConsumer(
	channel amqpConsumeChannel,
	conn io.Closer,
	queue string,
	processor *handler.EventProcessor,
	logger *slog.Logger,
) *rabbitMQConsumer {
	stopCtx, stop := context.WithCancel(context.Background())

	return &rabbitMQConsumer{
		channel:     channel,
		conn:        conn,
		queue:       queue,
		processor:   processor,
		logger:      logger,
		maxAttempts: defaultMaxAttempts,
		backoff:     defaultRetryBackoff,
		stopCtx:     stopCtx,
		stop:        stop,
		done:        make(chan struct{}),
	}
}

// Serve consumes presence events until shutdown. Each delivery is acked once settled
// and requeued when shutdown interrupts it.
func (r *rabbitMQConsumer) Serve(ctx context.Context) error {
	defer close(r.done)

	if r.channel == nil {
		r.logger.Info("RabbitMQ consumer disabled")

		return nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stopAfter := context.AfterFunc(r.stopCtx, cancel)
	defer stopAfter()

	deliveries, err := r.channel.ConsumeWithContext(runCtx, r.queue, rabbitMQConsumerTag, false, false, false, false, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to consume queue %s", r.queue)
	}

	r.logger.Info("Starting RabbitMQ consumer", slog.String("queue", r.queue))

	for {
		var d amqp.Delivery
		select {
		case <-runCtx.Done():
			return nil
		case msg, open := <-deliveries:
			if !open {
				if runCtx.Err() != nil {
					return nil
				}

				return errors.New("rabbitmq delivery channel closed")
			}
			d = msg
		}

		requestID, _ := d.Headers["request_id"].(string)
		attempts, ok, err := processWithRetry(runCtx, r.processor, d.Body, requestID, r.maxAttempts, r.backoff)
		if !ok {
			if nackErr := d.Nack(false, true); nackErr != nil {
				r.logger.Warn("[RabbitMQ] Failed to requeue delivery", slog.Any("error", nackErr))
			}

			return nil
		}
		if err != nil {
			r.logger.Error("[RabbitMQ] Dropping presence event",
				slog.String("message_id", d.MessageId),
				slog.Int("attempts", attempts),
				slog.Any("error", err),
			)
		}

		if err := d.Ack(false); err != nil {
			r.logger.Warn("[RabbitMQ] Failed to ack delivery",
				slog.Uint64("delivery_tag", d.DeliveryTag),
				slog.Any("error", err),
			)
		}
	}
}

func (r *rabbitMQConsumer) shutdown(ctx context.Context) error {
	r.logger.Info("Shutting down RabbitMQ consumer")
	r.stop()

	select {
	case <-r.done:
	case <-ctx.Done():
	}

	_ = r.channel.Close()

	return errors.WithStack(r.conn.Close())
}
