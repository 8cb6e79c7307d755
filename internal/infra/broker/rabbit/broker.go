// Package rabbit implements the durable work queue that decouples URL
// submission from feed ingestion, on top of RabbitMQ.
//
// Delivery semantics are at-least-once: handlers acknowledge only after
// returning, a failed delivery is requeued once, and a redelivered failure
// is routed to the queue's dead-letter companion instead of cycling
// forever.
package rabbit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/sync/errgroup"

	"newsfeed/internal/observability/metrics"
)

// ErrUnavailable indicates the broker connection could not be established
// or has been lost.
var ErrUnavailable = errors.New("broker unavailable")

// Handler processes one delivered message body. A nil return acknowledges
// the delivery; an error negatively acknowledges it (requeue on first
// failure, dead-letter on redelivery).
type Handler func(ctx context.Context, body []byte) error

// Broker wraps an AMQP connection and channel. It is constructed once at
// startup and passed explicitly to the components that publish or consume.
type Broker struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	logger *slog.Logger
}

// Dial connects to the broker at the given AMQP URI.
func Dial(addr string, logger *slog.Logger) (*Broker, error) {
	conn, err := amqp.Dial(addr)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", ErrUnavailable, addr, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrUnavailable, err)
	}

	logger.Info("broker connection established", slog.String("addr", addr))
	return &Broker{conn: conn, ch: ch, logger: logger}, nil
}

// Close releases the channel and connection.
func (b *Broker) Close() error {
	if err := b.ch.Close(); err != nil {
		return fmt.Errorf("close channel: %w", err)
	}
	return b.conn.Close()
}

// DeclareQueue declares the durable work queue together with its
// dead-letter companion "<name>.dlq". Declaration is idempotent; both the
// publisher and the consumer call it so either side can start first.
func (b *Broker) DeclareQueue(name string) error {
	dlq := name + ".dlq"
	if _, err := b.ch.QueueDeclare(dlq, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", dlq, err)
	}

	args := amqp.Table{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": dlq,
	}
	if _, err := b.ch.QueueDeclare(name, true, false, false, false, args); err != nil {
		return fmt.Errorf("declare queue %s: %w", name, err)
	}
	return nil
}

// Publish enqueues a persistent message on the named queue. The body is
// the raw UTF-8 feed URL; no envelope or versioning is applied.
func (b *Broker) Publish(ctx context.Context, queue string, body []byte) error {
	err := b.ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		MessageId:    uuid.NewString(),
		ContentType:  "text/plain",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("%w: publish to %s: %v", ErrUnavailable, queue, err)
	}
	return nil
}

// Consume registers the handler on the named queue and blocks until the
// context is cancelled or the delivery channel closes. Up to workers
// deliveries are processed concurrently; the prefetch window is bounded to
// the pool size so the broker never floods a slow consumer.
func (b *Broker) Consume(ctx context.Context, queue string, workers int, handler Handler) error {
	if workers <= 0 {
		workers = 1
	}

	if err := b.ch.Qos(workers, 0, false); err != nil {
		return fmt.Errorf("%w: set qos: %v", ErrUnavailable, err)
	}

	deliveries, err := b.ch.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("%w: consume %s: %v", ErrUnavailable, queue, err)
	}

	b.logger.Info("consuming queue",
		slog.String("queue", queue),
		slog.Int("workers", workers))

	return consumeLoop(ctx, deliveries, workers, handler, b.logger)
}

// consumeLoop fans deliveries out to a bounded pool of workers. A handler
// failure never stops the loop; only context cancellation or a closed
// delivery channel does.
func consumeLoop(ctx context.Context, deliveries <-chan amqp.Delivery, workers int, handler Handler, logger *slog.Logger) error {
	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case d, ok := <-deliveries:
					if !ok {
						return nil
					}
					handleDelivery(ctx, d, handler, logger)
				}
			}
		})
	}
	return g.Wait()
}

// handleDelivery runs the handler and settles the delivery. Messages are
// acknowledged only after the handler returns cleanly; a first failure is
// requeued, a redelivered failure is dead-lettered.
func handleDelivery(ctx context.Context, d amqp.Delivery, handler Handler, logger *slog.Logger) {
	err := handler(ctx, d.Body)
	if err == nil {
		if ackErr := d.Ack(false); ackErr != nil {
			logger.Error("failed to acknowledge delivery",
				slog.String("message_id", d.MessageId),
				slog.Any("error", ackErr))
		}
		return
	}

	if d.Redelivered {
		metrics.RecordBrokerRequeue("dead_lettered")
		logger.Warn("delivery failed after redelivery, dead-lettering",
			slog.String("message_id", d.MessageId),
			slog.Any("error", err))
		if nackErr := d.Nack(false, false); nackErr != nil {
			logger.Error("failed to dead-letter delivery", slog.Any("error", nackErr))
		}
		return
	}

	metrics.RecordBrokerRequeue("requeued")
	logger.Warn("delivery failed, requeueing once",
		slog.String("message_id", d.MessageId),
		slog.Any("error", err))
	if nackErr := d.Nack(false, true); nackErr != nil {
		logger.Error("failed to requeue delivery", slog.Any("error", nackErr))
	}
}
