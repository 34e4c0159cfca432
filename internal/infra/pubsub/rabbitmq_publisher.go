package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// rabbitMQPublisher publishes order events to a durable topic exchange, routed by event type.
type rabbitMQPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   *slog.Logger
}

// NewRabbitMQPublisher dials the broker and declares the exchange.
func NewRabbitMQPublisher(url, exchange string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "open rabbitmq channel")
	}

	if err := ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()

		return nil, errors.Wrapf(err, "declare exchange %s", exchange)
	}

	return &rabbitMQPublisher{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
		logger:   logger,
	}, nil
}

func (p *rabbitMQPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := newAMQPMessage(event, body)

	// amqp channels are not safe for concurrent publishing.
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.PublishWithContext(ctx, p.exchange, string(event.Type), false, false, msg); err != nil {
		return errors.Wrapf(err, "publish %s", event.Type)
	}

	p.logger.Debug("[RabbitMQ] Event published",
		slog.String("exchange", p.exchange),
		slog.String("event_type", string(event.Type)),
		slog.String("order_id", event.OrderID),
	)

	return nil
}

func newAMQPMessage(event *service.OrderEvent, body []byte) amqp.Publishing {
	headers := amqp.Table{}
	for k, v := range eventAttributes(event) {
		headers[k] = v
	}

	return amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     event.EventID,
		CorrelationId: event.RequestID,
		Type:          string(event.Type),
		Timestamp:     event.OccurredAt,
		Headers:       headers,
		Body:          body,
	}
}

func (p *rabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			firstErr = err
		}
	}
	if p.conn != nil && !p.conn.IsClosed() {
		if err := p.conn.CloseDeadline(time.Now().Add(5 * time.Second)); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return errors.WithStack(firstErr)
}
