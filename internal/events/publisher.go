// Package events publishes order lifecycle events for downstream consumers
// such as the print queue display.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"print-kiosk-backend/internal/models"
)

const (
	OrderCreated = "order.created"
	OrderPaid    = "order.paid"
)

// OrderEvent is the message body for every routing key.
type OrderEvent struct {
	Event       string             `json:"event"`
	OrderID     string             `json:"order_id"`
	Code        string             `json:"code"`
	Status      models.OrderStatus `json:"status"`
	ColorMode   models.ColorMode   `json:"color_mode"`
	Copies      int                `json:"copies"`
	Pages       int                `json:"pages"`
	AmountCents int64              `json:"amount_cents"`
	PaymentRef  string             `json:"payment_ref,omitempty"`
	OccurredAt  time.Time          `json:"occurred_at"`
}

func NewOrderEvent(event string, order *models.Order) OrderEvent {
	e := OrderEvent{
		Event:       event,
		OrderID:     order.ID.String(),
		Code:        order.Code,
		Status:      order.Status,
		ColorMode:   order.ColorMode,
		Copies:      order.Copies,
		Pages:       order.Pages,
		AmountCents: order.AmountCents,
		OccurredAt:  time.Now().UTC(),
	}
	if order.PaymentRef != nil {
		e.PaymentRef = *order.PaymentRef
	}
	return e
}

type RabbitMQPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewRabbitMQPublisher(amqpURL, exchange string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &RabbitMQPublisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}, nil
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

func (p *RabbitMQPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct {
	logger *zap.Logger
}

func NewNoopPublisher(logger *zap.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

func (p *NoopPublisher) Publish(_ context.Context, routingKey string, payload any) error {
	p.logger.Debug("event not published, no broker configured",
		zap.String("routing_key", routingKey), zap.Any("payload", payload))
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}
