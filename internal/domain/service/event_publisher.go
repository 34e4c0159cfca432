package service

import (
	"context"
	"time"
)

// OrderEventType names a lifecycle transition.
type OrderEventType string

const (
	OrderEventCreated        OrderEventType = "order.created"
	OrderEventConfirmed      OrderEventType = "order.confirmed"
	OrderEventProofSubmitted OrderEventType = "order.proof_submitted"
	OrderEventStatusChanged  OrderEventType = "order.status_changed"
	OrderEventReminderSent   OrderEventType = "order.reminder_sent"
)

// OrderEvent is published for downstream consumers whenever an order changes.
type OrderEvent struct {
	RequestID  string         `json:"request_id,omitempty"` // For distributed tracing
	EventID    string         `json:"event_id"`
	Type       OrderEventType `json:"type"`
	OrderID    string         `json:"order_id"`
	Status     string         `json:"status"`
	Confirmed  bool           `json:"confirmed"`
	Total      string         `json:"total"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
