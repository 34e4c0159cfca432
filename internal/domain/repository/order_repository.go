package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderStateChanged is returned when a conditional update finds the order no longer
	// in the expected state.
	ErrOrderStateChanged = errors.New("order state changed concurrently")
)

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// CreateOrder persists a new order with its frozen lines.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order by its ID.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListOrders returns one page of orders, newest first, and the total match count.
	ListOrders(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, int64, error)

	// ListReminderCandidates returns unconfirmed, non-terminal orders whose reminder has not been sent.
	ListReminderCandidates(ctx context.Context) ([]*entity.Order, error)

	// MarkOrderConfirmed sets confirmed and moves a still-unconfirmed order to Processing.
	// It returns ErrOrderStateChanged when the order was already confirmed.
	MarkOrderConfirmed(ctx context.Context, id uuid.UUID, at time.Time) error

	// AttachPaymentProof stores the proof reference and sets the order status.
	AttachPaymentProof(ctx context.Context, id uuid.UUID, proofRef string, status entity.OrderStatus) error

	// UpdateOrderStatus moves an order from one status to another.
	// It returns ErrOrderStateChanged when the order is no longer in from.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error

	// MarkReminderSent records that the confirmation reminder went out.
	MarkReminderSent(ctx context.Context, id uuid.UUID, at time.Time) error
}
