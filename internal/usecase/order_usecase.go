package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderPage is one page of an admin order listing.
type OrderPage struct {
	Items      []*entity.Order `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"totalPages"`
}

// PaymentProofInput is an uploaded proof of payment.
type PaymentProofInput struct {
	// Email, when set, must match the order's contact email.
	Email       string
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// OrderUsecase defines the order lifecycle operations.
type OrderUsecase interface {
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	ListOrders(ctx context.Context, filter entity.OrderFilter) (*OrderPage, error)

	// ConfirmationURL returns the public confirmation link of an existing order.
	ConfirmationURL(ctx context.Context, id uuid.UUID) (string, error)

	// ConfirmOrder marks an unconfirmed order confirmed, moves it to Processing and cancels its reminder.
	ConfirmOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// SubmitPaymentProof stores a bank-transfer proof and moves the order to Processing.
	SubmitPaymentProof(ctx context.Context, id uuid.UUID, input *PaymentProofInput) (*entity.Order, error)

	// UpdateOrderStatus applies an admin status change along the legal transitions.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
}
