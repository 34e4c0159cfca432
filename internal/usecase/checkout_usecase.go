package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutInput is the customer-supplied part of a checkout.
type CheckoutInput struct {
	Name          string `validate:"required,max=200"`
	Email         string `validate:"required,email,max=254"`
	Phone         string `validate:"required,e164"`
	Address       string `validate:"required,max=500"`
	Notes         string `validate:"max=1000"`
	PaymentMethod string
}

// CheckoutOutput identifies the created order.
type CheckoutOutput struct {
	OrderID         uuid.UUID `json:"orderId"`
	ConfirmationURL string    `json:"confirmationUrl"`
}

// CheckoutUsecase turns an owner's cart into an order.
type CheckoutUsecase interface {
	// PlaceOrder validates the input, freezes the cart into a Pending order, triggers the
	// new-order notification and reminder, and clears the cart.
	PlaceOrder(ctx context.Context, owner entity.CartOwner, input *CheckoutInput) (*CheckoutOutput, error)
}
