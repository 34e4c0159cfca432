package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartView is the formatted read view of a cart.
type CartView struct {
	Items    []entity.CartLine `json:"items"`
	Count    int               `json:"count"`
	Subtotal decimal.Decimal   `json:"subtotal"`
}

// CartUsecase defines the cart store operations for one owner.
type CartUsecase interface {
	// GetCart returns the owner's cart, creating an empty one on first access.
	GetCart(ctx context.Context, owner entity.CartOwner) (*CartView, error)

	// AddItem merges quantity into the product's line or inserts a new line.
	AddItem(ctx context.Context, owner entity.CartOwner, productID uuid.UUID, quantity int) (*CartView, error)

	// UpdateQuantity overwrites the quantity of an existing line. Quantities below 1 are rejected.
	UpdateQuantity(ctx context.Context, owner entity.CartOwner, productID uuid.UUID, quantity int) (*CartView, error)

	// RemoveItem drops the product's line. Removing an absent line is not an error.
	RemoveItem(ctx context.Context, owner entity.CartOwner, productID uuid.UUID) (*CartView, error)

	// ClearCart empties the cart and keeps the cart record.
	ClearCart(ctx context.Context, owner entity.CartOwner) error
}
