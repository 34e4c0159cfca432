package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCartNotFound is returned when no cart exists for an owner.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository defines the interface for cart persistence. Carts are keyed by owner
// and never hard-deleted.
type CartRepository interface {
	// FindCartByOwner retrieves the cart bound to owner.
	FindCartByOwner(ctx context.Context, owner entity.CartOwner) (*entity.Cart, error)

	// CreateCart persists an empty cart for cart.Owner. When a concurrent request created
	// the same owner's cart first, the existing cart is loaded into cart instead.
	CreateCart(ctx context.Context, cart *entity.Cart) error

	// SaveCartItems replaces the stored lines of cart.
	SaveCartItems(ctx context.Context, cart *entity.Cart) error

	// ClearCartItems empties the lines of the cart bound to owner.
	ClearCartItems(ctx context.Context, owner entity.CartOwner) error
}
