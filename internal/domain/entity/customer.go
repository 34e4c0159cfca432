package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is the buyer record that orders point to. It is looked up by email at checkout
// and created on first purchase.
type Customer struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
