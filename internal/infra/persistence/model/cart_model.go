package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartModel mirrors the 'carts' table. Exactly one of UserID and SessionID is set,
// and each identity owns at most one cart.
type CartModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID    *uuid.UUID     `gorm:"type:uuid;uniqueIndex"`
	SessionID *string        `gorm:"type:varchar(128);uniqueIndex;check:chk_carts_owner,(user_id IS NULL) <> (session_id IS NULL)"`
	Items     []CartItemData `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemData is one line of the carts.items document.
type CartItemData struct {
	ProductID uuid.UUID       `json:"productId"`
	Quantity  int             `json:"quantity"`
	Name      string          `json:"name,omitempty"`
	Price     decimal.Decimal `json:"price"`
	Images    []string        `json:"images,omitempty"`
	AddedAt   time.Time       `json:"addedAt"`
}
