package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerModel mirrors the 'customers' table. Email is stored lowercased.
type CustomerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Email     string    `gorm:"type:varchar(254);not null;uniqueIndex"`
	Phone     string    `gorm:"type:varchar(32)"`
	Address   string    `gorm:"type:varchar(500)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// OrderModel mirrors the 'orders' table. Contact and amount columns are written once.
type OrderModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ContactName    string          `gorm:"type:varchar(200);not null"`
	ContactEmail   string          `gorm:"type:varchar(254);not null;index"`
	ContactPhone   string          `gorm:"type:varchar(32);not null"`
	ContactAddress string          `gorm:"type:varchar(500);not null"`
	ContactNotes   string          `gorm:"type:text"`
	Subtotal       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryFee    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentMethod  string          `gorm:"type:varchar(32)"`
	Status         string          `gorm:"type:varchar(32);not null;index"`
	Confirmed      bool            `gorm:"not null;default:false;index"`
	ConfirmedAt    *time.Time
	ProofOfPayment *string `gorm:"type:varchar(500)"`
	ReminderSentAt *time.Time
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time

	Customer *CustomerModel   `gorm:"foreignKey:CustomerID"`
	Items    []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Position keeps the cart line order.
type OrderItemModel struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position  int             `gorm:"primaryKey;autoIncrement:false"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(200);not null"`
	Quantity  int             `gorm:"not null;check:chk_order_items_quantity,quantity >= 1"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
