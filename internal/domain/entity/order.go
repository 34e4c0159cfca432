package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// orderTransitions maps a target status to the statuses it may be reached from.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusProcessing: {OrderStatusPending},
	OrderStatusShipped:    {OrderStatusProcessing},
	OrderStatusDelivered:  {OrderStatusShipped},
	OrderStatusCancelled:  {OrderStatusPending, OrderStatusProcessing, OrderStatusShipped},
}

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the known values.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, from := range orderTransitions[next] {
		if from == s {
			return true
		}
	}

	return false
}

// PaymentMethod is how the customer intends to pay.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

// IsValid checks if the payment method is supported.
func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCash || m == PaymentMethodBankTransfer
}

// ContactDetails is the customer snapshot captured on an order.
type ContactDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes,omitempty"`
}

// OrderItem is a frozen order line. Its price never follows later product changes.
type OrderItem struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// LineTotal is unit price times quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is a placed order. Contact, items and amounts are fixed at creation;
// status, confirmation and payment proof change over its lifecycle.
type Order struct {
	ID             uuid.UUID
	CustomerID     uuid.UUID
	Contact        ContactDetails
	Items          []OrderItem
	Subtotal       decimal.Decimal
	DeliveryFee    decimal.Decimal
	Total          decimal.Decimal
	PaymentMethod  PaymentMethod
	Status         OrderStatus
	Confirmed      bool
	ConfirmedAt    *time.Time
	ProofOfPayment *string
	ReminderSentAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewOrder freezes the cart lines into a Pending, unconfirmed order.
func NewOrder(customerID uuid.UUID, contact ContactDetails, cart *Cart, method PaymentMethod, deliveryFee decimal.Decimal) *Order {
	items := make([]OrderItem, 0, len(cart.Items))
	subtotal := decimal.Zero
	for _, line := range cart.Items {
		item := OrderItem{
			ProductID: line.ProductID,
			Name:      line.Snapshot.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.Snapshot.Price,
		}
		subtotal = subtotal.Add(item.LineTotal())
		items = append(items, item)
	}

	return &Order{
		ID:            uuid.New(),
		CustomerID:    customerID,
		Contact:       contact,
		Items:         items,
		Subtotal:      subtotal,
		DeliveryFee:   deliveryFee,
		Total:         subtotal.Add(deliveryFee),
		PaymentMethod: method,
		Status:        OrderStatusPending,
	}
}

// ProofPaymentMethod is the method used to judge a payment proof.
// Orders saved without a method are treated as bank transfers.
func (o *Order) ProofPaymentMethod() PaymentMethod {
	if o.PaymentMethod == "" {
		return PaymentMethodBankTransfer
	}

	return o.PaymentMethod
}

// NeedsReminder reports whether a confirmation reminder is still due for the order.
func (o *Order) NeedsReminder() bool {
	return !o.Confirmed && !o.Status.IsTerminal() && o.ReminderSentAt == nil
}

// OrderFilter narrows an admin order listing.
type OrderFilter struct {
	Status    *OrderStatus
	Confirmed *bool
	Page      int
	Limit     int
}

// Offset returns the number of rows to skip for the filter's page.
func (f OrderFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}

	return (f.Page - 1) * f.Limit
}
