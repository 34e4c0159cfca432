package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrCartOwnerInvalid is returned when a cart owner names neither or both identities.
var ErrCartOwnerInvalid = errors.New("cart owner must be exactly one of user or session")

// CartOwner is the identity a cart belongs to: an authenticated user or an anonymous session.
type CartOwner struct {
	UserID    *uuid.UUID
	SessionID string
}

// UserOwner builds an owner bound to an authenticated user.
func UserOwner(userID uuid.UUID) CartOwner {
	return CartOwner{UserID: &userID}
}

// SessionOwner builds an owner bound to an anonymous session.
func SessionOwner(sessionID string) CartOwner {
	return CartOwner{SessionID: sessionID}
}

// ResolveCartOwner picks the owner for a request. The user id wins when both are present;
// ok is false when neither is.
func ResolveCartOwner(userID *uuid.UUID, sessionID string) (owner CartOwner, ok bool) {
	if userID != nil && *userID != uuid.Nil {
		return UserOwner(*userID), true
	}
	if sessionID != "" {
		return SessionOwner(sessionID), true
	}

	return CartOwner{}, false
}

// IsUser reports whether the owner is an authenticated user.
func (o CartOwner) IsUser() bool {
	return o.UserID != nil
}

// Validate enforces that exactly one identity is set.
func (o CartOwner) Validate() error {
	hasUser := o.UserID != nil && *o.UserID != uuid.Nil
	hasSession := o.SessionID != ""
	if hasUser == hasSession {
		return ErrCartOwnerInvalid
	}

	return nil
}

// String renders the owner for logs.
func (o CartOwner) String() string {
	if o.UserID != nil {
		return "user:" + o.UserID.String()
	}

	return "session:" + o.SessionID
}

// ProductSnapshot is the denormalized product data stored on a cart line.
type ProductSnapshot struct {
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Images []string        `json:"images"`
}

// IsEmpty reports whether the snapshot still needs to be backfilled.
func (s ProductSnapshot) IsEmpty() bool {
	return s.Name == ""
}

// CartItem is one product line in a cart.
type CartItem struct {
	ProductID uuid.UUID       `json:"productId"`
	Quantity  int             `json:"quantity"`
	Snapshot  ProductSnapshot `json:"snapshot"`
	AddedAt   time.Time       `json:"addedAt"`
}

// LineTotal is the snapshot price times quantity.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Snapshot.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart holds at most one line per product.
type Cart struct {
	ID        uuid.UUID
	Owner     CartOwner
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCart returns an empty cart for owner.
func NewCart(owner CartOwner) *Cart {
	return &Cart{
		Owner: owner,
		Items: []CartItem{},
	}
}

func (c *Cart) indexOf(productID uuid.UUID) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}

	return -1
}

// FindItem returns the line for productID.
func (c *Cart) FindItem(productID uuid.UUID) (CartItem, bool) {
	idx := c.indexOf(productID)
	if idx < 0 {
		return CartItem{}, false
	}

	return c.Items[idx], true
}

// AddItem merges quantity into an existing line or appends a new line with snapshot.
// An existing line keeps its snapshot unless it was never filled.
func (c *Cart) AddItem(productID uuid.UUID, quantity int, snapshot ProductSnapshot, now time.Time) {
	if idx := c.indexOf(productID); idx >= 0 {
		c.Items[idx].Quantity += quantity
		if c.Items[idx].Snapshot.IsEmpty() {
			c.Items[idx].Snapshot = snapshot
		}

		return
	}

	c.Items = append(c.Items, CartItem{
		ProductID: productID,
		Quantity:  quantity,
		Snapshot:  snapshot,
		AddedAt:   now,
	})
}

// SetQuantity overwrites the quantity of an existing line. It reports false when the line is absent.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity int) bool {
	idx := c.indexOf(productID)
	if idx < 0 {
		return false
	}
	c.Items[idx].Quantity = quantity

	return true
}

// RemoveItem drops the line for productID and reports whether anything was removed.
func (c *Cart) RemoveItem(productID uuid.UUID) bool {
	idx := c.indexOf(productID)
	if idx < 0 {
		return false
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)

	return true
}

// Clear empties the cart. The cart itself and its owner binding stay.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// MissingSnapshots lists products whose lines have no snapshot yet.
func (c *Cart) MissingSnapshots() []uuid.UUID {
	var ids []uuid.UUID
	for _, item := range c.Items {
		if item.Snapshot.IsEmpty() {
			ids = append(ids, item.ProductID)
		}
	}

	return ids
}

// FillSnapshot sets the snapshot of a line that has none. It reports whether a line changed.
func (c *Cart) FillSnapshot(productID uuid.UUID, snapshot ProductSnapshot) bool {
	idx := c.indexOf(productID)
	if idx < 0 || !c.Items[idx].Snapshot.IsEmpty() {
		return false
	}
	c.Items[idx].Snapshot = snapshot

	return true
}

// Subtotal sums snapshot price times quantity over all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}

	return total
}

// CartLine is the read view of a cart line.
type CartLine struct {
	Product   CartProduct     `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// CartProduct is the product part of a CartLine.
type CartProduct struct {
	ID     uuid.UUID       `json:"id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Images []string        `json:"images"`
}

// Lines formats the cart for display from the stored snapshots.
func (c *Cart) Lines() []CartLine {
	lines := make([]CartLine, 0, len(c.Items))
	for _, item := range c.Items {
		images := item.Snapshot.Images
		if images == nil {
			images = []string{}
		}
		lines = append(lines, CartLine{
			Product: CartProduct{
				ID:     item.ProductID,
				Name:   item.Snapshot.Name,
				Price:  item.Snapshot.Price,
				Images: images,
			},
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal(),
		})
	}

	return lines
}
