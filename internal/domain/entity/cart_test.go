package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func TestResolveCartOwner(t *testing.T) {
	userID := uuid.New()

	owner, ok := ResolveCartOwner(&userID, "s1")
	require.True(t, ok)
	assert.True(t, owner.IsUser())
	assert.Empty(t, owner.SessionID)
	assert.NoError(t, owner.Validate())

	owner, ok = ResolveCartOwner(nil, "s1")
	require.True(t, ok)
	assert.False(t, owner.IsUser())
	assert.Equal(t, "session:s1", owner.String())

	_, ok = ResolveCartOwner(nil, "")
	assert.False(t, ok)
}

func TestCartOwner_Validate(t *testing.T) {
	userID := uuid.New()

	assert.ErrorIs(t, CartOwner{}.Validate(), ErrCartOwnerInvalid)
	assert.ErrorIs(t, CartOwner{UserID: &userID, SessionID: "s1"}.Validate(), ErrCartOwnerInvalid)
	assert.NoError(t, UserOwner(userID).Validate())
}

func TestCart_AddItemMergesQuantity(t *testing.T) {
	productID := uuid.New()
	cart := NewCart(SessionOwner("s1"))
	snapshot := ProductSnapshot{Name: "Rice", Price: decimal.NewFromInt(1000)}

	cart.AddItem(productID, 2, snapshot, fixedNow)
	cart.AddItem(productID, 3, ProductSnapshot{Name: "Renamed", Price: decimal.NewFromInt(1)}, fixedNow)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, "Rice", cart.Items[0].Snapshot.Name)
}

func TestCart_SetQuantityAndRemove(t *testing.T) {
	productID := uuid.New()
	cart := NewCart(SessionOwner("s1"))
	cart.AddItem(productID, 2, ProductSnapshot{Name: "Rice"}, fixedNow)

	assert.True(t, cart.SetQuantity(productID, 1))
	assert.False(t, cart.SetQuantity(uuid.New(), 1))
	assert.Equal(t, 1, cart.Items[0].Quantity)

	assert.False(t, cart.RemoveItem(uuid.New()))
	assert.Len(t, cart.Items, 1)
	assert.True(t, cart.RemoveItem(productID))
	assert.True(t, cart.IsEmpty())
}

func TestCart_SnapshotBackfill(t *testing.T) {
	filled, missing := uuid.New(), uuid.New()
	cart := NewCart(SessionOwner("s1"))
	cart.AddItem(filled, 1, ProductSnapshot{Name: "Rice"}, fixedNow)
	cart.AddItem(missing, 1, ProductSnapshot{}, fixedNow)

	assert.Equal(t, []uuid.UUID{missing}, cart.MissingSnapshots())
	assert.False(t, cart.FillSnapshot(filled, ProductSnapshot{Name: "Other"}))
	assert.True(t, cart.FillSnapshot(missing, ProductSnapshot{Name: "Beans", Price: decimal.NewFromInt(500)}))
	assert.Empty(t, cart.MissingSnapshots())
}

func TestCart_LinesAndSubtotal(t *testing.T) {
	productID := uuid.New()
	cart := NewCart(SessionOwner("s1"))
	cart.AddItem(productID, 3, ProductSnapshot{Name: "Rice", Price: decimal.RequireFromString("10.50")}, fixedNow)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, productID, lines[0].Product.ID)
	assert.Equal(t, []string{}, lines[0].Product.Images)
	assert.Equal(t, "31.50", lines[0].LineTotal.StringFixed(2))
	assert.Equal(t, "31.50", cart.Subtotal().StringFixed(2))
}
