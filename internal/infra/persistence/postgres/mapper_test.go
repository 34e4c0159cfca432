package postgres

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartMapper_RoundTrip(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	productID := uuid.New()

	cart := entity.NewCart(entity.SessionOwner("s1"))
	cart.ID = uuid.New()
	cart.AddItem(productID, 3, entity.ProductSnapshot{
		Name:   "Ankara Tote",
		Price:  decimal.RequireFromString("1999.50"),
		Images: []string{"/img/tote.jpg"},
	}, now)

	cartM := fromCartDomain(cart)
	require.NotNil(t, cartM.SessionID)
	assert.Equal(t, "s1", *cartM.SessionID)
	assert.Nil(t, cartM.UserID)

	back := toCartDomain(cartM)
	assert.Equal(t, cart.Owner, back.Owner)
	require.Len(t, back.Items, 1)
	assert.Equal(t, 3, back.Items[0].Quantity)
	assert.Equal(t, "Ankara Tote", back.Items[0].Snapshot.Name)
	assert.True(t, back.Items[0].Snapshot.Price.Equal(decimal.RequireFromString("1999.5")))
	assert.Equal(t, now, back.Items[0].AddedAt)
}

func TestCartMapper_UserOwner(t *testing.T) {
	userID := uuid.New()
	cart := entity.NewCart(entity.UserOwner(userID))

	cartM := fromCartDomain(cart)

	assert.Nil(t, cartM.SessionID)
	require.NotNil(t, cartM.UserID)
	assert.Equal(t, userID, *cartM.UserID)
	assert.NotNil(t, cartM.Items)
}

func TestOrderMapper_KeepsLineOrderAndAmounts(t *testing.T) {
	proof := "/uploads/proof/1-receipt.png"
	order := &entity.Order{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Contact:    entity.ContactDetails{Name: "Ada", Email: "ada@example.com", Phone: "+2348031234567", Address: "Lagos"},
		Items: []entity.OrderItem{
			{ProductID: uuid.New(), Name: "First", Quantity: 2, UnitPrice: decimal.NewFromInt(1000)},
			{ProductID: uuid.New(), Name: "Second", Quantity: 1, UnitPrice: decimal.NewFromInt(500)},
		},
		Subtotal:       decimal.NewFromInt(2500),
		DeliveryFee:    decimal.NewFromInt(2500),
		Total:          decimal.NewFromInt(5000),
		PaymentMethod:  entity.PaymentMethodBankTransfer,
		Status:         entity.OrderStatusProcessing,
		ProofOfPayment: &proof,
	}

	orderM := fromOrderDomain(order)
	require.Len(t, orderM.Items, 2)
	assert.Equal(t, 0, orderM.Items[0].Position)
	assert.Equal(t, 1, orderM.Items[1].Position)
	assert.Equal(t, order.ID, orderM.Items[1].OrderID)

	back := toOrderDomain(orderM)
	assert.Equal(t, order.Contact, back.Contact)
	assert.Equal(t, order.Items, back.Items)
	assert.Equal(t, "5000", back.Total.String())
	assert.Equal(t, entity.OrderStatusProcessing, back.Status)
	assert.Equal(t, &proof, back.ProofOfPayment)
}

func TestProductMapper_NilImagesBecomeEmpty(t *testing.T) {
	product := &entity.Product{ID: uuid.New(), Name: "Scarf", Price: decimal.NewFromInt(3500)}

	productM := fromProductDomain(product)
	assert.NotNil(t, productM.Images)

	productM.Images = nil
	assert.Equal(t, []string{}, toProductDomain(productM).Images)
}
