package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartHandlerForTest(t *testing.T) (*CartHandler, *mockUC.MockCartUsecase) {
	cartUC := mockUC.NewMockCartUsecase(t)

	return NewCartHandler(CartHandlerParams{CartUC: cartUC, Logger: testLogger}), cartUC
}

func TestCartHandler_RequiresIdentity(t *testing.T) {
	h, _ := newCartHandlerForTest(t)
	c, rec := newJSONContext(http.MethodGet, "/api/v1/cart", "")

	require.NoError(t, h.GetCart(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "IDENTITY_REQUIRED", decodeError(t, rec).Error.Code)
}

func TestCartHandler_AddItem(t *testing.T) {
	productID := uuid.New()
	owner := entity.SessionOwner("sess-1")
	view := &usecase.CartView{Items: []entity.CartLine{}, Count: 2, Subtotal: decimal.NewFromInt(5000)}

	tests := []struct {
		name         string
		body         string
		wantQuantity int
	}{
		{name: "omitted quantity adds one", body: `{"productId":"` + productID.String() + `"}`, wantQuantity: 1},
		{name: "explicit quantity", body: `{"productId":"` + productID.String() + `","quantity":3}`, wantQuantity: 3},
		{name: "explicit zero reaches the usecase", body: `{"productId":"` + productID.String() + `","quantity":0}`, wantQuantity: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, cartUC := newCartHandlerForTest(t)
			c, rec := newJSONContext(http.MethodPost, "/api/v1/cart/items", tt.body)
			withSession(c, "sess-1")

			cartUC.EXPECT().AddItem(mock.Anything, owner, productID, tt.wantQuantity).Return(view, nil).Once()

			require.NoError(t, h.AddItem(c))
			assert.Equal(t, http.StatusOK, rec.Code)

			var got usecase.CartView
			decodeData(t, rec, &got)
			assert.Equal(t, 2, got.Count)
			assert.True(t, got.Subtotal.Equal(decimal.NewFromInt(5000)))
		})
	}
}

func TestCartHandler_AddItem_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{name: "fractional quantity", body: `{"productId":"` + uuid.NewString() + `","quantity":1.5}`, wantCode: "INVALID_QUANTITY"},
		{name: "missing product", body: `{"quantity":1}`, wantCode: "VALIDATION_FAILED"},
		{name: "malformed product id", body: `{"productId":"abc","quantity":1}`, wantCode: "VALIDATION_FAILED"},
		{name: "malformed json", body: `{"productId":`, wantCode: "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newCartHandlerForTest(t)
			c, rec := newJSONContext(http.MethodPost, "/api/v1/cart/items", tt.body)
			withSession(c, "sess-1")

			require.NoError(t, h.AddItem(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Error.Code)
		})
	}
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	productID := uuid.New()
	owner := entity.SessionOwner("sess-1")

	t.Run("forwards the quantity", func(t *testing.T) {
		h, cartUC := newCartHandlerForTest(t)
		c, rec := newJSONContext(http.MethodPut, "/", `{"quantity":4}`)
		c.SetParamNames("productId")
		c.SetParamValues(productID.String())
		withSession(c, "sess-1")

		cartUC.EXPECT().UpdateQuantity(mock.Anything, owner, productID, 4).Return(&usecase.CartView{}, nil).Once()

		require.NoError(t, h.UpdateQuantity(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("usecase rejection is rendered", func(t *testing.T) {
		h, cartUC := newCartHandlerForTest(t)
		c, rec := newJSONContext(http.MethodPut, "/", `{"quantity":0}`)
		c.SetParamNames("productId")
		c.SetParamValues(productID.String())
		withSession(c, "sess-1")

		cartUC.EXPECT().UpdateQuantity(mock.Anything, owner, productID, 0).Return(nil, domainerrors.ErrInvalidQuantity).Once()

		require.NoError(t, h.UpdateQuantity(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_QUANTITY", decodeError(t, rec).Error.Code)
	})

	t.Run("missing line", func(t *testing.T) {
		h, cartUC := newCartHandlerForTest(t)
		c, rec := newJSONContext(http.MethodPut, "/", `{"quantity":2}`)
		c.SetParamNames("productId")
		c.SetParamValues(productID.String())
		withSession(c, "sess-1")

		cartUC.EXPECT().UpdateQuantity(mock.Anything, owner, productID, 2).Return(nil, domainerrors.ErrCartItemNotFound).Once()

		require.NoError(t, h.UpdateQuantity(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCartHandler_RemoveItem_BadPath(t *testing.T) {
	h, _ := newCartHandlerForTest(t)
	c, rec := newJSONContext(http.MethodDelete, "/", "")
	c.SetParamNames("productId")
	c.SetParamValues("not-a-uuid")
	withSession(c, "sess-1")

	require.NoError(t, h.RemoveItem(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Error.Code)
}

func TestCartHandler_ClearCart(t *testing.T) {
	h, cartUC := newCartHandlerForTest(t)
	c, rec := newJSONContext(http.MethodDelete, "/api/v1/cart", "")
	withSession(c, "sess-1")

	cartUC.EXPECT().ClearCart(mock.Anything, entity.SessionOwner("sess-1")).Return(nil).Once()

	require.NoError(t, h.ClearCart(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
