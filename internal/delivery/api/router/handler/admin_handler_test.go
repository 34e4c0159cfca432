package handler

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminFixtures struct {
	handler   *AdminHandler
	orderUC   *mockUC.MockOrderUsecase
	catalogUC *mockUC.MockCatalogUsecase
	storage   *mockSvc.MockProofStorage
}

func newAdminFixtures(t *testing.T) *adminFixtures {
	f := &adminFixtures{
		orderUC:   mockUC.NewMockOrderUsecase(t),
		catalogUC: mockUC.NewMockCatalogUsecase(t),
		storage:   mockSvc.NewMockProofStorage(t),
	}
	f.handler = NewAdminHandler(AdminHandlerParams{
		OrderUC:      f.orderUC,
		CatalogUC:    f.catalogUC,
		ProofStorage: f.storage,
		Logger:       testLogger,
	})

	return f
}

func withID(c echo.Context, id uuid.UUID) {
	c.SetParamNames("id")
	c.SetParamValues(id.String())
}

func TestAdminHandler_ListOrders(t *testing.T) {
	f := newAdminFixtures(t)
	c, rec := newJSONContext(http.MethodGet, "/api/v1/admin/orders?status=Pending&confirmed=false&page=1&limit=20", "")

	f.orderUC.EXPECT().ListOrders(mock.Anything, mock.MatchedBy(func(filter entity.OrderFilter) bool {
		return filter.Status != nil && *filter.Status == entity.OrderStatusPending &&
			filter.Confirmed != nil && !*filter.Confirmed &&
			filter.Page == 1 && filter.Limit == 20
	})).Return(&usecase.OrderPage{Items: []*entity.Order{sampleOrder(uuid.New())}, Total: 1, Page: 1, Limit: 20, TotalPages: 1}, nil).Once()

	require.NoError(t, f.handler.ListOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var page OrderPageResponse
	decodeData(t, rec, &page)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, int64(1), page.Total)
}

func TestAdminHandler_ListOrders_RejectsUnknownStatus(t *testing.T) {
	f := newAdminFixtures(t)
	c, rec := newJSONContext(http.MethodGet, "/api/v1/admin/orders?status=Lost", "")

	require.NoError(t, f.handler.ListOrders(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Error.Code)
}

func TestAdminHandler_ConfirmOrder_AlreadyConfirmed(t *testing.T) {
	f := newAdminFixtures(t)
	id := uuid.New()
	c, rec := newJSONContext(http.MethodPost, "/", "")
	withID(c, id)

	f.orderUC.EXPECT().ConfirmOrder(mock.Anything, id).Return(nil, domainerrors.ErrAlreadyConfirmed).Once()

	require.NoError(t, f.handler.ConfirmOrder(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ALREADY_CONFIRMED", decodeError(t, rec).Error.Code)
}

func TestAdminHandler_UpdateOrderStatus(t *testing.T) {
	t.Run("applies a known status", func(t *testing.T) {
		f := newAdminFixtures(t)
		id := uuid.New()
		c, rec := newJSONContext(http.MethodPatch, "/", `{"status":"Shipped"}`)
		withID(c, id)

		shipped := sampleOrder(id)
		shipped.Status = entity.OrderStatusShipped
		f.orderUC.EXPECT().UpdateOrderStatus(mock.Anything, id, entity.OrderStatusShipped).Return(shipped, nil).Once()

		require.NoError(t, f.handler.UpdateOrderStatus(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got OrderResponse
		decodeData(t, rec, &got)
		assert.Equal(t, entity.OrderStatusShipped, got.Status)
	})

	t.Run("rejects an unknown status before the usecase", func(t *testing.T) {
		f := newAdminFixtures(t)
		c, rec := newJSONContext(http.MethodPatch, "/", `{"status":"shipped"}`)
		withID(c, uuid.New())

		require.NoError(t, f.handler.UpdateOrderStatus(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("illegal transition", func(t *testing.T) {
		f := newAdminFixtures(t)
		id := uuid.New()
		c, rec := newJSONContext(http.MethodPatch, "/", `{"status":"Delivered"}`)
		withID(c, id)

		f.orderUC.EXPECT().UpdateOrderStatus(mock.Anything, id, entity.OrderStatusDelivered).
			Return(nil, domainerrors.ErrInvalidStatusTransition).Once()

		require.NoError(t, f.handler.UpdateOrderStatus(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestAdminHandler_GetPaymentProof(t *testing.T) {
	f := newAdminFixtures(t)
	id := uuid.New()
	c, rec := newJSONContext(http.MethodGet, "/", "")
	withID(c, id)

	ref := "/uploads/proof/1700000000-receipt.png"
	order := sampleOrder(id)
	order.ProofOfPayment = &ref

	f.orderUC.EXPECT().GetOrder(mock.Anything, id).Return(order, nil).Once()
	f.storage.EXPECT().OpenProof(mock.Anything, ref).Return(io.NopCloser(strings.NewReader("png-bytes")), nil).Once()

	require.NoError(t, f.handler.GetPaymentProof(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "1700000000-receipt.png")
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestAdminHandler_GetPaymentProof_NoProof(t *testing.T) {
	f := newAdminFixtures(t)
	id := uuid.New()
	c, rec := newJSONContext(http.MethodGet, "/", "")
	withID(c, id)

	f.orderUC.EXPECT().GetOrder(mock.Anything, id).Return(sampleOrder(id), nil).Once()

	require.NoError(t, f.handler.GetPaymentProof(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MISSING_PROOF", decodeError(t, rec).Error.Code)
}

func TestAdminHandler_CreateProduct(t *testing.T) {
	f := newAdminFixtures(t)
	categoryID := uuid.New()
	c, rec := newJSONContext(http.MethodPost, "/api/v1/admin/products",
		`{"name":" Sneakers ","price":"15000","previousPrice":"18000","images":["https://cdn.example.com/a.jpg"],"categoryId":"`+categoryID.String()+`","featured":true}`)

	f.catalogUC.EXPECT().CreateProduct(mock.Anything, mock.MatchedBy(func(in *usecase.ProductInput) bool {
		return in.Name == "Sneakers" &&
			in.Price.Equal(decimal.NewFromInt(15000)) &&
			in.PreviousPrice != nil && in.PreviousPrice.Equal(decimal.NewFromInt(18000)) &&
			in.CategoryID != nil && *in.CategoryID == categoryID &&
			in.Featured && len(in.Images) == 1
	})).Return(&entity.Product{ID: uuid.New(), Name: "Sneakers", Price: decimal.NewFromInt(15000)}, nil).Once()

	require.NoError(t, f.handler.CreateProduct(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAdminHandler_CreateProduct_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "missing name", body: `{"price":"100"}`, field: "name"},
		{name: "bad price", body: `{"name":"Bag","price":"ten"}`, field: "price"},
		{name: "too many images", body: `{"name":"Bag","price":"10","images":["https://a/1","https://a/2","https://a/3","https://a/4","https://a/5","https://a/6","https://a/7"]}`, field: "images"},
		{name: "bad category", body: `{"name":"Bag","price":"10","categoryId":"x"}`, field: "categoryId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAdminFixtures(t)
			c, rec := newJSONContext(http.MethodPost, "/api/v1/admin/products", tt.body)

			require.NoError(t, f.handler.CreateProduct(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decodeError(t, rec).Error.Details, tt.field)
		})
	}
}

func TestAdminHandler_UpdateProduct_Partial(t *testing.T) {
	f := newAdminFixtures(t)
	id := uuid.New()
	c, rec := newJSONContext(http.MethodPatch, "/", `{"price":"12000","featured":false}`)
	withID(c, id)

	f.catalogUC.EXPECT().UpdateProduct(mock.Anything, id, mock.MatchedBy(func(p *usecase.ProductPatch) bool {
		return p.Name == nil && p.Description == nil && p.Images == nil && p.CategoryID == nil &&
			p.Price != nil && p.Price.Equal(decimal.NewFromInt(12000)) &&
			p.Featured != nil && !*p.Featured
	})).Return(&entity.Product{ID: id, Name: "Sneakers", Price: decimal.NewFromInt(12000)}, nil).Once()

	require.NoError(t, f.handler.UpdateProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminHandler_DeleteProduct(t *testing.T) {
	f := newAdminFixtures(t)
	id := uuid.New()
	c, rec := newJSONContext(http.MethodDelete, "/", "")
	withID(c, id)

	f.catalogUC.EXPECT().DeleteProduct(mock.Anything, id).Return(nil).Once()

	require.NoError(t, f.handler.DeleteProduct(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAdminHandler_CreateCategory_Duplicate(t *testing.T) {
	f := newAdminFixtures(t)
	c, rec := newJSONContext(http.MethodPost, "/api/v1/admin/categories", `{"name":"Shoes"}`)

	f.catalogUC.EXPECT().CreateCategory(mock.Anything, &usecase.CategoryInput{Name: "Shoes"}).
		Return(nil, domainerrors.ErrCategoryAlreadyExists).Once()

	require.NoError(t, f.handler.CreateCategory(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAdminHandler_GetPaymentProof_FileGone(t *testing.T) {
	f := newAdminFixtures(t)
	id := uuid.New()
	c, rec := newJSONContext(http.MethodGet, "/", "")
	withID(c, id)

	ref := "/uploads/proof/1700000000-receipt.jpg"
	order := sampleOrder(id)
	order.ProofOfPayment = &ref

	f.orderUC.EXPECT().GetOrder(mock.Anything, id).Return(order, nil).Once()
	f.storage.EXPECT().OpenProof(mock.Anything, ref).Return(nil, errors.Wrap(service.ErrProofNotFound, "ref")).Once()

	require.NoError(t, f.handler.GetPaymentProof(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PROOF_NOT_FOUND", decodeError(t, rec).Error.Code)
}
