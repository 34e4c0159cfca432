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

func TestCatalogHandler_ListProducts_Filter(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: testLogger})

	categoryID := uuid.New()
	c, rec := newJSONContext(http.MethodGet,
		"/api/v1/products?page=2&limit=5&category="+categoryID.String()+"&priceMin=1000&priceMax=5000&featured=true&sort=price&order=asc", "")

	catalogUC.EXPECT().ListProducts(mock.Anything, mock.MatchedBy(func(f entity.ProductFilter) bool {
		return f.Page == 2 && f.Limit == 5 &&
			f.CategoryID != nil && *f.CategoryID == categoryID &&
			f.PriceMin != nil && f.PriceMin.Equal(decimal.NewFromInt(1000)) &&
			f.PriceMax != nil && f.PriceMax.Equal(decimal.NewFromInt(5000)) &&
			f.FeaturedOnly && f.SortBy == entity.ProductSortField("price") && !f.SortDesc
	})).Return(&usecase.ProductPage{Page: 2, Limit: 5, Total: 0}, nil).Once()

	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var page ProductPageResponse
	decodeData(t, rec, &page)
	assert.Equal(t, 2, page.Page)
	assert.NotNil(t, page.Items)
}

func TestCatalogHandler_ListProducts_DefaultsToDescending(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: testLogger})
	c, _ := newJSONContext(http.MethodGet, "/api/v1/products?sort=price", "")

	catalogUC.EXPECT().ListProducts(mock.Anything, mock.MatchedBy(func(f entity.ProductFilter) bool {
		return f.SortDesc && f.CategoryID == nil && f.PriceMin == nil
	})).Return(&usecase.ProductPage{}, nil).Once()

	require.NoError(t, h.ListProducts(c))
}

func TestCatalogHandler_ListProducts_InvalidQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		field string
	}{
		{name: "bad category", query: "category=shoes", field: "category"},
		{name: "bad price", query: "priceMin=cheap", field: "priceMin"},
		{name: "negative price", query: "priceMax=-1", field: "priceMax"},
		{name: "bad order", query: "order=up", field: "order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: mockUC.NewMockCatalogUsecase(t), Logger: testLogger})
			c, rec := newJSONContext(http.MethodGet, "/api/v1/products?"+tt.query, "")

			require.NoError(t, h.ListProducts(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			body := decodeError(t, rec)
			assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
			assert.Contains(t, body.Error.Details, tt.field)
		})
	}
}

func TestCatalogHandler_GetProduct_NotFound(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: testLogger})

	id := uuid.New()
	c, rec := newJSONContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	catalogUC.EXPECT().GetProduct(mock.Anything, id).Return(nil, domainerrors.ErrProductNotFound).Once()

	require.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", decodeError(t, rec).Error.Code)
}

func TestCatalogHandler_ListCategories(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: testLogger})
	c, rec := newJSONContext(http.MethodGet, "/api/v1/categories", "")

	categories := []*entity.Category{{ID: uuid.New(), Name: "Shoes"}, {ID: uuid.New(), Name: "Bags"}}
	catalogUC.EXPECT().ListCategories(mock.Anything).Return(categories, nil).Once()

	require.NoError(t, h.ListCategories(c))

	var got []CategoryResponse
	decodeData(t, rec, &got)
	require.Len(t, got, 2)
	assert.Equal(t, "Shoes", got[0].Name)
}
