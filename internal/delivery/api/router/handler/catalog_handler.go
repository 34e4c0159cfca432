package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the public product and category reads.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListProductsQuery holds the catalog listing query parameters.
type ListProductsQuery struct {
	Page     int    `query:"page" validate:"gte=0"`
	Limit    int    `query:"limit" validate:"gte=0"`
	Category string `query:"category"`
	PriceMin string `query:"priceMin"`
	PriceMax string `query:"priceMax"`
	Featured bool   `query:"featured"`
	Sort     string `query:"sort"`
	Order    string `query:"order" validate:"omitempty,oneof=asc desc"`
}

// toFilter converts the query into a filter. Sort "price" with order "asc" sorts cheapest first;
// a sort without order is descending.
func (q *ListProductsQuery) toFilter() (entity.ProductFilter, error) {
	errs := fieldErrors{}
	filter := entity.ProductFilter{
		CategoryID:   errs.uuid("category", q.Category),
		PriceMin:     errs.decimal("priceMin", q.PriceMin),
		PriceMax:     errs.decimal("priceMax", q.PriceMax),
		FeaturedOnly: q.Featured,
		SortBy:       entity.ProductSortField(strings.TrimSpace(q.Sort)),
		SortDesc:     q.Order != "asc",
		Page:         q.Page,
		Limit:        q.Limit,
	}

	return filter, errs.err()
}

// ListProducts handles GET /api/v1/products
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var query ListProductsQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}
	if err := c.Validate(&query); err != nil {
		return response.HandleAppError(c, err)
	}

	filter, err := query.toFilter()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.catalogUC.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductPageResponse(page))
}

// GetProduct handles GET /api/v1/products/:id
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product))
}

// ListCategories handles GET /api/v1/categories
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCategoryResponses(categories))
}
