package handler

import (
	"log/slog"
	"net/http"
	"path"
	"strings"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	OrderUC      usecase.OrderUsecase
	CatalogUC    usecase.CatalogUsecase
	ProofStorage service.ProofStorage
	Logger       *slog.Logger
}

// AdminHandler serves the operator API behind the admin role.
type AdminHandler struct {
	orderUC      usecase.OrderUsecase
	catalogUC    usecase.CatalogUsecase
	proofStorage service.ProofStorage
	logger       *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		orderUC:      params.OrderUC,
		catalogUC:    params.CatalogUC,
		proofStorage: params.ProofStorage,
		logger:       params.Logger,
	}
}

// ListOrdersQuery holds the admin order listing query parameters.
type ListOrdersQuery struct {
	Page      int    `query:"page" validate:"gte=0"`
	Limit     int    `query:"limit" validate:"gte=0"`
	Status    string `query:"status" validate:"omitempty,oneof=Pending Processing Shipped Delivered Cancelled"`
	Confirmed string `query:"confirmed" validate:"omitempty,oneof=true false"`
}

func (q *ListOrdersQuery) toFilter() entity.OrderFilter {
	filter := entity.OrderFilter{Page: q.Page, Limit: q.Limit}
	if q.Status != "" {
		status := entity.OrderStatus(q.Status)
		filter.Status = &status
	}
	if q.Confirmed != "" {
		confirmed := q.Confirmed == "true"
		filter.Confirmed = &confirmed
	}

	return filter
}

// ListOrders handles GET /api/v1/admin/orders
func (h *AdminHandler) ListOrders(c echo.Context) error {
	var query ListOrdersQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}
	if err := c.Validate(&query); err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.orderUC.ListOrders(c.Request().Context(), query.toFilter())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderPageResponse(page))
}

// GetOrder handles GET /api/v1/admin/orders/:id
func (h *AdminHandler) GetOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

// ConfirmOrder handles POST /api/v1/admin/orders/:id/confirm
func (h *AdminHandler) ConfirmOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.ConfirmOrder(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

// UpdateStatusRequest represents an admin status change.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Processing Shipped Delivered Cancelled"`
}

// UpdateOrderStatus handles PATCH /api/v1/admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), id, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

// GetPaymentProof handles GET /api/v1/admin/orders/:id/payment-proof and streams the stored file.
func (h *AdminHandler) GetPaymentProof(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	order, err := h.orderUC.GetOrder(ctx, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if order.ProofOfPayment == nil || *order.ProofOfPayment == "" {
		return response.HandleAppError(c, domainerrors.ErrMissingProof.WithDetails("no proof uploaded for this order"))
	}

	proof, err := h.proofStorage.OpenProof(ctx, *order.ProofOfPayment)
	if errors.Is(err, service.ErrProofNotFound) {
		return response.HandleAppError(c, domainerrors.ErrProofNotFound)
	}
	if err != nil {
		return errors.Wrap(err, "open payment proof")
	}
	defer proof.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="`+path.Base(*order.ProofOfPayment)+`"`)

	return c.Stream(http.StatusOK, proofContentType(*order.ProofOfPayment), proof)
}

func proofContentType(ref string) string {
	switch strings.ToLower(path.Ext(ref)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return echo.MIMEOctetStream
	}
}

// ProductRequest represents an admin product create.
type ProductRequest struct {
	Name          string   `json:"name" validate:"required,max=200"`
	Description   string   `json:"description" validate:"max=5000"`
	Price         string   `json:"price" validate:"required"`
	PreviousPrice string   `json:"previousPrice"`
	Images        []string `json:"images" validate:"max=6,dive,required,url"`
	CategoryID    string   `json:"categoryId"`
	Featured      bool     `json:"featured"`
}

func (r *ProductRequest) toInput() (*usecase.ProductInput, error) {
	errs := fieldErrors{}
	price := errs.decimal("price", r.Price)
	input := &usecase.ProductInput{
		Name:          strings.TrimSpace(r.Name),
		Description:   r.Description,
		PreviousPrice: errs.decimal("previousPrice", r.PreviousPrice),
		Images:        r.Images,
		CategoryID:    errs.uuid("categoryId", r.CategoryID),
		Featured:      r.Featured,
	}
	if price != nil {
		input.Price = *price
	}

	return input, errs.err()
}

// CreateProduct handles POST /api/v1/admin/products
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	input, err := req.toInput()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newProductResponse(product))
}

// ProductPatchRequest represents a partial product update. Absent fields are left unchanged.
type ProductPatchRequest struct {
	Name          *string  `json:"name" validate:"omitempty,max=200"`
	Description   *string  `json:"description" validate:"omitempty,max=5000"`
	Price         *string  `json:"price"`
	PreviousPrice *string  `json:"previousPrice"`
	Images        []string `json:"images" validate:"omitempty,max=6,dive,required,url"`
	CategoryID    *string  `json:"categoryId"`
	Featured      *bool    `json:"featured"`
}

func (r *ProductPatchRequest) toPatch() (*usecase.ProductPatch, error) {
	errs := fieldErrors{}
	patch := &usecase.ProductPatch{
		Name:        r.Name,
		Description: r.Description,
		Images:      r.Images,
		Featured:    r.Featured,
	}
	if r.Price != nil {
		patch.Price = errs.decimal("price", *r.Price)
		if patch.Price == nil && errs["price"] == "" {
			errs["price"] = "must not be empty"
		}
	}
	if r.PreviousPrice != nil {
		patch.PreviousPrice = errs.decimal("previousPrice", *r.PreviousPrice)
	}
	if r.CategoryID != nil {
		patch.CategoryID = errs.uuid("categoryId", *r.CategoryID)
	}

	return patch, errs.err()
}

// UpdateProduct handles PATCH /api/v1/admin/products/:id
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ProductPatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	patch, err := req.toPatch()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), id, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product))
}

// DeleteProduct handles DELETE /api/v1/admin/products/:id
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CategoryRequest represents an admin category create.
type CategoryRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Image string `json:"image" validate:"omitempty,url"`
}

// CreateCategory handles POST /api/v1/admin/categories
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.catalogUC.CreateCategory(c.Request().Context(), &usecase.CategoryInput{
		Name:  strings.TrimSpace(req.Name),
		Image: req.Image,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newCategoryResponses([]*entity.Category{category})[0])
}
