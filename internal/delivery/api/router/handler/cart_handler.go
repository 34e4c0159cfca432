package handler

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the cart of the request's identity.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddItemRequest represents the request body for adding a product to the cart
type AddItemRequest struct {
	ProductID string      `json:"productId" validate:"required,uuid"`
	Quantity  json.Number `json:"quantity"`
}

// UpdateQuantityRequest represents the request body for changing a line's quantity
type UpdateQuantityRequest struct {
	Quantity json.Number `json:"quantity"`
}

// parseQuantity accepts whole numbers only; range checks stay with the cart usecase.
func parseQuantity(raw json.Number) (int, error) {
	n, err := raw.Int64()
	if err != nil || n < math.MinInt32 || n > math.MaxInt32 {
		return 0, domainerrors.ErrInvalidQuantity
	}

	return int(n), nil
}

// cartOwner returns the identity resolved by the identity middleware.
func cartOwner(c echo.Context) (entity.CartOwner, error) {
	owner, ok := deliverycontext.GetCartOwner(c)
	if !ok {
		return entity.CartOwner{}, domainerrors.ErrIdentityRequired
	}

	return owner, nil
}

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(c echo.Context) error {
	owner, err := cartOwner(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.cartUC.GetCart(c.Request().Context(), owner)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(c echo.Context) error {
	owner, err := cartOwner(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	productID, err := parseID("productId", req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// An omitted quantity adds one unit.
	quantity := 1
	if req.Quantity != "" {
		if quantity, err = parseQuantity(req.Quantity); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	view, err := h.cartUC.AddItem(c.Request().Context(), owner, productID, quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// UpdateQuantity handles PUT /api/v1/cart/items/:productId
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	owner, err := cartOwner(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	productID, err := pathID(c, "productId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	quantity, err := parseQuantity(req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.cartUC.UpdateQuantity(c.Request().Context(), owner, productID, quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// RemoveItem handles DELETE /api/v1/cart/items/:productId
func (h *CartHandler) RemoveItem(c echo.Context) error {
	owner, err := cartOwner(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	productID, err := pathID(c, "productId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.cartUC.RemoveItem(c.Request().Context(), owner, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// ClearCart handles DELETE /api/v1/cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	owner, err := cartOwner(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.cartUC.ClearCart(c.Request().Context(), owner); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
