package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler places orders from the request identity's cart.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// CheckoutRequest represents the customer details of a checkout. Field validation runs in the
// checkout usecase, after the phone number is normalized.
type CheckoutRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Notes         string `json:"notes"`
	PaymentMethod string `json:"paymentMethod"`
}

// PlaceOrder handles POST /api/v1/checkout
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	owner, err := cartOwner(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	out, err := h.checkoutUC.PlaceOrder(c.Request().Context(), owner, &usecase.CheckoutInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Notes:         req.Notes,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out)
}
