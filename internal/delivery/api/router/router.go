// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler     *handler.CatalogHandler
	CartHandler        *handler.CartHandler
	CheckoutHandler    *handler.CheckoutHandler
	OrderHandler       *handler.OrderHandler
	AdminHandler       *handler.AdminHandler
	AuthMiddleware     *middleware.AuthMiddleware
	IdentityMiddleware *middleware.IdentityMiddleware
	Metrics            *metrics.Recorder
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler     *handler.CatalogHandler
	cartHandler        *handler.CartHandler
	checkoutHandler    *handler.CheckoutHandler
	orderHandler       *handler.OrderHandler
	adminHandler       *handler.AdminHandler
	authMiddleware     *middleware.AuthMiddleware
	identityMiddleware *middleware.IdentityMiddleware
	metrics            *metrics.Recorder
	config             *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:     params.CatalogHandler,
		cartHandler:        params.CartHandler,
		checkoutHandler:    params.CheckoutHandler,
		orderHandler:       params.OrderHandler,
		adminHandler:       params.AdminHandler,
		authMiddleware:     params.AuthMiddleware,
		identityMiddleware: params.IdentityMiddleware,
		metrics:            params.Metrics,
		config:             params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	apiV1 := e.Group("/api/v1")

	// Catalog routes are public
	apiV1.GET("/products", r.catalogHandler.ListProducts)
	apiV1.GET("/products/:id", r.catalogHandler.GetProduct)
	apiV1.GET("/categories", r.catalogHandler.ListCategories)

	// Cart and checkout are bound to a signed-in customer or an anonymous session
	shopGroup := apiV1.Group("")
	shopGroup.Use(r.authMiddleware.OptionalAuthenticate)
	shopGroup.Use(r.identityMiddleware.Resolve)
	{
		shopGroup.GET("/cart", r.cartHandler.GetCart)
		shopGroup.DELETE("/cart", r.cartHandler.ClearCart)
		shopGroup.POST("/cart/items", r.cartHandler.AddItem)
		shopGroup.PUT("/cart/items/:productId", r.cartHandler.UpdateQuantity)
		shopGroup.DELETE("/cart/items/:productId", r.cartHandler.RemoveItem)
		shopGroup.POST("/checkout", r.checkoutHandler.PlaceOrder)
	}

	// Order confirmation pages address orders by id
	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.GET("/:id/qrcode", r.orderHandler.GetQRCode)
		ordersGroup.POST("/:id/payment-proof", r.orderHandler.SubmitPaymentProof)
	}

	// Admin routes require authentication and the "admin" role
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)                  // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin)) // Then, check for the role
	{
		adminGroup.GET("/orders", r.adminHandler.ListOrders)
		adminGroup.GET("/orders/:id", r.adminHandler.GetOrder)
		adminGroup.POST("/orders/:id/confirm", r.adminHandler.ConfirmOrder)
		adminGroup.PATCH("/orders/:id/status", r.adminHandler.UpdateOrderStatus)
		adminGroup.GET("/orders/:id/payment-proof", r.adminHandler.GetPaymentProof)

		adminGroup.POST("/products", r.adminHandler.CreateProduct)
		adminGroup.PATCH("/products/:id", r.adminHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.adminHandler.DeleteProduct)

		adminGroup.POST("/categories", r.adminHandler.CreateCategory)
	}
}
