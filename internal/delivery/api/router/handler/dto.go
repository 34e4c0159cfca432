package handler

import (
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductResponse is the JSON shape of a product.
type ProductResponse struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	PreviousPrice *decimal.Decimal `json:"previousPrice,omitempty"`
	Images        []string         `json:"images"`
	CategoryID    *uuid.UUID       `json:"categoryId,omitempty"`
	Featured      bool             `json:"featured"`
	CreatedAt     time.Time        `json:"createdAt"`
}

func newProductResponse(p *entity.Product) ProductResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}

	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		PreviousPrice: p.PreviousPrice,
		Images:        images,
		CategoryID:    p.CategoryID,
		Featured:      p.Featured,
		CreatedAt:     p.CreatedAt,
	}
}

// ProductPageResponse is one page of products.
type ProductPageResponse struct {
	Items      []ProductResponse `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
}

func newProductPageResponse(page *usecase.ProductPage) ProductPageResponse {
	items := make([]ProductResponse, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, newProductResponse(p))
	}

	return ProductPageResponse{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	}
}

// CategoryResponse is the JSON shape of a category.
type CategoryResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Image string    `json:"image,omitempty"`
}

func newCategoryResponses(categories []*entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{ID: c.ID, Name: c.Name, Image: c.Image})
	}

	return out
}

// OrderResponse is the JSON shape of an order.
type OrderResponse struct {
	ID             uuid.UUID             `json:"id"`
	Contact        entity.ContactDetails `json:"contact"`
	Items          []entity.OrderItem    `json:"items"`
	Subtotal       decimal.Decimal       `json:"subtotal"`
	DeliveryFee    decimal.Decimal       `json:"deliveryFee"`
	Total          decimal.Decimal       `json:"total"`
	PaymentMethod  entity.PaymentMethod  `json:"paymentMethod"`
	Status         entity.OrderStatus    `json:"status"`
	Confirmed      bool                  `json:"confirmed"`
	ConfirmedAt    *time.Time            `json:"confirmedAt,omitempty"`
	ProofOfPayment *string               `json:"proofOfPayment"`
	CreatedAt      time.Time             `json:"createdAt"`
}

func newOrderResponse(o *entity.Order) OrderResponse {
	items := o.Items
	if items == nil {
		items = []entity.OrderItem{}
	}

	return OrderResponse{
		ID:             o.ID,
		Contact:        o.Contact,
		Items:          items,
		Subtotal:       o.Subtotal,
		DeliveryFee:    o.DeliveryFee,
		Total:          o.Total,
		PaymentMethod:  o.PaymentMethod,
		Status:         o.Status,
		Confirmed:      o.Confirmed,
		ConfirmedAt:    o.ConfirmedAt,
		ProofOfPayment: o.ProofOfPayment,
		CreatedAt:      o.CreatedAt,
	}
}

// OrderPageResponse is one page of orders.
type OrderPageResponse struct {
	Items      []OrderResponse `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"totalPages"`
}

func newOrderPageResponse(page *usecase.OrderPage) OrderPageResponse {
	items := make([]OrderResponse, 0, len(page.Items))
	for _, o := range page.Items {
		items = append(items, newOrderResponse(o))
	}

	return OrderPageResponse{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	}
}
