package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductPage is one page of a catalog listing.
type ProductPage struct {
	Items      []*entity.Product `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
}

// ProductInput carries the fields of a product create request.
type ProductInput struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	PreviousPrice *decimal.Decimal
	Images        []string
	CategoryID    *uuid.UUID
	Featured      bool
}

// ProductPatch carries the fields of a partial product update. Nil fields are left unchanged.
type ProductPatch struct {
	Name          *string
	Description   *string
	Price         *decimal.Decimal
	PreviousPrice *decimal.Decimal
	Images        []string
	CategoryID    *uuid.UUID
	Featured      *bool
}

// CategoryInput carries the fields of a category create request.
type CategoryInput struct {
	Name  string
	Image string
}

// CatalogUsecase defines catalog reads and admin catalog management.
type CatalogUsecase interface {
	// ListProducts returns a filtered, sorted page of products.
	ListProducts(ctx context.Context, filter entity.ProductFilter) (*ProductPage, error)

	// GetProduct returns a product or ErrProductNotFound.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, patch *ProductPatch) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	ListCategories(ctx context.Context) ([]*entity.Category, error)
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)
}
