// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrDuplicateCategory is returned when a category name is already taken.
	ErrDuplicateCategory = errors.New("category already exists")
)

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// ListProducts returns one page of products matching filter and the total match count.
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, int64, error)

	// FindProductByID retrieves a product by its ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindProductsByIDs retrieves the products that exist among ids.
	FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// UpdateProduct saves all mutable fields of an existing product.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// DeleteProduct soft-deletes a product.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository defines the interface for category-related database operations.
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	CreateCategory(ctx context.Context, category *entity.Category) error
}
