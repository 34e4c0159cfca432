// Package entity contains the core business objects of the storefront.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxProductImages caps the ordered image set of a product.
const MaxProductImages = 6

// Product is a purchasable catalog item.
type Product struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Price         decimal.Decimal
	PreviousPrice *decimal.Decimal // Shown as the struck-through price when set.
	Images        []string
	CategoryID    *uuid.UUID
	Featured      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Snapshot copies the fields a cart line keeps for display.
func (p *Product) Snapshot() ProductSnapshot {
	images := make([]string, len(p.Images))
	copy(images, p.Images)

	return ProductSnapshot{
		Name:   p.Name,
		Price:  p.Price,
		Images: images,
	}
}

// ProductSortField lists the columns a catalog listing may be ordered by.
type ProductSortField string

const (
	ProductSortCreatedAt ProductSortField = "createdAt"
	ProductSortPrice     ProductSortField = "price"
	ProductSortName      ProductSortField = "name"
)

// IsValid checks if the sort field is supported.
func (f ProductSortField) IsValid() bool {
	switch f {
	case ProductSortCreatedAt, ProductSortPrice, ProductSortName:
		return true
	default:
		return false
	}
}

// ProductFilter narrows a catalog listing.
type ProductFilter struct {
	CategoryID   *uuid.UUID
	PriceMin     *decimal.Decimal
	PriceMax     *decimal.Decimal
	FeaturedOnly bool
	SortBy       ProductSortField
	SortDesc     bool
	Page         int
	Limit        int
}

// Offset returns the number of rows to skip for the filter's page.
func (f ProductFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}

	return (f.Page - 1) * f.Limit
}
