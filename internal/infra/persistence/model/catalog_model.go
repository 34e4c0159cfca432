// Package model holds the GORM table structs of the storefront schema.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Image     string    `gorm:"type:varchar(500)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table. Images keep their order in a jsonb array.
type ProductModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name          string           `gorm:"type:varchar(200);not null;index"`
	Description   string           `gorm:"type:text"`
	Price         decimal.Decimal  `gorm:"type:numeric(12,2);not null;check:chk_products_price,price >= 0"`
	PreviousPrice *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Images        []string         `gorm:"type:jsonb;serializer:json;not null"`
	CategoryID    *uuid.UUID       `gorm:"type:uuid;index"`
	Featured      bool             `gorm:"not null;default:false;index"`
	CreatedAt     time.Time        `gorm:"index"`
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
