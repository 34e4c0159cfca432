package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products in the catalog.
type Category struct {
	ID        uuid.UUID
	Name      string
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
