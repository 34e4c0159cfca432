package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCustomerNotFound is returned when no customer has the given email.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the interface for customer persistence.
type CustomerRepository interface {
	// FindCustomerByEmail retrieves a customer by email, compared case-insensitively.
	FindCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error)

	// CreateCustomer persists a new customer.
	CreateCustomer(ctx context.Context, customer *entity.Customer) error
}
