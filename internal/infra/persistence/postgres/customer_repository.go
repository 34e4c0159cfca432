package postgres

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// FindCustomerByEmail looks a customer up by lowercased email.
func (repo *customerRepository) FindCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by email")
	}

	return toCustomerDomain(&customerM), nil
}

// CreateCustomer persists a new customer with its email lowercased.
func (repo *customerRepository) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	customerM := &model.CustomerModel{
		ID:      customer.ID,
		Name:    customer.Name,
		Email:   strings.ToLower(strings.TrimSpace(customer.Email)),
		Phone:   customer.Phone,
		Address: customer.Address,
	}

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "customer email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	customer.Email = customerM.Email
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	return &entity.Customer{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
