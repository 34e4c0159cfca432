package validator

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	ProductID string   `json:"productId" validate:"required,uuid"`
	Quantity  int      `json:"quantity" validate:"min=1,max=99"`
	Email     string   `json:"email,omitempty" validate:"omitempty,email"`
	Status    string   `json:"status" validate:"omitempty,oneof=Pending Shipped"`
	Images    []string `json:"images" validate:"max=2"`
}

func TestCustomValidator_Valid(t *testing.T) {
	v := New()
	err := v.Validate(&sampleRequest{ProductID: "6f1c1a4e-8a0e-4d55-9a3c-0f3b5f2f9f10", Quantity: 2})
	assert.NoError(t, err)
}

func TestCustomValidator_FieldErrors(t *testing.T) {
	v := New()
	err := v.Validate(&sampleRequest{
		ProductID: "nope",
		Quantity:  0,
		Email:     "not-an-email",
		Status:    "Lost",
		Images:    []string{"a", "b", "c"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, map[string]string{
		"productId": "must be a valid id",
		"quantity":  "must be at least 1",
		"email":     "must be a valid email address",
		"status":    "must be one of: Pending Shipped",
		"images":    "must have at most 2 items",
	}, validationErr.Fields())
}
