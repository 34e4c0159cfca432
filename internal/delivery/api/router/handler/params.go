package handler

import (
	"strings"

	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// fieldErrors collects per-field parse failures of query and path parameters.
type fieldErrors map[string]string

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}

	return domainerrors.NewValidationError(f)
}

func (f fieldErrors) uuid(field, raw string) *uuid.UUID {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		f[field] = "must be a valid id"

		return nil
	}

	return &id
}

func (f fieldErrors) decimal(field, raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		f[field] = "must be a number"

		return nil
	}
	if d.IsNegative() {
		f[field] = "must not be negative"

		return nil
	}

	return &d
}

// pathID parses the :name path parameter as a uuid.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	return parseID(name, c.Param(name))
}

// parseID parses raw as a uuid, reporting failures against field.
func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError(map[string]string{field: "must be a valid id"})
	}

	return id, nil
}
