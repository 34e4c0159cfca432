package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintErrorHelpers(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_categories_name" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))

	assert.True(t, isForeignKeyConstraintViolation(errors.Wrap(gorm.ErrForeignKeyViolated, "insert")))
	assert.True(t, isForeignKeyConstraintViolation(errors.New("violates foreign key constraint (SQLSTATE 23503)")))

	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.False(t, isCheckConstraintViolation(errors.New("timeout")))
}
