package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "create user")))
	assert.False(t, isUniqueConstraintViolation(gorm.ErrForeignKeyViolated))
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyConstraintViolation(gorm.ErrDuplicatedKey))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(
		errors.New(`ERROR: null value in column "name" violates not-null constraint (SQLSTATE 23502)`)))
	assert.True(t, isNotNullConstraintViolation(errors.New("pq: 23502 not_null_violation")))
	assert.False(t, isNotNullConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isNotNullConstraintViolation(errors.New("connection refused")))
}
