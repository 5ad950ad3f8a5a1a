package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(errors.New(`ERROR: insert or update on table "promotions" violates foreign key constraint "fk_promotions_business" (SQLSTATE 23503)`)))
	assert.False(t, isForeignKeyConstraintViolation(errors.New("timeout")))
}

func TestIsCheckConstraintViolation(t *testing.T) {
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.True(t, isCheckConstraintViolation(errors.New(`new row violates check constraint "chk_rating" (SQLSTATE 23514)`)))
	assert.False(t, isCheckConstraintViolation(errors.New("timeout")))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%pizza%", likePattern(" pizza "))
	assert.Equal(t, `%50\% off\_now%`, likePattern("50% off_now"))
}
