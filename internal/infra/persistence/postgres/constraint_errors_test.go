package postgres

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationDetection(t *testing.T) {
	unique := stderrors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`)
	foreign := stderrors.New(`ERROR: insert or update on table "messages" violates foreign key constraint "fk_messages_recipient" (SQLSTATE 23503)`)
	notNull := stderrors.New(`ERROR: null value in column "name" violates not-null constraint (SQLSTATE 23502)`)
	check := stderrors.New(`ERROR: new row for relation "messages" violates check constraint "chk_messages_target" (SQLSTATE 23514)`)

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(fmt.Errorf("create: %w", gorm.ErrDuplicatedKey)))
	assert.False(t, isUniqueConstraintViolation(foreign))

	assert.True(t, isForeignKeyConstraintViolation(foreign))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyConstraintViolation(unique))

	assert.True(t, isNotNullConstraintViolation(notNull))
	assert.False(t, isNotNullConstraintViolation(check))

	assert.True(t, isCheckConstraintViolation(check))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.False(t, isCheckConstraintViolation(nil))
}
