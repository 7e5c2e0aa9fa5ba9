package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "ux_users_email" (SQLSTATE 23505)`)))
	assert.True(t, IsUniqueViolation(fmt.Errorf("create user: %w", errors.New("SQLSTATE 23505"))))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(errors.New(`ERROR: insert or update on table "event_rsvps" violates foreign key constraint "fk_event" (SQLSTATE 23503)`)))
	assert.False(t, IsForeignKeyViolation(errors.New("SQLSTATE 23505")))
	assert.False(t, IsForeignKeyViolation(nil))
}
