package helper

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var errStoreDown = errors.New("connection refused")

// downPool satisfies gorm.ConnPool and fails every operation, standing in
// for an unreachable database.
type downPool struct{}

func (downPool) PrepareContext(context.Context, string) (*sql.Stmt, error) {
	return nil, errStoreDown
}

func (downPool) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, errStoreDown
}

func (downPool) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errStoreDown
}

func (downPool) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func TestCountOrZeroDegradesOnStoreFailure(t *testing.T) {
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: downPool{}}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	got := CountOrZero(db.Table("event_rsvps").Where("event_rsvp_event_id = ?", "x"), "event RSVPs")
	assert.Zero(t, got)
}
