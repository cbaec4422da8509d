package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// recordingPool satisfies gorm.ConnPool and answers every exec with a
// scripted rows-affected count, so the conditional counter updates can
// be exercised without a database.
type recordingPool struct {
	rowsAffected int64
	lastSQL      string
	lastVars     []interface{}
}

type recordedResult struct{ rows int64 }

func (r recordedResult) LastInsertId() (int64, error) { return 0, nil }
func (r recordedResult) RowsAffected() (int64, error) { return r.rows, nil }

func (p *recordingPool) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return nil, errors.New("not supported")
}

func (p *recordingPool) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	p.lastSQL = query
	p.lastVars = args
	return recordedResult{rows: p.rowsAffected}, nil
}

func (p *recordingPool) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not supported")
}

func (p *recordingPool) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func openWithPool(t *testing.T, pool *recordingPool) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: pool}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestTryReserveSlot(t *testing.T) {
	eventID := uuid.New()

	pool := &recordingPool{rowsAffected: 1}
	ok, err := TryReserveSlot(openWithPool(t, pool), eventID)
	require.NoError(t, err)
	assert.True(t, ok)

	// The guard and the increment must live in the same statement so
	// the counter can never pass the limit.
	assert.Contains(t, pool.lastSQL, "event_current_registrations + 1")
	assert.Contains(t, pool.lastSQL, "event_max_registrations = 0 OR event_current_registrations < event_max_registrations")
	assert.Contains(t, pool.lastVars, eventID)
}

func TestTryReserveSlotFullEvent(t *testing.T) {
	// Zero rows affected means the guarded UPDATE found the event full;
	// no slot is handed out.
	pool := &recordingPool{rowsAffected: 0}
	ok, err := TryReserveSlot(openWithPool(t, pool), uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReleaseSlot(t *testing.T) {
	eventID := uuid.New()

	pool := &recordingPool{rowsAffected: 1}
	require.NoError(t, ReleaseSlot(openWithPool(t, pool), eventID))

	assert.Contains(t, pool.lastSQL, "event_current_registrations - 1")
	assert.Contains(t, pool.lastSQL, "event_current_registrations > 0")
	assert.Contains(t, pool.lastVars, eventID)

	// A release that matches nothing is not an error; the guard just
	// keeps the counter at zero.
	empty := &recordingPool{rowsAffected: 0}
	require.NoError(t, ReleaseSlot(openWithPool(t, empty), eventID))
}
