package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// execPool satisfies gorm.ConnPool for statements that only exec, so
// the pass cleanup can be checked without a database.
type execPool struct {
	lastSQL  string
	lastVars []interface{}
}

type execResult struct{}

func (execResult) LastInsertId() (int64, error) { return 0, nil }
func (execResult) RowsAffected() (int64, error) { return 1, nil }

func (p *execPool) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return nil, errors.New("not supported")
}

func (p *execPool) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	p.lastSQL = query
	p.lastVars = args
	return execResult{}, nil
}

func (p *execPool) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not supported")
}

func (p *execPool) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func TestReleaseFailedPass(t *testing.T) {
	pool := &execPool{}
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: pool}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	passID := uuid.New()
	require.NoError(t, ReleaseFailedPass(db, passID))

	// The row is removed, not deactivated, so the per-user unique index
	// lets the purchase be retried. An already-active pass stays put.
	assert.True(t, strings.HasPrefix(pool.lastSQL, "DELETE"))
	assert.Contains(t, pool.lastSQL, "general_event_passes")
	assert.Contains(t, pool.lastSQL, "pass_active = false")
	assert.Contains(t, pool.lastVars, passID)
}
