package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/concierge/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

const insertExclusion = `INSERT INTO venue_exclusions (id, user_id, venue_name, category, created_at)
	VALUES (?, 'u1', ?, 'restaurants', '2026-01-01T00:00:00Z')`

func countExclusions(t *testing.T, database *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM venue_exclusions`).Scan(&n))
	return n
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertExclusion, "e1", "Le Cinq"); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, insertExclusion, "e2", "Le Meurice")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 2, countExclusions(t, database))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openTestUoW(t)
	boom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertExclusion, "e1", "Le Cinq"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Zero(t, countExclusions(t, database))
}

func TestWithinTx_RollbackOnConstraintViolation(t *testing.T) {
	database, uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertExclusion, "e1", "Le Cinq"); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, insertExclusion, "e2", "LE CINQ")
		return err
	})
	require.Error(t, err)
	assert.Zero(t, countExclusions(t, database))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx, insertExclusion, "e1", "Le Cinq")
			panic("boom")
		})
	})
	assert.Zero(t, countExclusions(t, database))
}

type countingTx struct {
	db.DBTX
	execs *int
}

func (c countingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	*c.execs++
	return c.DBTX.ExecContext(ctx, query, args...)
}

func TestWithinTx_Wrapper(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	execs := 0
	uow := db.NewSQLiteUnitOfWork(database, db.WithTxWrapper(func(tx db.DBTX) db.DBTX {
		return countingTx{DBTX: tx, execs: &execs}
	}))

	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, insertExclusion, "e1", "Le Cinq")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, execs)
	assert.Equal(t, 1, countExclusions(t, database))
}
