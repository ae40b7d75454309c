package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/alexanderramin/concierge/internal/db"
)

// FailOnNthExecUoW runs real transactions but makes the FailOn-th write of
// each unit return Err, so tests can check that multi-row writes roll back.
// Writes are counted from 1; reads are not counted.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn db.TxFunc) error {
	inner := db.NewSQLiteUnitOfWork(u.DB, db.WithTxWrapper(func(tx db.DBTX) db.DBTX {
		return &failingWrites{DBTX: tx, failOn: u.FailOn, err: u.Err}
	}))
	return inner.WithinTx(ctx, fn)
}

type failingWrites struct {
	db.DBTX
	writes atomic.Int32
	failOn int32
	err    error
}

func (f *failingWrites) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.writes.Add(1) == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
