package sqlite

import (
	"context"
	"database/sql"

	"github.com/kz2wd/time-tracker/internal/errors"
)

// The transaction gateway: every repository operation runs inside exactly one
// scoped transaction opened here. Multi-step mutations (create a task and
// splice its id into the parent's subtask list, repair duplicate open
// entries) compose inside a single fn rather than nesting gateway calls.
//
// runRead and runWrite are distinct entry points to keep the read/write
// scoping of each operation explicit; both open a plain transaction because
// SQLite serializes writers regardless.

// runRead executes fn inside a read-scoped transaction.
func (r *SQLiteRepository) runRead(ctx context.Context, operation string, fn func(tx *sql.Tx) error) error {
	return r.runTx(ctx, operation, fn)
}

// runWrite executes fn inside a read-write transaction. The transaction is
// committed on normal return and rolled back if fn returns an error, so a
// failed multi-step mutation leaves no partial writes behind.
func (r *SQLiteRepository) runWrite(ctx context.Context, operation string, fn func(tx *sql.Tx) error) error {
	return r.runTx(ctx, operation, fn)
}

func (r *SQLiteRepository) runTx(ctx context.Context, operation string, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewDatabaseError("begin "+operation, err)
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.NewDatabaseError("commit "+operation, err)
	}
	return nil
}
