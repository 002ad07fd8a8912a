package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ansafin/learnsync/internal/logger"
	"github.com/ansafin/learnsync/migrations"
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	migrationDialect   string
	migrationDir       string
}

// Migrate runs the pending goose migrations embedded for this database.
// Opening a store at an older schema version therefore performs its
// one-time upgrade here, before any repository touches it.
func (db *DB) Migrate() error {
	return migrations.Up(db.DB, db.migrationDialect, db.migrationDir)
}

// txKey carries an open *sql.Tx through a context so repository methods
// called inside [DB.RunInTransaction] join the same transaction.
type txKey struct{}

// executor is the subset of database/sql shared by *sql.DB and *sql.Tx
// that repositories use.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// executor returns the transaction bound to ctx when one is open,
// otherwise the plain connection pool.
func (db *DB) executor(ctx context.Context) executor {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db.DB
}

// RunInTransaction executes fn within a single database transaction. Any
// repository call made with the ctx passed to fn participates in that
// transaction, so multi-store operations (e.g. "remove queue item and
// mark the attempt synced") either commit together or leave no trace.
//
// fn returning an error rolls the transaction back and the error is
// returned unchanged. Begin and commit failures are wrapped with
// [ErrBeginningTransaction] / [ErrCommitingTransaction].
func (db *DB) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		// already inside a transaction, just join it
		return fn(ctx)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
