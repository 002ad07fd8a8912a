package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansafin/learnsync/internal/logger"
)

func TestRunInTransaction_CommitsJoinedStatements(t *testing.T) {
	db, mock := newTestDB(t)
	storeDB := newDBFromSQL(db)
	queue := NewSyncQueueRepository(storeDB, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteSyncItem)).
		WithArgs("q-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(markQuizAttemptSynced)).
		WithArgs("a-1", "synced").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := storeDB.RunInTransaction(testContext(), func(ctx context.Context) error {
		if err := queue.Delete(ctx, "q-1"); err != nil {
			return err
		}
		_, execErr := storeDB.executor(ctx).ExecContext(ctx, markQuizAttemptSynced, "a-1", "synced")
		return execErr
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_RollsBackOnError(t *testing.T) {
	db, mock := newTestDB(t)
	storeDB := newDBFromSQL(db)

	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := storeDB.RunInTransaction(testContext(), func(ctx context.Context) error {
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_JoinsOpenTransaction(t *testing.T) {
	db, mock := newTestDB(t)
	storeDB := newDBFromSQL(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	var nestedCalled bool
	err := storeDB.RunInTransaction(testContext(), func(ctx context.Context) error {
		// no second Begin expected here
		return storeDB.RunInTransaction(ctx, func(ctx context.Context) error {
			nestedCalled = true
			return nil
		})
	})

	require.NoError(t, err)
	assert.True(t, nestedCalled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_BeginError(t *testing.T) {
	db, mock := newTestDB(t)
	storeDB := newDBFromSQL(db)

	mock.ExpectBegin().WillReturnError(errors.New("connection gone"))

	err := storeDB.RunInTransaction(testContext(), func(ctx context.Context) error {
		t.Fatal("fn must not run when Begin fails")
		return nil
	})

	require.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestRunInTransaction_CommitError(t *testing.T) {
	db, mock := newTestDB(t)
	storeDB := newDBFromSQL(db)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("disk full"))

	err := storeDB.RunInTransaction(testContext(), func(ctx context.Context) error {
		return nil
	})

	require.ErrorIs(t, err, ErrCommitingTransaction)
}
