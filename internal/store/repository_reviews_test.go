package store

import (
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansafin/learnsync/internal/logger"
	"github.com/ansafin/learnsync/models"
)

func testReviewSyncRequest() models.ReviewSyncRequest {
	return models.ReviewSyncRequest{
		QuestionID:   "geo-12",
		Quality:      4,
		EaseFactor:   2.6,
		IntervalDays: 6,
		Repetitions:  2,
		ReviewedAt:   time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}
}

func TestReviewIngestRepository_InsertReviewResult(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewReviewIngestRepository(newDBFromSQL(db), logger.Nop())

	review := testReviewSyncRequest()

	mock.ExpectExec("INSERT INTO review_results").
		WithArgs(int64(42), review.QuestionID, review.Quality, review.EaseFactor,
			review.IntervalDays, review.Repetitions, review.ReviewedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.InsertReviewResult(testContext(), 42, review)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewIngestRepository_InsertReviewResult_Redelivered(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewReviewIngestRepository(newDBFromSQL(db), logger.Nop())

	// conflict on (user_id, question_id, reviewed_at): zero rows affected
	mock.ExpectExec("INSERT INTO review_results").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.InsertReviewResult(testContext(), 42, testReviewSyncRequest())

	require.ErrorIs(t, err, ErrReviewAlreadyApplied)
}

func TestReviewIngestRepository_InsertReviewResult_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewReviewIngestRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec("INSERT INTO review_results").
		WillReturnError(errors.New("connection refused"))

	err := repo.InsertReviewResult(testContext(), 42, testReviewSyncRequest())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrReviewAlreadyApplied)
}
