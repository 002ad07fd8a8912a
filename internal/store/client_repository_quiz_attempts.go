package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ansafin/learnsync/internal/logger"
	"github.com/ansafin/learnsync/models"
)

type quizAttemptRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewQuizAttemptRepository(db *DB, logger *logger.Logger) QuizAttemptRepository {
	return &quizAttemptRepository{
		db:     db,
		logger: logger,
	}
}

func (r *quizAttemptRepository) SaveQuizAttempt(ctx context.Context, attempt models.QuizAttempt) error {
	log := logger.FromContext(ctx)

	answers, err := json.Marshal(attempt.Answers)
	if err != nil {
		return fmt.Errorf("failed to encode attempt answers: %w", err)
	}

	_, err = r.db.executor(ctx).ExecContext(ctx, saveQuizAttempt,
		attempt.AttemptID,
		attempt.UserID,
		attempt.QuizID,
		string(answers),
		attempt.Mode,
		attempt.ElapsedSeconds,
		attempt.Score,
		attempt.SyncStatus,
		attempt.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "quizAttemptRepository.SaveQuizAttempt").
			Str("attempt_id", attempt.AttemptID).
			Msg("failed to save quiz attempt")
		return fmt.Errorf("failed to save quiz attempt (attempt_id=%s): %w", attempt.AttemptID, err)
	}

	return nil
}

func (r *quizAttemptRepository) GetQuizAttempt(ctx context.Context, attemptID string) (models.QuizAttempt, error) {
	log := logger.FromContext(ctx)

	var attempt models.QuizAttempt
	var answers string

	row := r.db.executor(ctx).QueryRowContext(ctx, getQuizAttempt, attemptID)
	err := row.Scan(
		&attempt.AttemptID,
		&attempt.UserID,
		&attempt.QuizID,
		&answers,
		&attempt.Mode,
		&attempt.ElapsedSeconds,
		&attempt.Score,
		&attempt.SyncStatus,
		&attempt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.QuizAttempt{}, ErrAttemptNotFound
		}
		log.Err(err).
			Str("func", "quizAttemptRepository.GetQuizAttempt").
			Str("attempt_id", attemptID).
			Msg("failed to scan quiz attempt row")
		return models.QuizAttempt{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal([]byte(answers), &attempt.Answers); err != nil {
		return models.QuizAttempt{}, fmt.Errorf("failed to decode attempt answers: %w", err)
	}

	return attempt, nil
}

func (r *quizAttemptRepository) MarkSynced(ctx context.Context, attemptID string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.executor(ctx).ExecContext(ctx, markQuizAttemptSynced, attemptID, models.SyncSynced)
	if err != nil {
		log.Err(err).
			Str("func", "quizAttemptRepository.MarkSynced").
			Str("attempt_id", attemptID).
			Msg("failed to mark quiz attempt synced")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrAttemptNotFound
	}

	return nil
}
