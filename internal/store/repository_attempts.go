package store

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/ansafin/learnsync/internal/logger"
	"github.com/ansafin/learnsync/models"
)

// attemptIngestRepository is the PostgreSQL-backed implementation of
// [AttemptIngestRepository]. It writes to the "quiz_attempts" table whose
// unique attempt_id constraint realises the dedup contract: the client may
// deliver the same attempt any number of times, the row is inserted once.
type attemptIngestRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewAttemptIngestRepository(db *DB, logger *logger.Logger) AttemptIngestRepository {
	logger.Debug().Msg("creating attempt ingest repository")
	return &attemptIngestRepository{
		db:     db,
		logger: logger,
	}
}

func (r *attemptIngestRepository) InsertAttempt(ctx context.Context, userID int64, attempt models.QuizSyncRequest) error {
	log := logger.FromContext(ctx)

	answers, err := json.Marshal(attempt.Answers)
	if err != nil {
		return fmt.Errorf("failed to encode attempt answers: %w", err)
	}

	query, args, err := sq.Insert("quiz_attempts").
		Columns("attempt_id", "user_id", "quiz_id", "answers", "mode", "elapsed_seconds").
		Values(attempt.AttemptID, userID, attempt.QuizID, answers, attempt.Mode, attempt.ElapsedSeconds).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return ErrAttemptAlreadyExists
		}

		log.Err(err).
			Str("func", "*attemptIngestRepository.InsertAttempt").
			Int64("user_id", userID).
			Str("attempt_id", attempt.AttemptID).
			Msg("failed to insert quiz attempt")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
