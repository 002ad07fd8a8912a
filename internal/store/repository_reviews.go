package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/ansafin/learnsync/internal/logger"
	"github.com/ansafin/learnsync/models"
)

// reviewIngestRepository is the PostgreSQL-backed implementation of
// [ReviewIngestRepository]. One rating event is identified by
// (user_id, question_id, reviewed_at); redelivered events hit the primary
// key and are skipped with ON CONFLICT DO NOTHING.
type reviewIngestRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewReviewIngestRepository(db *DB, logger *logger.Logger) ReviewIngestRepository {
	logger.Debug().Msg("creating review ingest repository")
	return &reviewIngestRepository{
		db:     db,
		logger: logger,
	}
}

func (r *reviewIngestRepository) InsertReviewResult(ctx context.Context, userID int64, review models.ReviewSyncRequest) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("review_results").
		Columns("user_id", "question_id", "quality", "ease_factor", "interval_days", "repetitions", "reviewed_at").
		Values(userID, review.QuestionID, review.Quality, review.EaseFactor, review.IntervalDays, review.Repetitions, review.ReviewedAt).
		Suffix("ON CONFLICT (user_id, question_id, reviewed_at) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*reviewIngestRepository.InsertReviewResult").
			Int64("user_id", userID).
			Str("question_id", review.QuestionID).
			Msg("failed to insert review result")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrReviewAlreadyApplied
	}

	return nil
}
