package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/ansafin/learnsync/internal/logger"
	"github.com/ansafin/learnsync/models"
)

// progressIngestRepository is the PostgreSQL-backed implementation of
// [ProgressIngestRepository] over the "chapter_progress" table.
type progressIngestRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewProgressIngestRepository(db *DB, logger *logger.Logger) ProgressIngestRepository {
	logger.Debug().Msg("creating progress ingest repository")
	return &progressIngestRepository{
		db:     db,
		logger: logger,
	}
}

func (r *progressIngestRepository) UpsertProgress(ctx context.Context, userID int64, progress models.ProgressSyncRequest) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("chapter_progress").
		Columns("user_id", "chapter_id", "read_percent", "completed").
		Values(userID, progress.ChapterID, progress.ReadPercent, progress.Completed).
		Suffix(`ON CONFLICT (user_id, chapter_id) DO UPDATE SET
			read_percent = EXCLUDED.read_percent,
			completed    = EXCLUDED.completed,
			updated_at   = NOW()`).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*progressIngestRepository.UpsertProgress").
			Int64("user_id", userID).
			Str("chapter_id", progress.ChapterID).
			Msg("failed to upsert chapter progress")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
