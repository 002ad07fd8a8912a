package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ansafin/learnsync/internal/logger"
	"github.com/ansafin/learnsync/models"
)

type progressRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewProgressRepository(db *DB, logger *logger.Logger) ProgressRepository {
	return &progressRepository{
		db:     db,
		logger: logger,
	}
}

func (r *progressRepository) SaveProgress(ctx context.Context, snapshot models.ProgressSnapshot) error {
	log := logger.FromContext(ctx)

	_, err := r.db.executor(ctx).ExecContext(ctx, upsertProgress,
		snapshot.UserID,
		snapshot.ChapterID,
		snapshot.ReadPercent,
		snapshot.Completed,
		snapshot.SyncStatus,
		snapshot.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "progressRepository.SaveProgress").
			Int64("user_id", snapshot.UserID).
			Str("chapter_id", snapshot.ChapterID).
			Msg("failed to upsert progress snapshot")
		return fmt.Errorf("failed to save progress (chapter_id=%s): %w", snapshot.ChapterID, err)
	}

	return nil
}

func (r *progressRepository) GetProgress(ctx context.Context, userID int64, chapterID string) (models.ProgressSnapshot, error) {
	log := logger.FromContext(ctx)

	var snapshot models.ProgressSnapshot
	row := r.db.executor(ctx).QueryRowContext(ctx, getProgress, userID, chapterID)
	err := row.Scan(
		&snapshot.UserID,
		&snapshot.ChapterID,
		&snapshot.ReadPercent,
		&snapshot.Completed,
		&snapshot.SyncStatus,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ProgressSnapshot{}, ErrProgressNotFound
		}
		log.Err(err).
			Str("func", "progressRepository.GetProgress").
			Int64("user_id", userID).
			Str("chapter_id", chapterID).
			Msg("failed to scan progress row")
		return models.ProgressSnapshot{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return snapshot, nil
}

func (r *progressRepository) MarkSynced(ctx context.Context, userID int64, chapterID string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.executor(ctx).ExecContext(ctx, markProgressSynced, userID, chapterID, models.SyncSynced)
	if err != nil {
		log.Err(err).
			Str("func", "progressRepository.MarkSynced").
			Int64("user_id", userID).
			Str("chapter_id", chapterID).
			Msg("failed to mark progress synced")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrProgressNotFound
	}

	return nil
}
