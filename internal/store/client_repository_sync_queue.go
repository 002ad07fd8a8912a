package store

import (
	"context"
	"fmt"

	"github.com/ansafin/learnsync/internal/logger"
	"github.com/ansafin/learnsync/models"
)

type syncQueueRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewSyncQueueRepository(db *DB, logger *logger.Logger) SyncQueueRepository {
	return &syncQueueRepository{
		db:     db,
		logger: logger,
	}
}

func (r *syncQueueRepository) Enqueue(ctx context.Context, item models.SyncQueueItem) error {
	log := logger.FromContext(ctx)

	_, err := r.db.executor(ctx).ExecContext(ctx, enqueueSyncItem,
		item.ID,
		item.UserID,
		item.Type,
		item.Action,
		string(item.Payload),
		item.CreatedAt,
		item.RetryCount,
	)
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.Enqueue").
			Str("id", item.ID).
			Str("type", string(item.Type)).
			Msg("failed to enqueue sync item")
		return fmt.Errorf("failed to enqueue sync item (id=%s): %w", item.ID, err)
	}

	return nil
}

func (r *syncQueueRepository) ListPending(ctx context.Context, userID int64, itemType models.SyncItemType) ([]models.SyncQueueItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.executor(ctx).QueryContext(ctx, listPendingSyncItems, userID, itemType)
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.ListPending").
			Int64("user_id", userID).
			Str("type", string(itemType)).
			Msg("failed to query pending sync items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.SyncQueueItem
	for rows.Next() {
		var item models.SyncQueueItem
		var payload string

		scanErr := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.Type,
			&item.Action,
			&payload,
			&item.CreatedAt,
			&item.RetryCount,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "syncQueueRepository.ListPending").
				Int64("user_id", userID).
				Msg("failed to scan sync queue rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		item.Payload = []byte(payload)
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (r *syncQueueRepository) IncrementRetry(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.executor(ctx).ExecContext(ctx, incrementSyncItemRetry, id)
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.IncrementRetry").
			Str("id", id).
			Msg("failed to increment retry counter")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrQueueItemNotFound
	}

	return nil
}

func (r *syncQueueRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	_, err := r.db.executor(ctx).ExecContext(ctx, deleteSyncItem, id)
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.Delete").
			Str("id", id).
			Msg("failed to delete sync item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
