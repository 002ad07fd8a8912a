package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ansafin/learnsync/internal/adapter"
	"github.com/ansafin/learnsync/internal/logger"
	"github.com/ansafin/learnsync/internal/store"
	"github.com/ansafin/learnsync/models"
)

// ErrMalformedSyncItem marks a queue item whose payload cannot be decoded
// or whose type is outside the known set. Such an item can never be
// delivered, so the flush cycle drops it instead of burning retries on it.
var ErrMalformedSyncItem = errors.New("malformed sync queue item")

// syncFlushService is the concrete implementation of SyncFlushService.
//
// A flush cycle makes no ordering promises across types and no
// first-fails-blocks-rest promise within a type: every item gets its own
// delivery attempt and its own retry accounting.
type syncFlushService struct {
	queue    store.SyncQueueRepository
	attempts store.QuizAttemptRepository
	progress store.ProgressRepository
	tx       store.Transactor
	adapter  adapter.ServerAdapter
	logger   *logger.Logger
}

// NewSyncFlushService constructs a SyncFlushService on top of the client
// storages and the server adapter.
func NewSyncFlushService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) SyncFlushService {
	return &syncFlushService{
		queue:    storages.SyncQueue,
		attempts: storages.QuizAttempts,
		progress: storages.Progress,
		tx:       storages.DB,
		adapter:  serverAdapter,
		logger:   logger,
	}
}

// Flush implements SyncFlushService. Types are drained in the fixed order
// of models.SyncItemTypes; within a type, items come back from the store
// in insertion order.
func (s *syncFlushService) Flush(ctx context.Context, userID int64) error {
	for _, itemType := range models.SyncItemTypes {
		items, err := s.queue.ListPending(ctx, userID, itemType)
		if err != nil {
			return fmt.Errorf("list pending %s items: %w", itemType, err)
		}

		for _, item := range items {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.flushItem(ctx, item)
		}
	}

	return nil
}

// flushItem attempts one delivery and settles the item's fate: confirmed
// and removed, retry counter bumped, or evicted at the ceiling.
func (s *syncFlushService) flushItem(ctx context.Context, item models.SyncQueueItem) {
	log := logger.FromContext(ctx)

	deliverErr := s.deliver(ctx, item)
	if deliverErr == nil {
		if err := s.confirm(ctx, item); err != nil {
			// Local storage hiccup after a successful delivery: leave the
			// item pending. Redelivery is safe because the server
			// deduplicates by the payload's natural key.
			log.Err(err).
				Str("item_id", item.ID).
				Str("type", string(item.Type)).
				Msg("failed to confirm delivered sync item, will redeliver")
		}
		return
	}

	if errors.Is(deliverErr, ErrMalformedSyncItem) {
		log.Warn().
			Err(deliverErr).
			Str("item_id", item.ID).
			Str("type", string(item.Type)).
			Msg("dropping undeliverable sync item")
		s.drop(ctx, item)
		return
	}

	if item.RetryCount+1 >= models.MaxRetryCount {
		log.Warn().
			Str("item_id", item.ID).
			Str("type", string(item.Type)).
			Int("retry_count", item.RetryCount+1).
			Time("created_at", item.CreatedAt).
			Msg("sync item reached retry ceiling, dropping its data")
		s.drop(ctx, item)
		return
	}

	log.Info().
		Err(deliverErr).
		Str("item_id", item.ID).
		Str("type", string(item.Type)).
		Int("retry_count", item.RetryCount+1).
		Msg("sync item delivery failed, keeping for retry")

	if err := s.queue.IncrementRetry(ctx, item.ID); err != nil {
		log.Err(err).Str("item_id", item.ID).Msg("failed to increment sync item retry counter")
	}
}

// deliver decodes the payload and posts it to the endpoint that matches
// the item type.
func (s *syncFlushService) deliver(ctx context.Context, item models.SyncQueueItem) error {
	switch item.Type {
	case models.SyncItemQuizSubmission:
		var req models.QuizSyncRequest
		if err := json.Unmarshal(item.Payload, &req); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedSyncItem, err)
		}
		return s.adapter.SubmitQuizAttempt(ctx, req)

	case models.SyncItemProgress:
		var req models.ProgressSyncRequest
		if err := json.Unmarshal(item.Payload, &req); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedSyncItem, err)
		}
		return s.adapter.SubmitProgress(ctx, req)

	case models.SyncItemReviewResult:
		var req models.ReviewSyncRequest
		if err := json.Unmarshal(item.Payload, &req); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedSyncItem, err)
		}
		return s.adapter.SubmitReviewResult(ctx, req)

	default:
		return fmt.Errorf("%w: unknown type %q", ErrMalformedSyncItem, item.Type)
	}
}

// confirm removes the delivered item and flips the matching local read
// model to synced, in one transaction, so the two can never disagree.
func (s *syncFlushService) confirm(ctx context.Context, item models.SyncQueueItem) error {
	return s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.queue.Delete(ctx, item.ID); err != nil {
			return fmt.Errorf("delete delivered sync item: %w", err)
		}
		return s.markSynced(ctx, item)
	})
}

// markSynced updates the read model the item originated from. A missing
// record is not an error: the queue item outlived it.
func (s *syncFlushService) markSynced(ctx context.Context, item models.SyncQueueItem) error {
	switch item.Type {
	case models.SyncItemQuizSubmission:
		var req models.QuizSyncRequest
		if err := json.Unmarshal(item.Payload, &req); err != nil {
			return nil
		}
		if err := s.attempts.MarkSynced(ctx, req.AttemptID); err != nil && !errors.Is(err, store.ErrAttemptNotFound) {
			return fmt.Errorf("mark quiz attempt synced: %w", err)
		}

	case models.SyncItemProgress:
		var req models.ProgressSyncRequest
		if err := json.Unmarshal(item.Payload, &req); err != nil {
			return nil
		}
		if err := s.progress.MarkSynced(ctx, item.UserID, req.ChapterID); err != nil && !errors.Is(err, store.ErrProgressNotFound) {
			return fmt.Errorf("mark progress synced: %w", err)
		}

	case models.SyncItemReviewResult:
		// The rescheduled card was committed when the rating happened;
		// there is no separate sync flag to flip.
	}

	return nil
}

// drop removes an item whose data is being abandoned.
func (s *syncFlushService) drop(ctx context.Context, item models.SyncQueueItem) {
	if err := s.queue.Delete(ctx, item.ID); err != nil {
		logger.FromContext(ctx).Err(err).Str("item_id", item.ID).Msg("failed to delete dropped sync item")
	}
}
