package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ansafin/learnsync/internal/adapter"
	"github.com/ansafin/learnsync/internal/logger"
	"github.com/ansafin/learnsync/internal/store"
	"github.com/ansafin/learnsync/internal/utils"
	"github.com/ansafin/learnsync/models"
)

// queueService is the concrete implementation of QueueService.
//
// Every mutation follows the same shape: persist the local read model
// first, then try to confirm it against the server. When the server
// cannot be reached the mutation is appended to the sync queue and the
// call still succeeds; the background worker owns delivery from there.
type queueService struct {
	storages *store.ClientStorages
	adapter  adapter.ServerAdapter
	ids      *utils.UUIDGenerator
	logger   *logger.Logger
}

// NewQueueService constructs a QueueService on top of the client storages
// and the server adapter.
func NewQueueService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) QueueService {
	return &queueService{
		storages: storages,
		adapter:  serverAdapter,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// RecordQuizAttempt implements QueueService.
//
// The attempt is saved locally with a pending sync status before any
// network work happens, so a crash mid-call never loses it. An empty
// AttemptID gets a generated one; the ID is the server-side idempotency
// key, so it must be fixed before the first delivery attempt.
func (s *queueService) RecordQuizAttempt(ctx context.Context, attempt models.QuizAttempt) error {
	log := logger.FromContext(ctx)

	if attempt.UserID == 0 || attempt.QuizID == "" {
		log.Error().Str("quiz_id", attempt.QuizID).Msg("invalid quiz attempt provided")
		return ErrInvalidDataProvided
	}

	if attempt.AttemptID == "" {
		attempt.AttemptID = s.ids.Generate()
	}
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now()
	}
	attempt.SyncStatus = models.SyncPending

	if err := s.storages.QuizAttempts.SaveQuizAttempt(ctx, attempt); err != nil {
		return fmt.Errorf("save quiz attempt locally: %w", err)
	}

	req := models.QuizSyncRequest{
		AttemptID:      attempt.AttemptID,
		QuizID:         attempt.QuizID,
		Answers:        attempt.Answers,
		Mode:           attempt.Mode,
		ElapsedSeconds: attempt.ElapsedSeconds,
	}

	if err := s.adapter.SubmitQuizAttempt(ctx, req); err != nil {
		log.Warn().
			Err(err).
			Str("attempt_id", attempt.AttemptID).
			Msg("quiz attempt not confirmed by server, queueing for sync")
		return enqueueSyncItem(ctx, s.storages.SyncQueue, s.ids, attempt.UserID, models.SyncItemQuizSubmission, models.SyncActionCreate, req, attempt.CreatedAt)
	}

	if err := s.storages.QuizAttempts.MarkSynced(ctx, attempt.AttemptID); err != nil {
		return fmt.Errorf("mark quiz attempt synced: %w", err)
	}

	return nil
}

// RecordProgress implements QueueService. Progress is an upsert on both
// sides: locally by (user, chapter) and on the server by the same pair,
// so repeated recordings converge instead of duplicating.
func (s *queueService) RecordProgress(ctx context.Context, snapshot models.ProgressSnapshot) error {
	log := logger.FromContext(ctx)

	if snapshot.UserID == 0 || snapshot.ChapterID == "" {
		log.Error().Str("chapter_id", snapshot.ChapterID).Msg("invalid progress snapshot provided")
		return ErrInvalidDataProvided
	}
	if snapshot.ReadPercent < 0 || snapshot.ReadPercent > 100 {
		log.Error().Float64("read_percent", snapshot.ReadPercent).Msg("read percent out of range")
		return ErrInvalidDataProvided
	}

	if snapshot.UpdatedAt.IsZero() {
		snapshot.UpdatedAt = time.Now()
	}
	snapshot.SyncStatus = models.SyncPending

	if err := s.storages.Progress.SaveProgress(ctx, snapshot); err != nil {
		return fmt.Errorf("save progress locally: %w", err)
	}

	req := models.ProgressSyncRequest{
		ChapterID:   snapshot.ChapterID,
		ReadPercent: snapshot.ReadPercent,
		Completed:   snapshot.Completed,
	}

	if err := s.adapter.SubmitProgress(ctx, req); err != nil {
		log.Warn().
			Err(err).
			Str("chapter_id", snapshot.ChapterID).
			Msg("progress update not confirmed by server, queueing for sync")
		return enqueueSyncItem(ctx, s.storages.SyncQueue, s.ids, snapshot.UserID, models.SyncItemProgress, models.SyncActionUpdate, req, snapshot.UpdatedAt)
	}

	if err := s.storages.Progress.MarkSynced(ctx, snapshot.UserID, snapshot.ChapterID); err != nil {
		return fmt.Errorf("mark progress synced: %w", err)
	}

	return nil
}

// enqueueSyncItem serialises the request payload and appends it to the
// sync queue with a zero retry counter. Shared by every client service
// that falls back to queued delivery.
func enqueueSyncItem(ctx context.Context, queue store.SyncQueueRepository, ids *utils.UUIDGenerator, userID int64, itemType models.SyncItemType, action models.SyncAction, payload any, createdAt time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode sync payload: %w", err)
	}

	item := models.SyncQueueItem{
		ID:        ids.Generate(),
		UserID:    userID,
		Type:      itemType,
		Action:    action,
		Payload:   body,
		CreatedAt: createdAt,
	}

	if err := queue.Enqueue(ctx, item); err != nil {
		return fmt.Errorf("enqueue sync item: %w", err)
	}

	return nil
}
