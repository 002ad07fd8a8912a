package store

import (
	"context"
	"time"

	"github.com/ansafin/learnsync/models"
)

// ReviewCardRepository is the local store of per-(user, question)
// scheduling state. Cards are created lazily on first exposure and never
// deleted while the pair exists.
type ReviewCardRepository interface {
	// SaveReviewCard inserts or replaces the card's scheduling state.
	SaveReviewCard(ctx context.Context, card models.ReviewCard) error

	// GetReviewCard returns the card for (userID, questionID), or
	// [ErrCardNotFound] when the question has never been seen.
	GetReviewCard(ctx context.Context, userID int64, questionID string) (models.ReviewCard, error)

	// ListDueReviewCards returns all cards with next_review_at <= now in
	// insertion order.
	ListDueReviewCards(ctx context.Context, userID int64, now time.Time) ([]models.ReviewCard, error)
}

// SyncQueueRepository is the ordered set of pending mutations awaiting
// delivery to the server.
type SyncQueueRepository interface {
	// Enqueue appends an item to the queue.
	Enqueue(ctx context.Context, item models.SyncQueueItem) error

	// ListPending returns the user's pending items of one type in
	// insertion order.
	ListPending(ctx context.Context, userID int64, itemType models.SyncItemType) ([]models.SyncQueueItem, error)

	// IncrementRetry bumps the item's retry counter after a failed flush
	// attempt. Returns [ErrQueueItemNotFound] if the item is gone.
	IncrementRetry(ctx context.Context, id string) error

	// Delete removes the item, either on confirmed delivery or on
	// reaching the retry ceiling.
	Delete(ctx context.Context, id string) error
}

// QuizAttemptRepository is the local read-model cache of quiz attempts.
type QuizAttemptRepository interface {
	SaveQuizAttempt(ctx context.Context, attempt models.QuizAttempt) error
	GetQuizAttempt(ctx context.Context, attemptID string) (models.QuizAttempt, error)

	// MarkSynced flips the attempt's sync_status once the corresponding
	// queue item is confirmed by the server.
	MarkSynced(ctx context.Context, attemptID string) error
}

// ProgressRepository is the local read-model cache of chapter progress.
type ProgressRepository interface {
	SaveProgress(ctx context.Context, snapshot models.ProgressSnapshot) error
	GetProgress(ctx context.Context, userID int64, chapterID string) (models.ProgressSnapshot, error)
	MarkSynced(ctx context.Context, userID int64, chapterID string) error
}

// Transactor runs a function within one database transaction so that
// multi-repository operations commit or roll back atomically.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
