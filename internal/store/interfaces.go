package store

import (
	"context"

	"github.com/ansafin/learnsync/models"
)

// AttemptIngestRepository persists quiz attempts delivered by client sync
// workers. Inserts are deduplicated by attempt_id so a redelivered
// submission is recognised instead of applied twice.
type AttemptIngestRepository interface {
	// InsertAttempt stores one quiz attempt. Returns
	// [ErrAttemptAlreadyExists] when the attempt_id was already applied.
	InsertAttempt(ctx context.Context, userID int64, attempt models.QuizSyncRequest) error
}

// ProgressIngestRepository persists chapter progress delivered by client
// sync workers. The row is keyed by (user_id, chapter_id), so repeated
// deliveries converge on the same state.
type ProgressIngestRepository interface {
	UpsertProgress(ctx context.Context, userID int64, progress models.ProgressSyncRequest) error
}

// ReviewIngestRepository persists spaced-repetition rating events delivered
// by client sync workers. An event is keyed by (user_id, question_id,
// reviewed_at); a redelivered event is recognised instead of applied twice.
type ReviewIngestRepository interface {
	// InsertReviewResult stores one rating event. Returns
	// [ErrReviewAlreadyApplied] when the event was already applied.
	InsertReviewResult(ctx context.Context, userID int64, review models.ReviewSyncRequest) error
}
