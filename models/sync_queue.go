package models

import (
	"encoding/json"
	"time"
)

// SyncItemType is the closed set of mutation kinds the sync queue carries.
type SyncItemType string

const (
	// SyncItemProgress is a chapter progress update.
	SyncItemProgress SyncItemType = "progress_update"

	// SyncItemQuizSubmission is a finished quiz attempt.
	SyncItemQuizSubmission SyncItemType = "quiz_submission"

	// SyncItemReviewResult is a spaced-repetition rating result.
	SyncItemReviewResult SyncItemType = "review_result"
)

// SyncItemTypes lists every queue item type in the fixed order the sync
// worker drains them within one flush cycle. The order is a convention,
// not a cross-type delivery guarantee.
var SyncItemTypes = []SyncItemType{
	SyncItemProgress,
	SyncItemQuizSubmission,
	SyncItemReviewResult,
}

// SyncAction describes what the mutation does on the server side.
type SyncAction string

const (
	SyncActionCreate SyncAction = "create"
	SyncActionUpdate SyncAction = "update"
)

// MaxRetryCount is the flush-attempt ceiling. An item whose retry counter
// reaches this value is evicted from the queue and its data is dropped.
const MaxRetryCount = 5

// SyncQueueItem is one pending mutation recorded while the server could
// not be reached. Items are flushed in insertion order per type and are
// never reordered or coalesced.
type SyncQueueItem struct {
	// ID is a client-generated unique identifier (UUID).
	ID string `json:"id"`

	// UserID is the learner that produced the mutation.
	UserID int64 `json:"user_id"`

	// Type selects the server endpoint the payload is delivered to.
	Type SyncItemType `json:"type"`

	// Action is create or update.
	Action SyncAction `json:"action"`

	// Payload is the request body for the target endpoint, stored
	// opaque. It must carry the natural identity key (attempt id,
	// chapter id) so the server can deduplicate repeated deliveries.
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is when the mutation was recorded locally.
	CreatedAt time.Time `json:"created_at"`

	// RetryCount is the number of failed flush attempts so far. It only
	// grows; at MaxRetryCount the item is dropped.
	RetryCount int `json:"retry_count"`
}

// TableName returns the name of the database table
// associated with the SyncQueueItem model.
func (i *SyncQueueItem) TableName() string {
	return "sync_queue"
}
