package models

import "time"

// SyncStatus marks whether a locally cached record has been confirmed by
// the server.
type SyncStatus string

const (
	// SyncPending means the record exists locally but the server has not
	// acknowledged it yet.
	SyncPending SyncStatus = "pending"

	// SyncSynced means the server has accepted the corresponding queue
	// item.
	SyncSynced SyncStatus = "synced"
)

// QuizAttempt is the local read model of one finished quiz run. It is
// kept consistent with, but independent from, the sync queue: the worker
// flips SyncStatus to synced once the matching queue item is confirmed.
type QuizAttempt struct {
	// AttemptID is a client-generated unique identifier. It doubles as
	// the idempotency key the server deduplicates by.
	AttemptID string `json:"attempt_id"`

	// UserID is the learner who took the quiz.
	UserID int64 `json:"user_id"`

	// QuizID identifies the quiz that was taken.
	QuizID string `json:"quiz_id"`

	// Answers holds the learner's answers keyed by question id.
	Answers map[string]string `json:"answers"`

	// Mode is the quiz mode the attempt ran in (e.g. practice, exam).
	Mode string `json:"mode"`

	// ElapsedSeconds is how long the attempt took.
	ElapsedSeconds int `json:"elapsed_seconds"`

	// Score is the fraction of correct answers in [0, 1].
	Score float64 `json:"score"`

	SyncStatus SyncStatus `json:"sync_status"`
	CreatedAt  time.Time  `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the QuizAttempt model.
func (a *QuizAttempt) TableName() string {
	return "quiz_attempts"
}
