// Package service contains the business logic of the application.
//
// The client half implements the offline-first core: recording learner
// mutations locally, queueing them for delivery when the server cannot be
// reached, running interactive spaced-repetition sessions, and flushing
// the sync queue in the background. The server half validates and applies
// the payloads those clients deliver.
package service

import (
	"context"
	"time"

	"github.com/ansafin/learnsync/models"
)

// QueueService records learner mutations on the client. Every mutation is
// first persisted to local storage; delivery to the server is attempted
// immediately and, when it fails, the mutation is appended to the sync
// queue for the background worker to retry.
type QueueService interface {
	// RecordQuizAttempt persists a finished quiz attempt locally and
	// hands it to the server. A delivery failure never fails the call:
	// the attempt is queued instead.
	RecordQuizAttempt(ctx context.Context, attempt models.QuizAttempt) error

	// RecordProgress persists a chapter progress snapshot locally and
	// hands it to the server, queueing on delivery failure.
	RecordProgress(ctx context.Context, snapshot models.ProgressSnapshot) error
}

// ReviewSessionService drives one interactive spaced-repetition session.
// A session is a snapshot of the cards due at start time; rating a card
// persists the rescheduled card immediately, so an interrupted session
// loses only the card currently on screen.
//
// Implementations hold per-session state and are not safe for concurrent
// use; each interactive context owns its own instance.
type ReviewSessionService interface {
	// StartSession loads the cards due at now for the user and returns
	// how many the session will present. Starting a session discards any
	// previous session state held by the service.
	StartSession(ctx context.Context, userID int64, now time.Time) (int, error)

	// Current returns the card the learner should rate next. ok is false
	// when no session is active or every card has been rated.
	Current() (card models.ReviewCard, ok bool)

	// RateCurrent applies a quality rating in [0, 5] to the current card,
	// persists the rescheduled card, syncs the rating (queueing it if the
	// server is unreachable) and advances to the next card. Returns
	// [ErrNoActiveSession] when there is no card to rate, or
	// [scheduler.ErrInvalidQuality] for an out-of-range rating; in both
	// cases the session state is unchanged.
	RateCurrent(ctx context.Context, quality int, now time.Time) (models.ReviewCard, error)

	// Summary reports what the session has done so far. It can be called
	// mid-session or after the last card.
	Summary() models.SessionSummary
}

// SyncFlushService drains the client sync queue. One flush cycle walks the
// item types in their fixed order and, within a type, the items in
// insertion order. Items are independent: a failed delivery bumps that
// item's retry counter and the cycle moves on.
type SyncFlushService interface {
	// Flush runs one full flush cycle for the user. The returned error
	// reflects infrastructure failures (local storage unavailable), not
	// per-item delivery failures, which are accounted on the items
	// themselves.
	Flush(ctx context.Context, userID int64) error
}

// ClientSyncJob periodically flushes the sync queue in the background.
type ClientSyncJob interface {
	// Start launches the background flush loop for the given user. The
	// loop runs one cycle every interval and exits when ctx is cancelled
	// or Stop is called. Calling Start again restarts the loop.
	Start(ctx context.Context, userID int64, interval time.Duration)

	// Trigger requests an immediate flush cycle outside the ticker
	// schedule, typically when connectivity has just come back. It never
	// blocks; triggers arriving while a cycle is already pending are
	// coalesced.
	Trigger()

	// Stop cancels the background loop and waits for it to exit. Safe to
	// call when the job is not running.
	Stop()
}
