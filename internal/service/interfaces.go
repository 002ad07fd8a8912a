package service

import (
	"context"

	"github.com/ansafin/learnsync/models"
)

// AuthService verifies bearer tokens presented by sync clients. Tokens
// are issued externally; the server only checks signature, issuer and
// expiry, and extracts the user identity.
type AuthService interface {
	// ParseToken validates the token string and returns the user ID from
	// its subject claim. Returns [ErrTokenIsExpired] for an expired
	// token.
	ParseToken(ctx context.Context, tokenString string) (int64, error)
}

// SyncIngestService applies payloads delivered by client sync workers.
// Every operation is idempotent with respect to the payload's natural
// key, because clients redeliver on any unconfirmed attempt.
type SyncIngestService interface {
	// ApplyQuizAttempt stores one quiz attempt. duplicate is true when
	// the attempt was already applied by an earlier delivery; that case
	// is a success, not an error.
	ApplyQuizAttempt(ctx context.Context, userID int64, req models.QuizSyncRequest) (duplicate bool, err error)

	// ApplyProgress upserts one chapter progress row. Repeated
	// deliveries converge on the same state.
	ApplyProgress(ctx context.Context, userID int64, req models.ProgressSyncRequest) error

	// ApplyReviewResult stores one spaced-repetition rating event.
	// duplicate is true when the event was already applied.
	ApplyReviewResult(ctx context.Context, userID int64, req models.ReviewSyncRequest) (duplicate bool, err error)
}
