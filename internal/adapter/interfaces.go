// Package adapter provides the transport layer for delivering queued
// mutations to the learning-management server.
//
// The primary abstraction is [ServerAdapter], which decouples the sync
// worker from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/ansafin/learnsync/models"
)

// ServerAdapter defines transport-agnostic delivery of sync payloads to
// the server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
//
// For retry purposes every failure looks the same to the caller: a
// timeout, a refused connection, and a 5xx all mean "not delivered".
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests. Tokens come from an external issuer; the
	// adapter treats them as opaque strings.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// SubmitQuizAttempt delivers one queued quiz submission. A nil
	// return means the server acknowledged it (including the case where
	// it recognised the attempt as a duplicate of an already-applied
	// one).
	SubmitQuizAttempt(ctx context.Context, req models.QuizSyncRequest) error

	// SubmitProgress delivers one queued chapter progress update.
	SubmitProgress(ctx context.Context, req models.ProgressSyncRequest) error

	// SubmitReviewResult delivers one queued spaced-repetition rating.
	SubmitReviewResult(ctx context.Context, req models.ReviewSyncRequest) error
}
