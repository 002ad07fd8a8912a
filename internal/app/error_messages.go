// Package app contains shared application-layer constants used across the
// sync server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNoUserIDProvided is returned when a handler requires a user ID (e.g.
	// extracted from the JWT claim) but none is present in the request
	// context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgQuizAttemptNotApplied is returned when the quiz sync handler
	// encounters an error while recording a quiz attempt.
	MsgQuizAttemptNotApplied = "error applying quiz attempt"

	// MsgProgressNotApplied is returned when the progress sync handler
	// encounters an error while recording a chapter progress update.
	MsgProgressNotApplied = "error applying progress update"

	// MsgReviewResultNotApplied is returned when the review sync handler
	// encounters an error while recording a spaced-repetition review.
	MsgReviewResultNotApplied = "error applying review result"
)
