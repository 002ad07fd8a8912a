// Package utils holds small helpers shared by the client and server halves:
// the authenticated-user context key, JSON response writing, identifier
// generation, and JWT handling for the sync bearer tokens.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so values set here cannot
// collide with string-based keys from other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated learner's ID in a request context.
// The auth middleware writes it after verifying the bearer token; handlers
// read it back through [GetUserIDFromContext].
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the learner ID placed in the context by the
// auth middleware. ok is false when the value is missing or not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
