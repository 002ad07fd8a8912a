package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request payload fails
	// validation before it reaches storage.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrNoActiveSession is returned by the review session service when
	// a card operation is called before StartSession or after the last
	// card has been rated.
	ErrNoActiveSession = errors.New("no active review session")

	// ErrTokenIsExpired is returned by the server auth service when the
	// presented JWT has passed its expiry.
	ErrTokenIsExpired = errors.New("token is expired")
)
