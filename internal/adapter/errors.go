package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the server rejects the bearer
	// token. The queue item stays pending; retrying with the same token
	// will keep failing until a fresh token is configured.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrRejected is returned when the server answers with a non-2xx
	// status that is not 401. For queue retry accounting it is treated
	// like any other delivery failure.
	ErrRejected = errors.New("delivery rejected by server")
)
