// Package validators checks incoming sync payloads before they reach the
// ingest services: identity keys present, quality and read percent within
// range, timestamps set.
//
// The Validator interface accepts arbitrary values so one implementation can
// cover every payload type it declares support for; passing field names
// restricts the check to those fields. Services receive a Validator by
// injection, keeping the rules out of the transport layer and testable on
// their own.
package validators

import "context"

// Validator validates an input value, optionally scoped to the named
// fields. Unsupported value types are rejected with [ErrUnsupportedType].
type Validator interface {
	Validate(context.Context, any, ...string) error
}
