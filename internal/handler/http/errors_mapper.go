package http

import (
	"errors"
	"net/http"

	"github.com/ansafin/learnsync/internal/service"
	"github.com/ansafin/learnsync/internal/store"
)

// statusFromError maps a service-layer error to an HTTP status code.
//
// The mapping matters to the client queue: a 503 tells the sync worker the
// failure is transient and the item should keep its place in the queue,
// while a 4xx burns one of the item's retries on a payload that will never
// get better.
func (h *Handler) statusFromError(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		return http.StatusBadRequest

	case h.classifier.Classify(err) == store.Retryable:
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}
