package http

import (
	"net/http"
	"time"

	"github.com/ansafin/learnsync/internal/logger"
)

// withLogging emits one access-log entry per sync request with method, URI,
// status, duration, and response size. It wraps the writer to capture the
// status the handler actually sent, since the dedup path answers 200 and the
// retry path 503 on the same route.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
