package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
	})

	// sync endpoints, the targets of the client queue types
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/sync/quiz", h.syncQuizAttempt)
		r.Post("/api/sync/progress", h.syncProgress)
		r.Post("/api/sync/review", h.syncReviewResult)
	})

	return router
}
