package http

import (
	"github.com/ansafin/learnsync/internal/logger"
	"github.com/ansafin/learnsync/internal/service"
	"github.com/ansafin/learnsync/internal/store"
)

type Handler struct {
	services *service.Services

	// classifier decides whether a storage failure is worth the client
	// retrying, which picks between 503 and 500 responses.
	classifier store.ErrorClassificator

	// version is reported on the unauthenticated version endpoint.
	version string

	logger *logger.Logger
}

func NewHandler(services *service.Services, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		classifier: store.NewPostgresErrorClassifier(),
		version:    version,
		logger:     logger,
	}
}
