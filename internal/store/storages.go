package store

import (
	"context"
	"fmt"

	"github.com/ansafin/learnsync/internal/config"
	"github.com/ansafin/learnsync/internal/logger"
)

// Storages groups the server-side repositories behind the two sync
// endpoints.
type Storages struct {
	// DB is the underlying PostgreSQL connection.
	DB *DB

	// Attempts ingests quiz submissions.
	Attempts AttemptIngestRepository

	// Progress ingests chapter progress updates.
	Progress ProgressIngestRepository

	// Reviews ingests spaced-repetition rating events.
	Reviews ReviewIngestRepository
}

// NewStorages opens the server database, runs pending migrations, and
// wires the ingest repositories.
func NewStorages(cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		DB:       db,
		Attempts: NewAttemptIngestRepository(db, logger),
		Progress: NewProgressIngestRepository(db, logger),
		Reviews:  NewReviewIngestRepository(db, logger),
	}, nil
}
