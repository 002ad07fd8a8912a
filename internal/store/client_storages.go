package store

import (
	"context"
	"fmt"

	"github.com/ansafin/learnsync/internal/config"
	"github.com/ansafin/learnsync/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer. All four logical
// stores live in one SQLite file, so cross-store operations can share a
// transaction via [DB.RunInTransaction].
type ClientStorages struct {
	// DB is the underlying connection; services use it to run
	// multi-repository transactions.
	DB *DB

	// ReviewCards is the scheduling-state store.
	ReviewCards ReviewCardRepository

	// SyncQueue is the ordered pending-mutation store.
	SyncQueue SyncQueueRepository

	// QuizAttempts is the local quiz attempt read model.
	QuizAttempts QuizAttemptRepository

	// Progress is the local chapter progress read model.
	Progress ProgressRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories for all four logical stores.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		DB:           db,
		ReviewCards:  NewReviewCardRepository(db, logger),
		SyncQueue:    NewSyncQueueRepository(db, logger),
		QuizAttempts: NewQuizAttemptRepository(db, logger),
		Progress:     NewProgressRepository(db, logger),
	}, nil
}
