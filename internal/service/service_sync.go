package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ansafin/learnsync/internal/logger"
	"github.com/ansafin/learnsync/internal/store"
	"github.com/ansafin/learnsync/internal/validators"
	"github.com/ansafin/learnsync/models"
)

// syncIngestService is the concrete implementation of SyncIngestService.
// It validates incoming payloads and delegates persistence to the ingest
// repositories, translating the stores' already-applied sentinels into
// the duplicate flag the handlers report back to clients.
type syncIngestService struct {
	attempts  store.AttemptIngestRepository
	progress  store.ProgressIngestRepository
	reviews   store.ReviewIngestRepository
	validator validators.Validator
	logger    *logger.Logger
}

// NewSyncIngestService constructs a SyncIngestService on top of the
// server storages.
func NewSyncIngestService(storages *store.Storages, logger *logger.Logger) SyncIngestService {
	return &syncIngestService{
		attempts:  storages.Attempts,
		progress:  storages.Progress,
		reviews:   storages.Reviews,
		validator: validators.NewSyncPayloadValidator(),
		logger:    logger,
	}
}

// ApplyQuizAttempt implements SyncIngestService.
func (s *syncIngestService) ApplyQuizAttempt(ctx context.Context, userID int64, req models.QuizSyncRequest) (bool, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("attempt_id", req.AttemptID).Msg("invalid quiz attempt payload")
		return false, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.attempts.InsertAttempt(ctx, userID, req); err != nil {
		if errors.Is(err, store.ErrAttemptAlreadyExists) {
			log.Info().Str("attempt_id", req.AttemptID).Msg("quiz attempt redelivered, already applied")
			return true, nil
		}
		return false, fmt.Errorf("insert quiz attempt: %w", err)
	}

	return false, nil
}

// ApplyProgress implements SyncIngestService.
func (s *syncIngestService) ApplyProgress(ctx context.Context, userID int64, req models.ProgressSyncRequest) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("chapter_id", req.ChapterID).Msg("invalid progress payload")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.progress.UpsertProgress(ctx, userID, req); err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}

	return nil
}

// ApplyReviewResult implements SyncIngestService.
func (s *syncIngestService) ApplyReviewResult(ctx context.Context, userID int64, req models.ReviewSyncRequest) (bool, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("question_id", req.QuestionID).Msg("invalid review result payload")
		return false, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.reviews.InsertReviewResult(ctx, userID, req); err != nil {
		if errors.Is(err, store.ErrReviewAlreadyApplied) {
			log.Info().Str("question_id", req.QuestionID).Msg("review result redelivered, already applied")
			return true, nil
		}
		return false, fmt.Errorf("insert review result: %w", err)
	}

	return false, nil
}
