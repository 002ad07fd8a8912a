package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ansafin/learnsync/internal/logger"
	"github.com/ansafin/learnsync/models"
)

type reviewCardRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewReviewCardRepository(db *DB, logger *logger.Logger) ReviewCardRepository {
	return &reviewCardRepository{
		db:     db,
		logger: logger,
	}
}

func (r *reviewCardRepository) SaveReviewCard(ctx context.Context, card models.ReviewCard) error {
	log := logger.FromContext(ctx)

	_, err := r.db.executor(ctx).ExecContext(ctx, upsertReviewCard,
		card.UserID,
		card.QuestionID,
		card.EaseFactor,
		card.IntervalDays,
		card.Repetitions,
		card.NextReviewAt,
		card.LastReviewedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "reviewCardRepository.SaveReviewCard").
			Int64("user_id", card.UserID).
			Str("question_id", card.QuestionID).
			Msg("failed to execute upsert for review card")
		return fmt.Errorf("failed to save review card (question_id=%s): %w", card.QuestionID, err)
	}

	return nil
}

func (r *reviewCardRepository) GetReviewCard(ctx context.Context, userID int64, questionID string) (models.ReviewCard, error) {
	log := logger.FromContext(ctx)

	row := r.db.executor(ctx).QueryRowContext(ctx, getReviewCard, userID, questionID)

	card, err := scanReviewCard(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ReviewCard{}, ErrCardNotFound
		}
		log.Err(err).
			Str("func", "reviewCardRepository.GetReviewCard").
			Int64("user_id", userID).
			Str("question_id", questionID).
			Msg("failed to scan review card row")
		return models.ReviewCard{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return card, nil
}

func (r *reviewCardRepository) ListDueReviewCards(ctx context.Context, userID int64, now time.Time) ([]models.ReviewCard, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.executor(ctx).QueryContext(ctx, listDueReviewCards, userID, now)
	if err != nil {
		log.Err(err).
			Str("func", "reviewCardRepository.ListDueReviewCards").
			Int64("user_id", userID).
			Msg("failed to execute query for due review cards")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var cards []models.ReviewCard
	for rows.Next() {
		card, scanErr := scanReviewCard(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "reviewCardRepository.ListDueReviewCards").
				Int64("user_id", userID).
				Msg("failed to scan review card rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		cards = append(cards, card)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return cards, nil
}

func scanReviewCard(scan func(dest ...any) error) (models.ReviewCard, error) {
	var card models.ReviewCard
	var lastReviewed sql.NullTime

	if err := scan(
		&card.UserID,
		&card.QuestionID,
		&card.EaseFactor,
		&card.IntervalDays,
		&card.Repetitions,
		&card.NextReviewAt,
		&lastReviewed,
	); err != nil {
		return models.ReviewCard{}, err
	}

	if lastReviewed.Valid {
		t := lastReviewed.Time
		card.LastReviewedAt = &t
	}

	return card, nil
}
