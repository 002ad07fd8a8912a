package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ansafin/learnsync/internal/adapter"
	"github.com/ansafin/learnsync/internal/logger"
	"github.com/ansafin/learnsync/internal/scheduler"
	"github.com/ansafin/learnsync/internal/store"
	"github.com/ansafin/learnsync/internal/utils"
	"github.com/ansafin/learnsync/models"
)

// reviewSessionService is the concrete implementation of
// ReviewSessionService. It snapshots the due queue at StartSession and
// walks it card by card; each rating is committed before the next card is
// shown, so an interruption can only ever lose the rating in flight.
type reviewSessionService struct {
	storages *store.ClientStorages
	adapter  adapter.ServerAdapter
	ids      *utils.UUIDGenerator
	logger   *logger.Logger

	userID    int64
	cards     []models.ReviewCard
	position  int
	startedAt time.Time
	lastRated time.Time
	qualities []int
}

// NewReviewSessionService constructs a ReviewSessionService. The returned
// service holds per-session state and must not be shared between
// concurrent interactive contexts.
func NewReviewSessionService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ReviewSessionService {
	return &reviewSessionService{
		storages: storages,
		adapter:  serverAdapter,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// StartSession implements ReviewSessionService. Cards that become due
// after this moment are not pulled into the running session; they wait
// for the next one.
func (s *reviewSessionService) StartSession(ctx context.Context, userID int64, now time.Time) (int, error) {
	due, err := s.storages.ReviewCards.ListDueReviewCards(ctx, userID, now)
	if err != nil {
		return 0, fmt.Errorf("list due cards: %w", err)
	}

	s.userID = userID
	s.cards = due
	s.position = 0
	s.startedAt = now
	s.lastRated = now
	s.qualities = s.qualities[:0]

	return len(due), nil
}

// Current implements ReviewSessionService.
func (s *reviewSessionService) Current() (models.ReviewCard, bool) {
	if s.position >= len(s.cards) {
		return models.ReviewCard{}, false
	}
	return s.cards[s.position], true
}

// RateCurrent implements ReviewSessionService.
//
// The rescheduled card is persisted first; only then is the rating synced
// to the server, falling back to the queue when delivery fails. The
// session advances even when the sync ends up queued: delivery state
// never blocks the learner.
func (s *reviewSessionService) RateCurrent(ctx context.Context, quality int, now time.Time) (models.ReviewCard, error) {
	log := logger.FromContext(ctx)

	card, ok := s.Current()
	if !ok {
		return models.ReviewCard{}, ErrNoActiveSession
	}

	rated, err := scheduler.Rate(card, quality, now)
	if err != nil {
		return models.ReviewCard{}, err
	}

	if err := s.storages.ReviewCards.SaveReviewCard(ctx, rated); err != nil {
		return models.ReviewCard{}, fmt.Errorf("save rated card: %w", err)
	}

	req := models.ReviewSyncRequest{
		QuestionID:   rated.QuestionID,
		Quality:      quality,
		EaseFactor:   rated.EaseFactor,
		IntervalDays: rated.IntervalDays,
		Repetitions:  rated.Repetitions,
		ReviewedAt:   now,
	}

	if err := s.adapter.SubmitReviewResult(ctx, req); err != nil {
		log.Warn().
			Err(err).
			Str("question_id", rated.QuestionID).
			Msg("review result not confirmed by server, queueing for sync")

		if err := enqueueSyncItem(ctx, s.storages.SyncQueue, s.ids, s.userID, models.SyncItemReviewResult, models.SyncActionCreate, req, now); err != nil {
			return models.ReviewCard{}, err
		}
	}

	s.position++
	s.lastRated = now
	s.qualities = append(s.qualities, quality)

	return rated, nil
}

// Summary implements ReviewSessionService.
func (s *reviewSessionService) Summary() models.SessionSummary {
	summary := models.SessionSummary{Rated: len(s.qualities)}

	if len(s.qualities) == 0 {
		return summary
	}

	total := 0
	for _, q := range s.qualities {
		total += q
	}
	summary.AverageQuality = float64(total) / float64(len(s.qualities))
	summary.Elapsed = s.lastRated.Sub(s.startedAt)

	return summary
}
