package service

import (
	"context"
	"sync"
	"time"

	"github.com/ansafin/learnsync/internal/logger"
	"github.com/ansafin/learnsync/internal/store"
	"github.com/ansafin/learnsync/models"
)

// Hand-rolled spies shared by the client service tests. Each spy records
// the calls it receives and replays scripted results, which keeps the
// tests free of mock-framework plumbing.

// ── server adapter spy ───────────────────────────────────────────────────────

// spyServerAdapter replays per-endpoint result queues: each call consumes
// the next scripted error, and nil results beyond the script mean
// success. Calls records the delivery order across all endpoints.
type spyServerAdapter struct {
	quizResults     []error
	progressResults []error
	reviewResults   []error

	Calls         []string
	QuizBodies    []models.QuizSyncRequest
	ProgressBody  []models.ProgressSyncRequest
	ReviewBodies  []models.ReviewSyncRequest
	token         string
}

func (s *spyServerAdapter) SetToken(token string) { s.token = token }
func (s *spyServerAdapter) Token() string         { return s.token }

func (s *spyServerAdapter) SubmitQuizAttempt(_ context.Context, req models.QuizSyncRequest) error {
	s.Calls = append(s.Calls, "quiz:"+req.AttemptID)
	s.QuizBodies = append(s.QuizBodies, req)
	return popResult(&s.quizResults)
}

func (s *spyServerAdapter) SubmitProgress(_ context.Context, req models.ProgressSyncRequest) error {
	s.Calls = append(s.Calls, "progress:"+req.ChapterID)
	s.ProgressBody = append(s.ProgressBody, req)
	return popResult(&s.progressResults)
}

func (s *spyServerAdapter) SubmitReviewResult(_ context.Context, req models.ReviewSyncRequest) error {
	s.Calls = append(s.Calls, "review:"+req.QuestionID)
	s.ReviewBodies = append(s.ReviewBodies, req)
	return popResult(&s.reviewResults)
}

func popResult(results *[]error) error {
	if len(*results) == 0 {
		return nil
	}
	err := (*results)[0]
	*results = (*results)[1:]
	return err
}

// ── sync queue spy ───────────────────────────────────────────────────────────

// spyQueueRepo keeps queue items in memory and mutates them the way the
// real repository would, so multi-cycle retry scenarios behave correctly.
type spyQueueRepo struct {
	items []models.SyncQueueItem

	Enqueued   []models.SyncQueueItem
	Deleted    []string
	Increments []string

	enqueueErr error
	listErr    error
}

func (s *spyQueueRepo) Enqueue(_ context.Context, item models.SyncQueueItem) error {
	if s.enqueueErr != nil {
		return s.enqueueErr
	}
	s.items = append(s.items, item)
	s.Enqueued = append(s.Enqueued, item)
	return nil
}

func (s *spyQueueRepo) ListPending(_ context.Context, userID int64, itemType models.SyncItemType) ([]models.SyncQueueItem, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []models.SyncQueueItem
	for _, item := range s.items {
		if item.UserID == userID && item.Type == itemType {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *spyQueueRepo) IncrementRetry(_ context.Context, id string) error {
	s.Increments = append(s.Increments, id)
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].RetryCount++
			return nil
		}
	}
	return store.ErrQueueItemNotFound
}

func (s *spyQueueRepo) Delete(_ context.Context, id string) error {
	s.Deleted = append(s.Deleted, id)
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *spyQueueRepo) pending(userID int64) int {
	n := 0
	for _, item := range s.items {
		if item.UserID == userID {
			n++
		}
	}
	return n
}

// ── read model spies ─────────────────────────────────────────────────────────

type spyAttemptRepo struct {
	Saved   []models.QuizAttempt
	Synced  []string
	saveErr error
	syncErr error
}

func (s *spyAttemptRepo) SaveQuizAttempt(_ context.Context, attempt models.QuizAttempt) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.Saved = append(s.Saved, attempt)
	return nil
}

func (s *spyAttemptRepo) GetQuizAttempt(_ context.Context, attemptID string) (models.QuizAttempt, error) {
	for _, a := range s.Saved {
		if a.AttemptID == attemptID {
			return a, nil
		}
	}
	return models.QuizAttempt{}, store.ErrAttemptNotFound
}

func (s *spyAttemptRepo) MarkSynced(_ context.Context, attemptID string) error {
	if s.syncErr != nil {
		return s.syncErr
	}
	s.Synced = append(s.Synced, attemptID)
	return nil
}

type spyProgressRepo struct {
	Saved   []models.ProgressSnapshot
	Synced  []string
	saveErr error
	syncErr error
}

func (s *spyProgressRepo) SaveProgress(_ context.Context, snapshot models.ProgressSnapshot) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.Saved = append(s.Saved, snapshot)
	return nil
}

func (s *spyProgressRepo) GetProgress(_ context.Context, userID int64, chapterID string) (models.ProgressSnapshot, error) {
	for _, p := range s.Saved {
		if p.UserID == userID && p.ChapterID == chapterID {
			return p, nil
		}
	}
	return models.ProgressSnapshot{}, store.ErrProgressNotFound
}

func (s *spyProgressRepo) MarkSynced(_ context.Context, userID int64, chapterID string) error {
	if s.syncErr != nil {
		return s.syncErr
	}
	s.Synced = append(s.Synced, chapterID)
	return nil
}

type spyCardRepo struct {
	due     []models.ReviewCard
	Saved   []models.ReviewCard
	saveErr error
	listErr error
}

func (s *spyCardRepo) SaveReviewCard(_ context.Context, card models.ReviewCard) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.Saved = append(s.Saved, card)
	return nil
}

func (s *spyCardRepo) GetReviewCard(_ context.Context, userID int64, questionID string) (models.ReviewCard, error) {
	for _, c := range s.Saved {
		if c.UserID == userID && c.QuestionID == questionID {
			return c, nil
		}
	}
	return models.ReviewCard{}, store.ErrCardNotFound
}

func (s *spyCardRepo) ListDueReviewCards(_ context.Context, _ int64, _ time.Time) ([]models.ReviewCard, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.due, nil
}

// ── transactor fake ──────────────────────────────────────────────────────────

// fakeTransactor runs the function directly, or refuses it when err is
// set, emulating a transaction that cannot commit.
type fakeTransactor struct {
	err   error
	Calls int
}

func (f *fakeTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.Calls++
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

// ── flush service spy ────────────────────────────────────────────────────────

// spyFlushService counts flush cycles for the sync job tests and signals
// each one on Ran.
type spyFlushService struct {
	mu    sync.Mutex
	count int
	Ran   chan struct{}
}

func newSpyFlushService() *spyFlushService {
	return &spyFlushService{Ran: make(chan struct{}, 16)}
}

func (s *spyFlushService) Flush(_ context.Context, _ int64) error {
	s.mu.Lock()
	s.count++
	s.mu.Unlock()

	select {
	case s.Ran <- struct{}{}:
	default:
	}
	return nil
}

func (s *spyFlushService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// ── common wiring ────────────────────────────────────────────────────────────

func testClientStorages(queue *spyQueueRepo, attempts *spyAttemptRepo, progress *spyProgressRepo, cards *spyCardRepo) *store.ClientStorages {
	return &store.ClientStorages{
		ReviewCards:  cards,
		SyncQueue:    queue,
		QuizAttempts: attempts,
		Progress:     progress,
	}
}

func testLogger() *logger.Logger {
	return logger.Nop()
}
