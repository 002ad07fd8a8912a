package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansafin/learnsync/internal/utils"
	"github.com/ansafin/learnsync/models"
)

func newTestQueueSvc(queue *spyQueueRepo, attempts *spyAttemptRepo, progress *spyProgressRepo, adp *spyServerAdapter) QueueService {
	return &queueService{
		storages: testClientStorages(queue, attempts, progress, &spyCardRepo{}),
		adapter:  adp,
		ids:      utils.NewUUIDGenerator(),
		logger:   testLogger(),
	}
}

func sampleAttempt() models.QuizAttempt {
	return models.QuizAttempt{
		UserID:         1,
		QuizID:         "quiz-7",
		Answers:        map[string]string{"q1": "a", "q2": "c"},
		Mode:           "exam",
		ElapsedSeconds: 300,
		Score:          85,
	}
}

func sampleSnapshot() models.ProgressSnapshot {
	return models.ProgressSnapshot{
		UserID:      1,
		ChapterID:   "chapter-3",
		ReadPercent: 64.5,
	}
}

// ── RecordQuizAttempt ────────────────────────────────────────────────────────

func TestRecordQuizAttempt_ConfirmedOnline(t *testing.T) {
	queue := &spyQueueRepo{}
	attempts := &spyAttemptRepo{}
	adp := &spyServerAdapter{}
	svc := newTestQueueSvc(queue, attempts, &spyProgressRepo{}, adp)

	require.NoError(t, svc.RecordQuizAttempt(context.Background(), sampleAttempt()))

	// saved locally as pending before delivery, marked synced after
	require.Len(t, attempts.Saved, 1)
	assert.Equal(t, models.SyncPending, attempts.Saved[0].SyncStatus)
	assert.NotEmpty(t, attempts.Saved[0].AttemptID, "missing attempt id must be generated")
	assert.Equal(t, []string{attempts.Saved[0].AttemptID}, attempts.Synced)

	require.Len(t, adp.QuizBodies, 1)
	assert.Equal(t, attempts.Saved[0].AttemptID, adp.QuizBodies[0].AttemptID)

	assert.Zero(t, queue.pending(1), "a confirmed mutation must not be queued")
}

func TestRecordQuizAttempt_QueuedWhenOffline(t *testing.T) {
	queue := &spyQueueRepo{}
	attempts := &spyAttemptRepo{}
	adp := &spyServerAdapter{quizResults: []error{errServerDown}}
	svc := newTestQueueSvc(queue, attempts, &spyProgressRepo{}, adp)

	attempt := sampleAttempt()
	attempt.AttemptID = "attempt-offline"

	// the failed delivery must not fail the recording
	require.NoError(t, svc.RecordQuizAttempt(context.Background(), attempt))

	require.Len(t, attempts.Saved, 1)
	assert.Empty(t, attempts.Synced)

	require.Len(t, queue.Enqueued, 1)
	item := queue.Enqueued[0]
	assert.Equal(t, models.SyncItemQuizSubmission, item.Type)
	assert.Equal(t, models.SyncActionCreate, item.Action)
	assert.Equal(t, int64(1), item.UserID)
	assert.Zero(t, item.RetryCount)

	// the payload carries the idempotency key for server-side dedup
	var req models.QuizSyncRequest
	require.NoError(t, json.Unmarshal(item.Payload, &req))
	assert.Equal(t, "attempt-offline", req.AttemptID)
	assert.Equal(t, "quiz-7", req.QuizID)
}

func TestRecordQuizAttempt_KeepsProvidedIdentity(t *testing.T) {
	attempts := &spyAttemptRepo{}
	svc := newTestQueueSvc(&spyQueueRepo{}, attempts, &spyProgressRepo{}, &spyServerAdapter{})

	attempt := sampleAttempt()
	attempt.AttemptID = "attempt-fixed"
	attempt.CreatedAt = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, svc.RecordQuizAttempt(context.Background(), attempt))

	require.Len(t, attempts.Saved, 1)
	assert.Equal(t, "attempt-fixed", attempts.Saved[0].AttemptID)
	assert.Equal(t, attempt.CreatedAt, attempts.Saved[0].CreatedAt)
}

func TestRecordQuizAttempt_InvalidInput(t *testing.T) {
	svc := newTestQueueSvc(&spyQueueRepo{}, &spyAttemptRepo{}, &spyProgressRepo{}, &spyServerAdapter{})

	err := svc.RecordQuizAttempt(context.Background(), models.QuizAttempt{UserID: 1})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	err = svc.RecordQuizAttempt(context.Background(), models.QuizAttempt{QuizID: "quiz-7"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── RecordProgress ───────────────────────────────────────────────────────────

func TestRecordProgress_ConfirmedOnline(t *testing.T) {
	queue := &spyQueueRepo{}
	progress := &spyProgressRepo{}
	adp := &spyServerAdapter{}
	svc := newTestQueueSvc(queue, &spyAttemptRepo{}, progress, adp)

	require.NoError(t, svc.RecordProgress(context.Background(), sampleSnapshot()))

	require.Len(t, progress.Saved, 1)
	assert.Equal(t, models.SyncPending, progress.Saved[0].SyncStatus)
	assert.Equal(t, []string{"chapter-3"}, progress.Synced)
	assert.Zero(t, queue.pending(1))
}

func TestRecordProgress_QueuedWhenOffline(t *testing.T) {
	queue := &spyQueueRepo{}
	progress := &spyProgressRepo{}
	adp := &spyServerAdapter{progressResults: []error{errServerDown}}
	svc := newTestQueueSvc(queue, &spyAttemptRepo{}, progress, adp)

	require.NoError(t, svc.RecordProgress(context.Background(), sampleSnapshot()))

	assert.Empty(t, progress.Synced)
	require.Len(t, queue.Enqueued, 1)
	assert.Equal(t, models.SyncItemProgress, queue.Enqueued[0].Type)
	assert.Equal(t, models.SyncActionUpdate, queue.Enqueued[0].Action)

	var req models.ProgressSyncRequest
	require.NoError(t, json.Unmarshal(queue.Enqueued[0].Payload, &req))
	assert.Equal(t, "chapter-3", req.ChapterID)
	assert.InDelta(t, 64.5, req.ReadPercent, 0.001)
}

func TestRecordProgress_InvalidInput(t *testing.T) {
	svc := newTestQueueSvc(&spyQueueRepo{}, &spyAttemptRepo{}, &spyProgressRepo{}, &spyServerAdapter{})

	snapshot := sampleSnapshot()
	snapshot.ReadPercent = 101
	assert.ErrorIs(t, svc.RecordProgress(context.Background(), snapshot), ErrInvalidDataProvided)

	snapshot = sampleSnapshot()
	snapshot.ReadPercent = -1
	assert.ErrorIs(t, svc.RecordProgress(context.Background(), snapshot), ErrInvalidDataProvided)

	snapshot = sampleSnapshot()
	snapshot.ChapterID = ""
	assert.ErrorIs(t, svc.RecordProgress(context.Background(), snapshot), ErrInvalidDataProvided)
}
