package validators

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansafin/learnsync/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validQuizSync() models.QuizSyncRequest {
	return models.QuizSyncRequest{
		AttemptID:      "attempt-1",
		QuizID:         "quiz-1",
		Answers:        map[string]string{"q1": "a"},
		Mode:           "practice",
		ElapsedSeconds: 42,
	}
}

func validProgressSync() models.ProgressSyncRequest {
	return models.ProgressSyncRequest{
		ChapterID:   "chapter-1",
		ReadPercent: 55.5,
	}
}

func validReviewSync() models.ReviewSyncRequest {
	return models.ReviewSyncRequest{
		QuestionID:   "question-1",
		Quality:      4,
		EaseFactor:   2.5,
		IntervalDays: 6,
		Repetitions:  2,
		ReviewedAt:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

// ---------------------------------------------------------------------------
// TestNewSyncPayloadValidator
// ---------------------------------------------------------------------------

func TestNewSyncPayloadValidator(t *testing.T) {
	v := NewSyncPayloadValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewSyncPayloadValidator()
	ctx := context.Background()

	quiz := validQuizSync()
	progress := validProgressSync()
	review := validReviewSync()

	assert.NoError(t, v.Validate(ctx, quiz))
	assert.NoError(t, v.Validate(ctx, &quiz))
	assert.NoError(t, v.Validate(ctx, progress))
	assert.NoError(t, v.Validate(ctx, &progress))
	assert.NoError(t, v.Validate(ctx, review))
	assert.NoError(t, v.Validate(ctx, &review))

	assert.ErrorIs(t, v.Validate(ctx, "not a payload"), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// TestValidate_QuizSync
// ---------------------------------------------------------------------------

func TestValidate_QuizSync(t *testing.T) {
	v := NewSyncPayloadValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.QuizSyncRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.QuizSyncRequest) {}},
		{
			name:    "empty attempt id",
			mutate:  func(r *models.QuizSyncRequest) { r.AttemptID = "" },
			wantErr: ErrEmptyAttemptID,
		},
		{
			name:    "empty quiz id",
			mutate:  func(r *models.QuizSyncRequest) { r.QuizID = "" },
			wantErr: ErrEmptyQuizID,
		},
		{
			name:    "negative elapsed seconds",
			mutate:  func(r *models.QuizSyncRequest) { r.ElapsedSeconds = -1 },
			wantErr: ErrInvalidElapsedSeconds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validQuizSync()
			tt.mutate(&req)

			err := v.Validate(ctx, req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_ProgressSync
// ---------------------------------------------------------------------------

func TestValidate_ProgressSync(t *testing.T) {
	v := NewSyncPayloadValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.ProgressSyncRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.ProgressSyncRequest) {}},
		{name: "zero percent is valid", mutate: func(r *models.ProgressSyncRequest) { r.ReadPercent = 0 }},
		{name: "full percent is valid", mutate: func(r *models.ProgressSyncRequest) { r.ReadPercent = 100 }},
		{
			name:    "empty chapter id",
			mutate:  func(r *models.ProgressSyncRequest) { r.ChapterID = "" },
			wantErr: ErrEmptyChapterID,
		},
		{
			name:    "negative percent",
			mutate:  func(r *models.ProgressSyncRequest) { r.ReadPercent = -0.1 },
			wantErr: ErrReadPercentOutOfRange,
		},
		{
			name:    "percent above 100",
			mutate:  func(r *models.ProgressSyncRequest) { r.ReadPercent = 100.5 },
			wantErr: ErrReadPercentOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validProgressSync()
			tt.mutate(&req)

			err := v.Validate(ctx, req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_ReviewSync
// ---------------------------------------------------------------------------

func TestValidate_ReviewSync(t *testing.T) {
	v := NewSyncPayloadValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.ReviewSyncRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.ReviewSyncRequest) {}},
		{name: "quality zero is valid", mutate: func(r *models.ReviewSyncRequest) { r.Quality = 0 }},
		{name: "quality five is valid", mutate: func(r *models.ReviewSyncRequest) { r.Quality = 5 }},
		{
			name:    "empty question id",
			mutate:  func(r *models.ReviewSyncRequest) { r.QuestionID = "" },
			wantErr: ErrEmptyQuestionID,
		},
		{
			name:    "quality below range",
			mutate:  func(r *models.ReviewSyncRequest) { r.Quality = -1 },
			wantErr: ErrQualityOutOfRange,
		},
		{
			name:    "quality above range",
			mutate:  func(r *models.ReviewSyncRequest) { r.Quality = 6 },
			wantErr: ErrQualityOutOfRange,
		},
		{
			name:    "zero reviewed at",
			mutate:  func(r *models.ReviewSyncRequest) { r.ReviewedAt = time.Time{} },
			wantErr: ErrZeroReviewedAt,
		},
		{
			name:    "ease factor below floor",
			mutate:  func(r *models.ReviewSyncRequest) { r.EaseFactor = 1.0 },
			wantErr: ErrInvalidEaseFactor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validReviewSync()
			tt.mutate(&req)

			err := v.Validate(ctx, req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_FieldScoping
// ---------------------------------------------------------------------------

func TestValidate_FieldScoping(t *testing.T) {
	v := NewSyncPayloadValidator()
	ctx := context.Background()

	// ── scoped validation skips fields outside the requested set ──
	req := validQuizSync()
	req.QuizID = ""
	assert.NoError(t, v.Validate(ctx, req, FieldAttemptID))
	assert.ErrorIs(t, v.Validate(ctx, req, FieldQuizID), ErrEmptyQuizID)

	// ── unknown field names are rejected ──
	assert.ErrorIs(t, v.Validate(ctx, validQuizSync(), "no_such_field"), ErrUnknownField)
}
