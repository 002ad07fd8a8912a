package validators

import (
	"context"

	"github.com/ansafin/learnsync/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping).
const (
	// FieldAttemptID targets the client-generated quiz attempt identifier.
	FieldAttemptID = "attempt_id"

	// FieldQuizID targets the quiz identifier of an attempt.
	FieldQuizID = "quiz_id"

	// FieldElapsedSeconds targets the attempt duration.
	FieldElapsedSeconds = "elapsed_seconds"

	// FieldChapterID targets the chapter identifier of a progress update.
	FieldChapterID = "chapter_id"

	// FieldReadPercent targets the read percentage of a progress update.
	FieldReadPercent = "read_percent"

	// FieldQuestionID targets the question identifier of a review result.
	FieldQuestionID = "question_id"

	// FieldQuality targets the recall quality rating of a review result.
	FieldQuality = "quality"

	// FieldReviewedAt targets the client-side timestamp of a review result.
	FieldReviewedAt = "reviewed_at"

	// FieldEaseFactor targets the post-rating ease factor of a review result.
	FieldEaseFactor = "ease_factor"
)

// SyncPayloadValidator implements the Validator interface for the three
// request bodies the sync endpoints accept: QuizSyncRequest,
// ProgressSyncRequest and ReviewSyncRequest.
//
// It supports both value and pointer receivers for every request type
// and allows optional field-level scoping via variadic field name arguments.
type SyncPayloadValidator struct {
}

// NewSyncPayloadValidator constructs a new SyncPayloadValidator
// and returns it as the Validator interface.
func NewSyncPayloadValidator() Validator {
	return &SyncPayloadValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported request are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known request.
// Optional fields restrict validation to the named subset; when omitted,
// every field of the request is validated.
func (v *SyncPayloadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.QuizSyncRequest:
		return v.validateQuizSync(ctx, value, fields...)
	case *models.QuizSyncRequest:
		return v.validateQuizSync(ctx, *value, fields...)

	case models.ProgressSyncRequest:
		return v.validateProgressSync(ctx, value, fields...)
	case *models.ProgressSyncRequest:
		return v.validateProgressSync(ctx, *value, fields...)

	case models.ReviewSyncRequest:
		return v.validateReviewSync(ctx, value, fields...)
	case *models.ReviewSyncRequest:
		return v.validateReviewSync(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SyncPayloadValidator) validateQuizSync(_ context.Context, req models.QuizSyncRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAttemptID, FieldQuizID, FieldElapsedSeconds}
	}

	for _, f := range fields {
		switch f {
		case FieldAttemptID:
			if req.AttemptID == "" {
				return ErrEmptyAttemptID
			}
		case FieldQuizID:
			if req.QuizID == "" {
				return ErrEmptyQuizID
			}
		case FieldElapsedSeconds:
			if req.ElapsedSeconds < 0 {
				return ErrInvalidElapsedSeconds
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncPayloadValidator) validateProgressSync(_ context.Context, req models.ProgressSyncRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldChapterID, FieldReadPercent}
	}

	for _, f := range fields {
		switch f {
		case FieldChapterID:
			if req.ChapterID == "" {
				return ErrEmptyChapterID
			}
		case FieldReadPercent:
			if req.ReadPercent < 0 || req.ReadPercent > 100 {
				return ErrReadPercentOutOfRange
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncPayloadValidator) validateReviewSync(_ context.Context, req models.ReviewSyncRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuestionID, FieldQuality, FieldReviewedAt, FieldEaseFactor}
	}

	for _, f := range fields {
		switch f {
		case FieldQuestionID:
			if req.QuestionID == "" {
				return ErrEmptyQuestionID
			}
		case FieldQuality:
			if req.Quality < 0 || req.Quality > 5 {
				return ErrQualityOutOfRange
			}
		case FieldReviewedAt:
			if req.ReviewedAt.IsZero() {
				return ErrZeroReviewedAt
			}
		case FieldEaseFactor:
			if req.EaseFactor < models.MinEaseFactor {
				return ErrInvalidEaseFactor
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
