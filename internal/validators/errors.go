package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyAttemptID        = errors.New("attempt id is required")
	ErrEmptyQuizID           = errors.New("quiz id is required")
	ErrEmptyChapterID        = errors.New("chapter id is required")
	ErrEmptyQuestionID       = errors.New("question id is required")
	ErrReadPercentOutOfRange = errors.New("read percent must be within [0, 100]")
	ErrQualityOutOfRange     = errors.New("quality must be within [0, 5]")
	ErrInvalidElapsedSeconds = errors.New("elapsed seconds cannot be negative")
	ErrZeroReviewedAt        = errors.New("reviewed at timestamp is required")
	ErrInvalidEaseFactor     = errors.New("ease factor is below the scheduling floor")
)
