package models

import "time"

// QuizSyncRequest is the body of POST /api/sync/quiz. AttemptID is the
// idempotency key: the server must treat a repeated delivery of the same
// attempt as already applied, not as a second submission.
type QuizSyncRequest struct {
	// AttemptID is the client-generated attempt identifier.
	AttemptID string `json:"attempt_id"`

	// QuizID identifies the quiz that was taken.
	QuizID string `json:"quiz_id"`

	// Answers holds the learner's answers keyed by question id.
	Answers map[string]string `json:"answers"`

	// Mode is the quiz mode the attempt ran in.
	Mode string `json:"mode"`

	// ElapsedSeconds is the attempt duration.
	ElapsedSeconds int `json:"elapsed_seconds"`
}

// ReviewSyncRequest is the body of POST /api/sync/review. The pair
// (question id, reviewed at) identifies one rating event, so a repeated
// delivery of the same event is applied at most once.
type ReviewSyncRequest struct {
	// QuestionID identifies the reviewed card.
	QuestionID string `json:"question_id"`

	// Quality is the rating the learner gave, in [0, 5].
	Quality int `json:"quality"`

	// EaseFactor is the card's ease factor after the rating.
	EaseFactor float64 `json:"ease_factor"`

	// IntervalDays is the card's review interval after the rating.
	IntervalDays int `json:"interval_days"`

	// Repetitions is the card's consecutive-success count after the rating.
	Repetitions int `json:"repetitions"`

	// ReviewedAt is when the rating happened on the client.
	ReviewedAt time.Time `json:"reviewed_at"`
}

// ProgressSyncRequest is the body of POST /api/sync/progress. The server
// upserts by (user, chapter), so repeated deliveries converge on the same
// row.
type ProgressSyncRequest struct {
	// ChapterID identifies the chapter the progress belongs to.
	ChapterID string `json:"chapter_id"`

	// ReadPercent is how far the learner has read, in [0, 100].
	ReadPercent float64 `json:"read_percent"`

	// Completed marks the chapter as finished.
	Completed bool `json:"completed"`
}
