package models

import "time"

// Default scheduling state for a card that has never been reviewed.
const (
	DefaultEaseFactor = 2.5

	// MinEaseFactor is the floor below which the ease factor never drops,
	// no matter how many failed reviews accumulate.
	MinEaseFactor = 1.3
)

// ReviewCard holds the spaced-repetition scheduling state for one
// (user, question) pair. It is the primary persistence model of the
// review subsystem; only the scheduler mutates its numeric fields.
type ReviewCard struct {
	// UserID is the learner this card belongs to.
	UserID int64 `json:"user_id"`

	// QuestionID identifies the question being scheduled. Together with
	// UserID it forms the card's composite identity.
	QuestionID string `json:"question_id"`

	// EaseFactor controls how fast the review interval grows.
	// Invariant: EaseFactor >= MinEaseFactor.
	EaseFactor float64 `json:"ease_factor"`

	// IntervalDays is the current review interval in whole days.
	IntervalDays int `json:"interval_days"`

	// Repetitions counts consecutive successful reviews since the last
	// failed recall.
	Repetitions int `json:"repetitions"`

	// NextReviewAt is when the card becomes due again. Always derived
	// from the moment of the most recent rating plus IntervalDays.
	NextReviewAt time.Time `json:"next_review_at"`

	// LastReviewedAt is the time of the most recent rating, nil for a
	// card that has never been reviewed.
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
}

// NewReviewCard returns the implicit default state a card receives on
// first exposure to a question: ease 2.5, zero interval, zero
// repetitions, due immediately.
func NewReviewCard(userID int64, questionID string, now time.Time) ReviewCard {
	return ReviewCard{
		UserID:       userID,
		QuestionID:   questionID,
		EaseFactor:   DefaultEaseFactor,
		IntervalDays: 0,
		Repetitions:  0,
		NextReviewAt: now,
	}
}

// Due reports whether the card should be shown at the given moment.
func (c ReviewCard) Due(now time.Time) bool {
	return !c.NextReviewAt.After(now)
}

// TableName returns the name of the database table
// associated with the ReviewCard model.
func (c *ReviewCard) TableName() string {
	return "review_cards"
}
