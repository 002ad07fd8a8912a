package models

import "time"

// ProgressSnapshot is the local read model of a learner's position in one
// chapter. Like QuizAttempt it carries a SyncStatus flag flipped by the
// sync worker on confirmed delivery.
type ProgressSnapshot struct {
	// ChapterID identifies the chapter; together with UserID it is the
	// snapshot's natural key and the server-side dedup key.
	ChapterID string `json:"chapter_id"`

	// UserID is the learner the snapshot belongs to.
	UserID int64 `json:"user_id"`

	// ReadPercent is how far the learner has read, in [0, 100].
	ReadPercent float64 `json:"read_percent"`

	// Completed marks the chapter as finished.
	Completed bool `json:"completed"`

	SyncStatus SyncStatus `json:"sync_status"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the ProgressSnapshot model.
func (p *ProgressSnapshot) TableName() string {
	return "progress"
}
