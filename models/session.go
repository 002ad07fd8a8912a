package models

import "time"

// SessionSummary describes one finished (or interrupted) review session.
// Cards rated before an interruption are already committed, so the
// summary is accurate for whatever part of the session actually ran.
type SessionSummary struct {
	// Rated is the number of cards rated during the session.
	Rated int `json:"rated"`

	// AverageQuality is the mean of all quality ratings given, 0 when
	// nothing was rated.
	AverageQuality float64 `json:"average_quality"`

	// Elapsed is wall-clock time from session start to the last rating.
	Elapsed time.Duration `json:"elapsed"`
}
