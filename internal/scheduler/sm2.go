// Package scheduler implements the SM-2 spaced-repetition algorithm as a
// pure function over [models.ReviewCard]. It performs no I/O and reads no
// ambient clock; callers inject "now" so results are deterministic and
// replayable.
package scheduler

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/ansafin/learnsync/models"
)

// Quality ratings are integers in [0, 5]. Ratings below PassingQuality
// count as failed recall and reset the repetition streak.
const (
	MinQuality     = 0
	MaxQuality     = 5
	PassingQuality = 3
)

// ErrInvalidQuality is returned when the rating falls outside [0, 5].
// An out-of-range rating is a caller bug, so the scheduler rejects it
// instead of clamping.
var ErrInvalidQuality = errors.New("quality rating out of range")

// Rate applies one quality rating to the card's scheduling state and
// returns the updated card. The input card is not modified.
//
// Failed recall (quality < 3) resets repetitions to 0 and schedules the
// card for tomorrow. Successful recall grows the interval on the
// 1 / 6 / previous×ease ladder. The ease factor is updated in both
// branches and floored at [models.MinEaseFactor].
func Rate(card models.ReviewCard, quality int, now time.Time) (models.ReviewCard, error) {
	if quality < MinQuality || quality > MaxQuality {
		return models.ReviewCard{}, fmt.Errorf("%w: %d", ErrInvalidQuality, quality)
	}

	next := card
	next.EaseFactor = nextEaseFactor(card.EaseFactor, quality)

	if quality < PassingQuality {
		next.Repetitions = 0
		next.IntervalDays = 1
	} else {
		next.Repetitions = card.Repetitions + 1
		next.IntervalDays = nextInterval(card.IntervalDays, next.Repetitions, next.EaseFactor)
	}

	next.NextReviewAt = now.AddDate(0, 0, next.IntervalDays)
	reviewed := now
	next.LastReviewedAt = &reviewed

	return next, nil
}

// nextEaseFactor computes
// EF' = EF + (0.1 - (5-q) * (0.08 + (5-q) * 0.02)), floored at 1.3.
func nextEaseFactor(ease float64, quality int) float64 {
	d := float64(MaxQuality - quality)
	ease += 0.1 - d*(0.08+d*0.02)
	return math.Max(ease, models.MinEaseFactor)
}

// nextInterval returns the interval in days after the repetitions-th
// consecutive successful review: 1 day, then 6 days, then the previous
// interval multiplied by the updated ease factor, rounded to the nearest
// whole day with a floor of 1.
func nextInterval(prevDays, repetitions int, ease float64) int {
	switch repetitions {
	case 1:
		return 1
	case 2:
		return 6
	default:
		days := int(math.Round(float64(prevDays) * ease))
		if days < 1 {
			days = 1
		}
		return days
	}
}
