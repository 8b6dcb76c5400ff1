package srs

import (
	"math"
	"time"

	"github.com/phrazzld/flashforge-api/internal/domain"
)

// Result holds the scheduling fields produced by one application of the
// transition function.
type Result struct {
	// EaseFactor is the card's new ease factor, never below
	// Params.MinEaseFactor.
	EaseFactor float64

	// Interval is the card's new review interval in whole days,
	// always at least 1.
	Interval int

	// NextDue is the instant after which the card becomes eligible for
	// review again: now plus Interval days.
	NextDue time.Time
}

// Schedule computes the next scheduling state for a card given its
// current ease factor, current interval in days, and the user's rating.
//
// The transition follows the SM-2 family:
//
//	again: interval resets to 1, ease drops by 0.20
//	hard:  interval shrinks to ceil(interval * 0.8), ease drops by 0.15
//	good:  interval grows to ceil(interval * ease), ease unchanged
//	easy:  interval grows to ceil(interval * ease * bonus), ease rises by 0.15
//
// Ease is clamped to the 1.3 floor in all decreasing cases; intervals
// round up so a card is never under-scheduled. The function is pure:
// the same inputs always yield the same Result.
func Schedule(
	easeFactor float64,
	interval int,
	rating domain.Rating,
	now time.Time,
	params *Params,
) Result {
	newEase := calculateNewEaseFactor(easeFactor, rating, params)
	newInterval := calculateNewInterval(interval, easeFactor, rating, params)

	return Result{
		EaseFactor: newEase,
		Interval:   newInterval,
		NextDue:    now.Add(time.Duration(newInterval) * 24 * time.Hour),
	}
}

// calculateNewEaseFactor applies the rating's additive adjustment and
// clamps the result to the configured floor.
func calculateNewEaseFactor(currentEF float64, rating domain.Rating, params *Params) float64 {
	newEF := currentEF + params.EaseFactorAdjustment[rating]

	if newEF < params.MinEaseFactor {
		newEF = params.MinEaseFactor
	}

	return newEF
}

// calculateNewInterval derives the next interval in whole days from the
// current interval and the pre-adjustment ease factor. Growth uses the
// ease factor the card had when it was rated, not the adjusted one.
func calculateNewInterval(currentInterval int, easeFactor float64, rating domain.Rating, params *Params) int {
	switch rating {
	case domain.RatingAgain:
		return 1
	case domain.RatingHard:
		interval := int(math.Ceil(float64(currentInterval) * params.HardIntervalModifier))
		if interval < 1 {
			interval = 1
		}
		return interval
	case domain.RatingEasy:
		return ceilAtLeastOne(float64(currentInterval) * easeFactor * params.EasyBonus)
	default: // domain.RatingGood
		return ceilAtLeastOne(float64(currentInterval) * easeFactor)
	}
}

func ceilAtLeastOne(days float64) int {
	interval := int(math.Ceil(days))
	if interval < 1 {
		interval = 1
	}
	return interval
}
