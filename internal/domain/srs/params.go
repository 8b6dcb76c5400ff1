// Package srs implements the SM-2-family spaced repetition scheduling
// algorithm as a pure transition function over a card's ease factor and
// review interval.
package srs

import (
	"github.com/phrazzld/flashforge-api/internal/domain"
)

// Params defines all configurable parameters for the SRS algorithm
type Params struct {
	// MinEaseFactor is the floor applied to every decreasing ease
	// adjustment. There is no ceiling.
	MinEaseFactor float64

	// EasyBonus multiplies the interval growth for "easy" ratings on
	// top of the ease factor.
	EasyBonus float64

	// Per-rating additive ease factor adjustments.
	EaseFactorAdjustment map[domain.Rating]float64

	// HardIntervalModifier shrinks the interval on "hard" ratings.
	HardIntervalModifier float64
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor: domain.MinEaseFactor,
		EasyBonus:     1.3,

		EaseFactorAdjustment: map[domain.Rating]float64{
			domain.RatingAgain: -0.20,
			domain.RatingHard:  -0.15,
			domain.RatingGood:  0.0,
			domain.RatingEasy:  0.15,
		},

		HardIntervalModifier: 0.8,
	}
}
