package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/flashforge-api/internal/domain"
)

func TestScheduleTransitionTable(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		ease         float64
		interval     int
		rating       domain.Rating
		wantEase     float64
		wantInterval int
	}{
		{
			name:         "again resets interval and drops ease",
			ease:         2.5,
			interval:     10,
			rating:       domain.RatingAgain,
			wantEase:     2.3,
			wantInterval: 1,
		},
		{
			name:         "hard shrinks interval and drops ease",
			ease:         2.5,
			interval:     10,
			rating:       domain.RatingHard,
			wantEase:     2.35,
			wantInterval: 8,
		},
		{
			name:         "hard never shrinks below one day",
			ease:         2.5,
			interval:     1,
			rating:       domain.RatingHard,
			wantEase:     2.35,
			wantInterval: 1,
		},
		{
			name:         "good multiplies by ease, ease unchanged",
			ease:         2.5,
			interval:     1,
			rating:       domain.RatingGood,
			wantEase:     2.5,
			wantInterval: 3,
		},
		{
			name:         "good rounds up",
			ease:         2.5,
			interval:     3,
			rating:       domain.RatingGood,
			wantEase:     2.5,
			wantInterval: 8,
		},
		{
			name:         "easy applies bonus and raises ease",
			ease:         2.5,
			interval:     2,
			rating:       domain.RatingEasy,
			wantEase:     2.65,
			wantInterval: 7, // ceil(2 * 2.5 * 1.3) = ceil(6.5)
		},
		{
			name:         "again clamps ease at floor",
			ease:         1.3,
			interval:     5,
			rating:       domain.RatingAgain,
			wantEase:     1.3,
			wantInterval: 1,
		},
		{
			name:         "hard clamps ease at floor",
			ease:         1.35,
			interval:     5,
			rating:       domain.RatingHard,
			wantEase:     1.3,
			wantInterval: 4,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Schedule(tc.ease, tc.interval, tc.rating, now, params)

			assert.InDelta(t, tc.wantEase, got.EaseFactor, 1e-9)
			assert.Equal(t, tc.wantInterval, got.Interval)
			assert.Equal(t, now.Add(time.Duration(tc.wantInterval)*24*time.Hour), got.NextDue)
		})
	}
}

// A fresh card rated good, good, again walks the expected interval path.
func TestScheduleProgression(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	first := Schedule(2.5, 1, domain.RatingGood, now, params)
	require.Equal(t, 3, first.Interval)
	require.InDelta(t, 2.5, first.EaseFactor, 1e-9)

	second := Schedule(first.EaseFactor, first.Interval, domain.RatingGood, now, params)
	require.Equal(t, 8, second.Interval)
	require.InDelta(t, 2.5, second.EaseFactor, 1e-9)

	third := Schedule(second.EaseFactor, second.Interval, domain.RatingAgain, now, params)
	require.Equal(t, 1, third.Interval)
	require.InDelta(t, 2.3, third.EaseFactor, 1e-9)
}

// Clamp invariants hold for every rating across a grid of inputs,
// including already-minimal ease.
func TestScheduleInvariants(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	eases := []float64{1.3, 1.35, 1.5, 2.0, 2.5, 3.0, 4.2}
	intervals := []int{1, 2, 3, 7, 30, 365, 10000}

	for _, rating := range domain.Ratings() {
		for _, ease := range eases {
			for _, interval := range intervals {
				got := Schedule(ease, interval, rating, now, params)

				assert.GreaterOrEqual(t, got.EaseFactor, 1.3,
					"ease floor violated for rating=%s ease=%v interval=%d", rating, ease, interval)
				assert.GreaterOrEqual(t, got.Interval, 1,
					"interval floor violated for rating=%s ease=%v interval=%d", rating, ease, interval)
				assert.True(t, got.NextDue.After(now),
					"next due not in the future for rating=%s ease=%v interval=%d", rating, ease, interval)

				if rating == domain.RatingAgain {
					assert.Equal(t, 1, got.Interval, "again must reset the interval")
				}
			}
		}
	}
}

// Holding the interval fixed, good and easy intervals never decrease as
// the ease factor increases.
func TestScheduleMonotonicInEase(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, rating := range []domain.Rating{domain.RatingGood, domain.RatingEasy} {
		for _, interval := range []int{1, 5, 40} {
			prev := 0
			for ease := 1.3; ease <= 4.0; ease += 0.05 {
				got := Schedule(ease, interval, rating, now, params)
				assert.GreaterOrEqual(t, got.Interval, prev,
					"interval decreased for rating=%s interval=%d ease=%v", rating, interval, ease)
				prev = got.Interval
			}
		}
	}
}

// Schedule is pure: repeated calls with identical inputs agree.
func TestScheduleDeterministic(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	a := Schedule(2.2, 17, domain.RatingEasy, now, params)
	b := Schedule(2.2, 17, domain.RatingEasy, now, params)
	assert.Equal(t, a, b)
}
