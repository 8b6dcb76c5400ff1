package store

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/phrazzld/flashforge-api/internal/domain"
	"github.com/phrazzld/flashforge-api/internal/domain/srs"
)

// Options configures a Store.
type Options struct {
	// DailyGoal seeds the review target when no snapshot exists yet.
	DailyGoal int

	// Timezone fixes the calendar-day boundary used for streak and
	// daily-counter accounting. Defaults to time.Local.
	Timezone *time.Location

	// Clock overrides the time source. Defaults to SystemClock.
	Clock Clock

	// Params overrides the scheduling parameters. Defaults to
	// srs.NewDefaultParams().
	Params *srs.Params
}

// Store is the single mutation/query surface over the whole state
// snapshot. One mutex guards every command; each command runs to
// completion, including its snapshot save, before the next is admitted.
type Store struct {
	mu        sync.Mutex
	state     *State
	snapshots SnapshotStore
	clock     Clock
	params    *srs.Params
	loc       *time.Location
	logger    *slog.Logger
}

// New creates a Store backed by the given snapshot store, loading the
// persisted state if one exists and starting from an empty state
// otherwise.
func New(snapshots SnapshotStore, opts Options, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for Store")
	}

	state, err := snapshots.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotLoad, err)
	}
	if state == nil {
		state = NewState(opts.DailyGoal)
		logger.Info("no snapshot found, starting with empty state")
	} else {
		logger.Info("snapshot loaded",
			slog.Int("decks", len(state.Decks)),
			slog.Int("review_logs", len(state.ReviewLogs)))
	}

	clock := opts.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	params := opts.Params
	if params == nil {
		params = srs.NewDefaultParams()
	}
	loc := opts.Timezone
	if loc == nil {
		loc = time.Local
	}

	return &Store{
		state:     state,
		snapshots: snapshots,
		clock:     clock,
		params:    params,
		loc:       loc,
		logger:    logger.With(slog.String("component", "store")),
	}, nil
}

// persist snapshots the current state. A failure is logged and returned
// wrapped in ErrSnapshotSave; the in-memory state stays authoritative
// and keeps serving commands either way.
func (s *Store) persist() error {
	if err := s.snapshots.Save(s.state); err != nil {
		s.logger.Error("snapshot save failed", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", ErrSnapshotSave, err)
	}
	return nil
}

// dayStart returns the local midnight opening the calendar day that
// contains t, computed in the store's configured location.
func (s *Store) dayStart(t time.Time) time.Time {
	local := t.In(s.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)
}

// daysBetween counts calendar days from the day containing earlier to
// the day containing later. Rounding absorbs DST-shortened and
// DST-lengthened days.
func (s *Store) daysBetween(earlier, later time.Time) int {
	diff := s.dayStart(later).Sub(s.dayStart(earlier))
	return int(math.Round(diff.Hours() / 24))
}

// Preferences returns the current user preferences.
func (s *Store) Preferences() domain.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Preferences
}

// PreferencesUpdate carries a partial preferences change; nil fields
// are left untouched.
type PreferencesUpdate struct {
	Theme             *domain.Theme
	FontFamily        *domain.FontFamily
	AnimationsEnabled *bool
}

// UpdatePreferences applies a partial preferences update. Invalid
// values are rejected before any state change.
func (s *Store) UpdatePreferences(update PreferencesUpdate) (domain.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Preferences
	if update.Theme != nil {
		next.Theme = *update.Theme
	}
	if update.FontFamily != nil {
		next.FontFamily = *update.FontFamily
	}
	if update.AnimationsEnabled != nil {
		next.AnimationsEnabled = *update.AnimationsEnabled
	}

	if err := next.Validate(); err != nil {
		return s.state.Preferences, err
	}

	s.state.Preferences = next
	return next, s.persist()
}

// DailyGoal returns the current daily review target.
func (s *Store) DailyGoal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.DailyGoal
}

// SetDailyGoal sets the daily review target. The goal must be positive.
func (s *Store) SetDailyGoal(goal int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if goal <= 0 {
		return domain.ErrInvalidDailyGoal
	}

	s.state.DailyGoal = goal
	return s.persist()
}

// Streak returns the current consecutive-day review streak.
func (s *Store) Streak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Streak
}
