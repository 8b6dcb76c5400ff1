package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/flashforge-api/internal/domain"
)

// DefaultDailyGoal is the review target assigned to a fresh state.
const DefaultDailyGoal = 20

// State is the complete persistable snapshot of the system: all decks,
// the append-only review ledger, and the process-wide scalar state.
type State struct {
	Decks          []*domain.Deck      `json:"decks"`
	ReviewLogs     []*domain.ReviewLog `json:"review_logs"`
	Streak         int                 `json:"streak"`
	LastReviewDate time.Time           `json:"last_review_date"`
	DailyGoal      int                 `json:"daily_goal"`
	Preferences    domain.Preferences  `json:"preferences"`
}

// NewState returns an empty state with default preferences and the
// given daily goal (falling back to DefaultDailyGoal when
// non-positive).
func NewState(dailyGoal int) *State {
	if dailyGoal <= 0 {
		dailyGoal = DefaultDailyGoal
	}
	return &State{
		Decks:       []*domain.Deck{},
		ReviewLogs:  []*domain.ReviewLog{},
		DailyGoal:   dailyGoal,
		Preferences: domain.DefaultPreferences(),
	}
}

// findDeck returns the deck with the given ID, or nil.
func (s *State) findDeck(deckID uuid.UUID) *domain.Deck {
	for _, deck := range s.Decks {
		if deck.ID == deckID {
			return deck
		}
	}
	return nil
}
