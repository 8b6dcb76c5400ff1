package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/flashforge-api/internal/domain"
)

// recordReview appends one immutable ledger entry and advances the
// streak. Must be called with the store lock held, exactly once per
// rating event, with the same instant the card's scheduling fields were
// stamped with.
func (s *Store) recordReview(cardID, deckID uuid.UUID, rating domain.Rating, now time.Time) (*domain.ReviewLog, error) {
	switch {
	case s.state.LastReviewDate.IsZero():
		// First review ever.
		s.state.Streak = 1
	default:
		switch s.daysBetween(s.state.LastReviewDate, now) {
		case 0:
			// Same calendar day; streak unchanged.
		case 1:
			s.state.Streak++
		default:
			// Gap broke continuity.
			s.state.Streak = 1
		}
	}

	log, err := domain.NewReviewLog(cardID, deckID, rating, now)
	if err != nil {
		return nil, err
	}

	s.state.ReviewLogs = append(s.state.ReviewLogs, log)
	s.state.LastReviewDate = now
	return log, nil
}

// ReviewLogs returns copies of all ledger entries in append order,
// including entries whose card or deck has since been deleted.
func (s *Store) ReviewLogs() []*domain.ReviewLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	logs := make([]*domain.ReviewLog, len(s.state.ReviewLogs))
	for i, log := range s.state.ReviewLogs {
		clone := *log
		logs[i] = &clone
	}
	return logs
}

// CardsReviewedToday counts ledger entries stamped within today's
// calendar day. Derived from the ledger on every call rather than kept
// as a counter, so it cannot drift across midnight.
func (s *Store) CardsReviewedToday() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cardsReviewedOn(s.dayStart(s.clock.Now()))
}

// cardsReviewedOn counts ledger entries within the calendar day opening
// at the given midnight. Must be called with the store lock held.
func (s *Store) cardsReviewedOn(day time.Time) int {
	count := 0
	for _, log := range s.state.ReviewLogs {
		if s.dayStart(log.Timestamp).Equal(day) {
			count++
		}
	}
	return count
}

// DayActivity is one calendar day's review totals.
type DayActivity struct {
	// Date is the local midnight opening the day.
	Date time.Time `json:"date"`

	// Weekday is the day's abbreviated English weekday name.
	Weekday string `json:"weekday"`

	// Reviewed is the total number of reviews that day.
	Reviewed int `json:"reviewed"`

	// Per-rating totals for the day.
	Again int `json:"again"`
	Hard  int `json:"hard"`
	Good  int `json:"good"`
	Easy  int `json:"easy"`
}

// WeeklyActivity buckets the ledger into the 7 trailing calendar days,
// oldest first and today last. Days with no reviews yield zero-count
// buckets.
func (s *Store) WeeklyActivity() []DayActivity {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.dayStart(s.clock.Now())
	days := make([]DayActivity, 7)
	for i := range days {
		day := today.AddDate(0, 0, i-6)
		days[i] = DayActivity{
			Date:    day,
			Weekday: day.Format("Mon"),
		}
	}

	for _, log := range s.state.ReviewLogs {
		logDay := s.dayStart(log.Timestamp)
		for i := range days {
			if !days[i].Date.Equal(logDay) {
				continue
			}
			days[i].Reviewed++
			switch log.Rating {
			case domain.RatingAgain:
				days[i].Again++
			case domain.RatingHard:
				days[i].Hard++
			case domain.RatingGood:
				days[i].Good++
			case domain.RatingEasy:
				days[i].Easy++
			}
			break
		}
	}

	return days
}

// Summary aggregates the dashboard-level numbers in one query.
type Summary struct {
	TotalDecks    int `json:"total_decks"`
	TotalCards    int `json:"total_cards"`
	DueNow        int `json:"due_now"`
	ReviewedToday int `json:"reviewed_today"`
	DailyGoal     int `json:"daily_goal"`
	Streak        int `json:"streak"`
}

// Stats returns the dashboard summary: deck/card totals, cards due
// across all decks, today's review count against the daily goal, and
// the streak.
func (s *Store) Stats() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	summary := Summary{
		TotalDecks:    len(s.state.Decks),
		ReviewedToday: s.cardsReviewedOn(s.dayStart(now)),
		DailyGoal:     s.state.DailyGoal,
		Streak:        s.state.Streak,
	}

	for _, deck := range s.state.Decks {
		summary.TotalCards += len(deck.Cards)
		for _, card := range deck.Cards {
			if card.IsDue(now) {
				summary.DueNow++
			}
		}
	}

	return summary
}
