package store

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/phrazzld/flashforge-api/internal/domain"
	"github.com/phrazzld/flashforge-api/internal/domain/srs"
)

// ListDecks returns copies of all decks in insertion order.
func (s *Store) ListDecks() []*domain.Deck {
	s.mu.Lock()
	defer s.mu.Unlock()

	decks := make([]*domain.Deck, len(s.state.Decks))
	for i, deck := range s.state.Decks {
		decks[i] = deck.Clone()
	}
	return decks
}

// GetDeck returns a copy of the deck with the given ID.
// Returns ErrDeckNotFound if no such deck exists.
func (s *Store) GetDeck(deckID uuid.UUID) (*domain.Deck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deck := s.state.findDeck(deckID)
	if deck == nil {
		return nil, ErrDeckNotFound
	}
	return deck.Clone(), nil
}

// CreateDeck creates a new empty deck with the given name and
// description. The name must be non-empty.
func (s *Store) CreateDeck(name, description string) (*domain.Deck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deck, err := domain.NewDeck(strings.TrimSpace(name), description, s.clock.Now())
	if err != nil {
		return nil, err
	}

	s.state.Decks = append(s.state.Decks, deck)
	s.logger.Info("deck created",
		slog.String("deck_id", deck.ID.String()),
		slog.String("name", deck.Name))

	return deck.Clone(), s.persist()
}

// DeckUpdate carries a partial deck change; nil fields are left
// untouched. The deck's ID and card set cannot be changed through it.
type DeckUpdate struct {
	Name        *string
	Description *string
}

// UpdateDeck renames or re-describes a deck. An empty new name is
// rejected before any state change.
func (s *Store) UpdateDeck(deckID uuid.UUID, update DeckUpdate) (*domain.Deck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deck := s.state.findDeck(deckID)
	if deck == nil {
		return nil, ErrDeckNotFound
	}

	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, domain.ErrDeckNameEmpty
	}

	if update.Name != nil {
		deck.Name = strings.TrimSpace(*update.Name)
	}
	if update.Description != nil {
		deck.Description = *update.Description
	}
	deck.Touch(s.clock.Now())

	return deck.Clone(), s.persist()
}

// DeleteDeck removes a deck and all its cards. The deletion cascades
// and is irreversible; review logs referencing the deck are kept and
// become orphaned. Returns ErrDeckNotFound if no such deck exists.
func (s *Store) DeleteDeck(deckID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, deck := range s.state.Decks {
		if deck.ID == deckID {
			s.state.Decks = append(s.state.Decks[:i], s.state.Decks[i+1:]...)
			s.logger.Info("deck deleted",
				slog.String("deck_id", deckID.String()),
				slog.Int("cards", len(deck.Cards)))
			return s.persist()
		}
	}
	return ErrDeckNotFound
}

// AddCard creates a card in the given deck. The card starts with the
// initial ease factor and interval and is due immediately.
func (s *Store) AddCard(deckID uuid.UUID, front, back string, tags []string) (*domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deck := s.state.findDeck(deckID)
	if deck == nil {
		return nil, ErrDeckNotFound
	}

	now := s.clock.Now()
	card, err := domain.NewCard(front, back, tags, now)
	if err != nil {
		return nil, err
	}

	deck.Cards = append(deck.Cards, card)
	deck.Touch(now)

	return card.Clone(), s.persist()
}

// CardUpdate carries a partial card change; nil fields are left
// untouched.
type CardUpdate struct {
	Front *string
	Back  *string
	Tags  *[]string
}

// UpdateCard edits a card's authored fields. Emptying front or back is
// rejected before any state change; scheduling fields are not editable
// through this operation.
func (s *Store) UpdateCard(deckID, cardID uuid.UUID, update CardUpdate) (*domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deck := s.state.findDeck(deckID)
	if deck == nil {
		return nil, ErrDeckNotFound
	}
	card := deck.FindCard(cardID)
	if card == nil {
		return nil, ErrCardNotFound
	}

	if update.Front != nil && *update.Front == "" {
		return nil, domain.ErrCardFrontEmpty
	}
	if update.Back != nil && *update.Back == "" {
		return nil, domain.ErrCardBackEmpty
	}

	if update.Front != nil {
		card.Front = *update.Front
	}
	if update.Back != nil {
		card.Back = *update.Back
	}
	if update.Tags != nil {
		card.Tags = append([]string{}, *update.Tags...)
	}
	deck.Touch(s.clock.Now())

	return card.Clone(), s.persist()
}

// DeleteCard removes a card from its deck. Review logs referencing the
// card are kept and become orphaned.
func (s *Store) DeleteCard(deckID, cardID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	deck := s.state.findDeck(deckID)
	if deck == nil {
		return ErrDeckNotFound
	}

	for i, card := range deck.Cards {
		if card.ID == cardID {
			deck.Cards = append(deck.Cards[:i], deck.Cards[i+1:]...)
			deck.Touch(s.clock.Now())
			return s.persist()
		}
	}
	return ErrCardNotFound
}

// DueCards returns copies of every card in the deck that is due now:
// never scheduled, or scheduled at or before the current instant.
// Order is the deck's insertion order, so repeated calls with no
// intervening mutation return the same sequence. A missing deck yields
// an empty slice, not an error.
func (s *Store) DueCards(deckID uuid.UUID) []*domain.Card {
	s.mu.Lock()
	defer s.mu.Unlock()

	deck := s.state.findDeck(deckID)
	if deck == nil {
		return []*domain.Card{}
	}

	now := s.clock.Now()
	due := []*domain.Card{}
	for _, card := range deck.Cards {
		if card.IsDue(now) {
			due = append(due, card.Clone())
		}
	}
	return due
}

// ReviewResult is what a single rating produces: the rescheduled card,
// the appended ledger entry, and the streak after the review.
type ReviewResult struct {
	Card   *domain.Card
	Log    *domain.ReviewLog
	Streak int
}

// RateCard applies one rating to a card: the scheduling function
// computes the card's new ease factor, interval, and due instant; the
// review is appended to the ledger and the streak updated; then the
// whole snapshot is persisted. The card mutation and the ledger entry
// are atomic from the caller's perspective and share one timestamp.
func (s *Store) RateCard(deckID, cardID uuid.UUID, rating domain.Rating) (*ReviewResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := rating.Validate(); err != nil {
		return nil, err
	}

	deck := s.state.findDeck(deckID)
	if deck == nil {
		return nil, ErrDeckNotFound
	}
	card := deck.FindCard(cardID)
	if card == nil {
		return nil, ErrCardNotFound
	}

	now := s.clock.Now()
	next := srs.Schedule(card.EaseFactor, card.Interval, rating, now, s.params)

	card.EaseFactor = next.EaseFactor
	card.Interval = next.Interval
	card.LastReviewed = now
	card.NextDue = next.NextDue
	deck.Touch(now)

	log, err := s.recordReview(cardID, deckID, rating, now)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("card rated",
		slog.String("card_id", cardID.String()),
		slog.String("rating", string(rating)),
		slog.Int("interval", card.Interval),
		slog.Float64("ease_factor", card.EaseFactor))

	result := &ReviewResult{
		Card:   card.Clone(),
		Log:    log,
		Streak: s.state.Streak,
	}
	return result, s.persist()
}
