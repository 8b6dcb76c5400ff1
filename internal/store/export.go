package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/flashforge-api/internal/domain"
)

// deckPayload is the portable deck representation. Field names and the
// epoch-millisecond timestamps are the interchange contract, kept
// independent of the internal entity encoding.
type deckPayload struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	CreatedAt   int64         `json:"createdAt"`
	UpdatedAt   int64         `json:"updatedAt"`
	Cards       []cardPayload `json:"cards"`
}

type cardPayload struct {
	ID           string   `json:"id"`
	Front        string   `json:"front"`
	Back         string   `json:"back"`
	EaseFactor   float64  `json:"easeFactor"`
	Interval     int      `json:"interval"`
	LastReviewed *int64   `json:"lastReviewed"`
	NextDue      *int64   `json:"nextDue"`
	Tags         []string `json:"tags"`
}

// ExportDeck serializes one deck, including every card's scheduling
// fields, to a self-contained portable JSON document.
func (s *Store) ExportDeck(deckID uuid.UUID) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deck := s.state.findDeck(deckID)
	if deck == nil {
		return "", ErrDeckNotFound
	}

	payload := deckPayload{
		ID:          deck.ID.String(),
		Name:        deck.Name,
		Description: deck.Description,
		CreatedAt:   deck.CreatedAt.UnixMilli(),
		UpdatedAt:   deck.UpdatedAt.UnixMilli(),
		Cards:       make([]cardPayload, len(deck.Cards)),
	}
	for i, card := range deck.Cards {
		payload.Cards[i] = cardPayload{
			ID:           card.ID.String(),
			Front:        card.Front,
			Back:         card.Back,
			EaseFactor:   card.EaseFactor,
			Interval:     card.Interval,
			LastReviewed: timeToMillis(card.LastReviewed),
			NextDue:      timeToMillis(card.NextDue),
			Tags:         append([]string{}, card.Tags...),
		}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode deck payload: %w", err)
	}
	return string(data), nil
}

// ImportDeck parses a portable deck document and adds it to the store.
// The imported deck and every card receive fresh IDs so the import
// never collides with existing data, and both deck timestamps are reset
// to the import instant; scheduling fields come through verbatim. A
// structurally invalid payload fails with ErrInvalidImport before any
// state is touched.
func (s *Store) ImportDeck(payload string) (*domain.Deck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var parsed deckPayload
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}

	now := s.clock.Now()
	deck := &domain.Deck{
		ID:          uuid.New(),
		Name:        parsed.Name,
		Description: parsed.Description,
		Cards:       make([]*domain.Card, len(parsed.Cards)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := deck.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}

	for i, cp := range parsed.Cards {
		card := &domain.Card{
			ID:           uuid.New(),
			Front:        cp.Front,
			Back:         cp.Back,
			EaseFactor:   cp.EaseFactor,
			Interval:     cp.Interval,
			LastReviewed: millisToTime(cp.LastReviewed),
			NextDue:      millisToTime(cp.NextDue),
			Tags:         append([]string{}, cp.Tags...),
		}
		if err := card.Validate(); err != nil {
			return nil, fmt.Errorf("%w: card %d: %v", ErrInvalidImport, i, err)
		}
		deck.Cards[i] = card
	}

	// Payload fully validated; only now does state change.
	s.state.Decks = append(s.state.Decks, deck)

	return deck.Clone(), s.persist()
}

// timeToMillis converts an instant to epoch milliseconds, mapping the
// zero time ("never") to null.
func timeToMillis(t time.Time) *int64 {
	if t.IsZero() {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

// millisToTime converts epoch milliseconds to an instant, mapping null
// to the zero time ("never").
func millisToTime(ms *int64) time.Time {
	if ms == nil {
		return time.Time{}
	}
	return time.UnixMilli(*ms)
}
