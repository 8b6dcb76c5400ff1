package store

import (
	"strings"

	"github.com/google/uuid"

	"github.com/phrazzld/flashforge-api/internal/domain"
)

// SearchMatch is one card matching a search query, tagged with the deck
// it lives in.
type SearchMatch struct {
	DeckID   uuid.UUID    `json:"deck_id"`
	DeckName string       `json:"deck_name"`
	Card     *domain.Card `json:"card"`
}

// SearchResult distinguishes "no query entered" from "query entered,
// nothing matched": Active is false for an empty or whitespace-only
// query, and Matches is empty-but-present when an active query found
// nothing.
type SearchResult struct {
	Active  bool          `json:"active"`
	Matches []SearchMatch `json:"matches"`
}

// Search scans every card in every deck for a case-insensitive
// substring match of the query against the front, the back, or any tag.
// No tokenization or ranking; matches come back in stable (deck, then
// card) enumeration order.
func (s *Store) Search(query string) SearchResult {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return SearchResult{Active: false, Matches: []SearchMatch{}}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	matches := []SearchMatch{}
	for _, deck := range s.state.Decks {
		for _, card := range deck.Cards {
			if cardMatches(card, normalized) {
				matches = append(matches, SearchMatch{
					DeckID:   deck.ID,
					DeckName: deck.Name,
					Card:     card.Clone(),
				})
			}
		}
	}

	return SearchResult{Active: true, Matches: matches}
}

func cardMatches(card *domain.Card, normalized string) bool {
	if strings.Contains(strings.ToLower(card.Front), normalized) {
		return true
	}
	if strings.Contains(strings.ToLower(card.Back), normalized) {
		return true
	}
	for _, tag := range card.Tags {
		if strings.Contains(strings.ToLower(tag), normalized) {
			return true
		}
	}
	return false
}
