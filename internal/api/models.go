package api

import (
	"time"

	"github.com/phrazzld/flashforge-api/internal/domain"
	"github.com/phrazzld/flashforge-api/internal/store"
)

// CardResponse represents the response data for a card.
// LastReviewed and NextDue are null for a card that has never been
// reviewed or scheduled.
type CardResponse struct {
	ID           string     `json:"id"`
	Front        string     `json:"front"`
	Back         string     `json:"back"`
	EaseFactor   float64    `json:"ease_factor"`
	Interval     int        `json:"interval"`
	LastReviewed *time.Time `json:"last_reviewed"`
	NextDue      *time.Time `json:"next_due"`
	Tags         []string   `json:"tags"`
}

// DeckResponse represents the response data for a deck. Cards are
// included only on single-deck reads.
type DeckResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	CardCount   int            `json:"card_count"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Cards       []CardResponse `json:"cards,omitempty"`
}

// ReviewResponse is returned after rating a card: the rescheduled card
// and the streak as of this review.
type ReviewResponse struct {
	Card   CardResponse `json:"card"`
	Streak int          `json:"streak"`
}

// SearchMatchResponse is one search hit.
type SearchMatchResponse struct {
	DeckID   string       `json:"deck_id"`
	DeckName string       `json:"deck_name"`
	Card     CardResponse `json:"card"`
}

// SearchResponse distinguishes an inactive search (empty query) from an
// active search with zero matches.
type SearchResponse struct {
	Active  bool                  `json:"active"`
	Matches []SearchMatchResponse `json:"matches"`
}

// PreferencesResponse mirrors the stored user preferences.
type PreferencesResponse struct {
	Theme             string `json:"theme"`
	FontFamily        string `json:"font_family"`
	AnimationsEnabled bool   `json:"animations_enabled"`
}

func cardToResponse(card *domain.Card) CardResponse {
	resp := CardResponse{
		ID:         card.ID.String(),
		Front:      card.Front,
		Back:       card.Back,
		EaseFactor: card.EaseFactor,
		Interval:   card.Interval,
		Tags:       card.Tags,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if !card.LastReviewed.IsZero() {
		t := card.LastReviewed
		resp.LastReviewed = &t
	}
	if !card.NextDue.IsZero() {
		t := card.NextDue
		resp.NextDue = &t
	}
	return resp
}

func cardsToResponses(cards []*domain.Card) []CardResponse {
	responses := make([]CardResponse, len(cards))
	for i, card := range cards {
		responses[i] = cardToResponse(card)
	}
	return responses
}

func deckToSummary(deck *domain.Deck) DeckResponse {
	return DeckResponse{
		ID:          deck.ID.String(),
		Name:        deck.Name,
		Description: deck.Description,
		CardCount:   len(deck.Cards),
		CreatedAt:   deck.CreatedAt,
		UpdatedAt:   deck.UpdatedAt,
	}
}

func deckToResponse(deck *domain.Deck) DeckResponse {
	resp := deckToSummary(deck)
	resp.Cards = cardsToResponses(deck.Cards)
	return resp
}

func searchToResponse(result store.SearchResult) SearchResponse {
	resp := SearchResponse{
		Active:  result.Active,
		Matches: make([]SearchMatchResponse, len(result.Matches)),
	}
	for i, match := range result.Matches {
		resp.Matches[i] = SearchMatchResponse{
			DeckID:   match.DeckID.String(),
			DeckName: match.DeckName,
			Card:     cardToResponse(match.Card),
		}
	}
	return resp
}

func preferencesToResponse(prefs domain.Preferences) PreferencesResponse {
	return PreferencesResponse{
		Theme:             string(prefs.Theme),
		FontFamily:        string(prefs.FontFamily),
		AnimationsEnabled: prefs.AnimationsEnabled,
	}
}
