package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Deck-specific validation errors
var (
	// ErrDeckIDEmpty is returned when a deck ID is empty or nil.
	ErrDeckIDEmpty = errors.New("deck ID cannot be empty")

	// ErrDeckNameEmpty is returned when a deck's name is empty.
	ErrDeckNameEmpty = errors.New("deck name cannot be empty")
)

// Deck is a named collection of cards. Cards keep their insertion
// order; a deck exclusively owns its cards, so deleting the deck
// deletes them.
type Deck struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Cards       []*Card   `json:"cards"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewDeck creates a new empty Deck with the given name and description.
// It generates a new UUID for the deck ID and sets both timestamps to now.
// Returns an error if validation fails.
func NewDeck(name, description string, now time.Time) (*Deck, error) {
	deck := &Deck{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Cards:       []*Card{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := deck.Validate(); err != nil {
		return nil, err
	}

	return deck, nil
}

// Validate checks if the Deck has valid data.
// Returns an error if any field fails validation.
func (d *Deck) Validate() error {
	if d.ID == uuid.Nil {
		return ErrDeckIDEmpty
	}

	if d.Name == "" {
		return ErrDeckNameEmpty
	}

	return nil
}

// FindCard returns the card with the given ID, or nil if the deck does
// not contain it.
func (d *Deck) FindCard(cardID uuid.UUID) *Card {
	for _, card := range d.Cards {
		if card.ID == cardID {
			return card
		}
	}
	return nil
}

// Touch bumps the deck's UpdatedAt timestamp. Called on every
// structural mutation, including card scheduling updates.
func (d *Deck) Touch(now time.Time) {
	d.UpdatedAt = now
}

// Clone returns a deep copy of the deck and all its cards.
func (d *Deck) Clone() *Deck {
	clone := *d
	clone.Cards = make([]*Card, len(d.Cards))
	for i, card := range d.Cards {
		clone.Cards[i] = card.Clone()
	}
	return &clone
}
