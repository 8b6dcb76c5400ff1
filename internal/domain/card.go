package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Scheduling defaults for newly created cards.
const (
	// InitialEaseFactor is the ease factor assigned to a card that has
	// never been reviewed.
	InitialEaseFactor = 2.5

	// InitialInterval is the review interval in days assigned to a card
	// that has never been reviewed.
	InitialInterval = 1

	// MinEaseFactor is the floor below which a card's ease factor is
	// never allowed to fall.
	MinEaseFactor = 1.3
)

// Card-specific validation errors
var (
	// ErrCardIDEmpty is returned when a card ID is empty or nil.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardFrontEmpty is returned when a card's front text is empty.
	ErrCardFrontEmpty = errors.New("card front cannot be empty")

	// ErrCardBackEmpty is returned when a card's back text is empty.
	ErrCardBackEmpty = errors.New("card back cannot be empty")

	// ErrCardEaseTooLow is returned when a card's ease factor is below
	// the 1.3 floor.
	ErrCardEaseTooLow = errors.New("card ease factor below minimum")

	// ErrCardIntervalInvalid is returned when a card's interval is not a
	// positive number of days.
	ErrCardIntervalInvalid = errors.New("card interval must be at least one day")
)

// Card represents a single question/answer unit inside a deck.
//
// LastReviewed and NextDue use the zero time.Time as "never": a card
// with a zero NextDue has never been scheduled and is treated as due
// immediately.
type Card struct {
	ID           uuid.UUID `json:"id"`
	Front        string    `json:"front"`
	Back         string    `json:"back"`
	EaseFactor   float64   `json:"ease_factor"`
	Interval     int       `json:"interval"`
	LastReviewed time.Time `json:"last_reviewed"`
	NextDue      time.Time `json:"next_due"`
	Tags         []string  `json:"tags"`
}

// NewCard creates a new Card with the given front, back, and tags.
// It generates a new UUID for the card ID and initializes scheduling
// fields so the card is due immediately.
// Returns an error if validation fails.
func NewCard(front, back string, tags []string, now time.Time) (*Card, error) {
	if tags == nil {
		tags = []string{}
	}

	card := &Card{
		ID:         uuid.New(),
		Front:      front,
		Back:       back,
		EaseFactor: InitialEaseFactor,
		Interval:   InitialInterval,
		NextDue:    now,
		Tags:       tags,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
// Returns an error if any field fails validation.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}

	if c.Front == "" {
		return ErrCardFrontEmpty
	}

	if c.Back == "" {
		return ErrCardBackEmpty
	}

	if c.EaseFactor < MinEaseFactor {
		return ErrCardEaseTooLow
	}

	if c.Interval < 1 {
		return ErrCardIntervalInvalid
	}

	return nil
}

// IsDue reports whether the card is eligible for review at the given
// instant. A card that has never been scheduled is always due.
func (c *Card) IsDue(now time.Time) bool {
	return c.NextDue.IsZero() || !c.NextDue.After(now)
}

// Clone returns a deep copy of the card. Tags are copied so mutating
// the clone never aliases the original.
func (c *Card) Clone() *Card {
	clone := *c
	clone.Tags = append([]string(nil), c.Tags...)
	return &clone
}
