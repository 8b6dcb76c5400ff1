package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Rating is a user's recall judgment for a single card review.
type Rating string

// The four recognized review ratings, from complete failure to
// effortless recall.
const (
	RatingAgain Rating = "again"
	RatingHard  Rating = "hard"
	RatingGood  Rating = "good"
	RatingEasy  Rating = "easy"
)

// Validate checks that the rating is one of the four recognized values.
func (r Rating) Validate() error {
	switch r {
	case RatingAgain, RatingHard, RatingGood, RatingEasy:
		return nil
	default:
		return ErrInvalidRating
	}
}

// Ratings returns all valid ratings in ascending recall-quality order.
func Ratings() []Rating {
	return []Rating{RatingAgain, RatingHard, RatingGood, RatingEasy}
}

// ReviewLog-specific validation errors
var (
	// ErrReviewLogIDEmpty is returned when a review log ID is empty or nil.
	ErrReviewLogIDEmpty = errors.New("review log ID cannot be empty")

	// ErrReviewLogCardIDEmpty is returned when a review log's card ID is
	// empty or nil.
	ErrReviewLogCardIDEmpty = errors.New("review log card ID cannot be empty")

	// ErrReviewLogDeckIDEmpty is returned when a review log's deck ID is
	// empty or nil.
	ErrReviewLogDeckIDEmpty = errors.New("review log deck ID cannot be empty")
)

// ReviewLog is an immutable record of one rating event. It references
// its card and deck by ID only, so a log entry remains valid (orphaned)
// after the card or deck is deleted.
type ReviewLog struct {
	ID        uuid.UUID `json:"id"`
	CardID    uuid.UUID `json:"card_id"`
	DeckID    uuid.UUID `json:"deck_id"`
	Rating    Rating    `json:"rating"`
	Timestamp time.Time `json:"timestamp"`
}

// NewReviewLog creates a review log entry for one rating event with a
// fresh ID. Returns an error if validation fails.
func NewReviewLog(cardID, deckID uuid.UUID, rating Rating, now time.Time) (*ReviewLog, error) {
	log := &ReviewLog{
		ID:        uuid.New(),
		CardID:    cardID,
		DeckID:    deckID,
		Rating:    rating,
		Timestamp: now,
	}

	if err := log.Validate(); err != nil {
		return nil, err
	}

	return log, nil
}

// Validate checks if the ReviewLog has valid data.
// Returns an error if any field fails validation.
func (l *ReviewLog) Validate() error {
	if l.ID == uuid.Nil {
		return ErrReviewLogIDEmpty
	}

	if l.CardID == uuid.Nil {
		return ErrReviewLogCardIDEmpty
	}

	if l.DeckID == uuid.Nil {
		return ErrReviewLogDeckIDEmpty
	}

	return l.Rating.Validate()
}
