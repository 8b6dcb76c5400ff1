package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/flashforge-api/internal/domain"
	"github.com/phrazzld/flashforge-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, store.ErrDeckNotFound),
		errors.Is(err, store.ErrCardNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, store.ErrInvalidImport),
		errors.Is(err, domain.ErrDeckNameEmpty),
		errors.Is(err, domain.ErrCardFrontEmpty),
		errors.Is(err, domain.ErrCardBackEmpty),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrInvalidTheme),
		errors.Is(err, domain.ErrInvalidFontFamily),
		errors.Is(err, domain.ErrInvalidDailyGoal):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrDeckNotFound):
		return "Deck not found"

	case errors.Is(err, store.ErrCardNotFound):
		return "Card not found"

	case errors.Is(err, store.ErrInvalidImport):
		// Import failures carry the structural reason, which is safe to
		// show: the payload came from the caller.
		return err.Error()

	case errors.Is(err, domain.ErrDeckNameEmpty):
		return "Deck name cannot be empty"

	case errors.Is(err, domain.ErrCardFrontEmpty):
		return "Card front cannot be empty"

	case errors.Is(err, domain.ErrCardBackEmpty):
		return "Card back cannot be empty"

	case errors.Is(err, domain.ErrInvalidRating):
		return "Rating must be one of: again, hard, good, easy"

	case errors.Is(err, domain.ErrInvalidTheme),
		errors.Is(err, domain.ErrInvalidFontFamily):
		return "Invalid preference value"

	case errors.Is(err, domain.ErrInvalidDailyGoal):
		return "Daily goal must be a positive number"

	default:
		return "An unexpected error occurred"
	}
}
