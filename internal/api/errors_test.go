package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/flashforge-api/internal/domain"
	"github.com/phrazzld/flashforge-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{store.ErrDeckNotFound, http.StatusNotFound},
		{store.ErrCardNotFound, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", store.ErrDeckNotFound), http.StatusNotFound},
		{store.ErrInvalidImport, http.StatusBadRequest},
		{domain.ErrDeckNameEmpty, http.StatusBadRequest},
		{domain.ErrInvalidRating, http.StatusBadRequest},
		{domain.ErrInvalidDailyGoal, http.StatusBadRequest},
		{errors.New("something unexpected"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err), "error: %v", tc.err)
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Deck not found", GetSafeErrorMessage(store.ErrDeckNotFound))
	assert.Equal(t, "Card not found", GetSafeErrorMessage(store.ErrCardNotFound))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))

	// Internal details never leak through unknown errors.
	leaky := errors.New("dial tcp 10.0.0.5: connection refused")
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(leaky))

	// Import failures carry their structural reason.
	importErr := fmt.Errorf("%w: card 2: %v", store.ErrInvalidImport, domain.ErrCardBackEmpty)
	assert.Contains(t, GetSafeErrorMessage(importErr), "card 2")
}
