package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/flashforge-api/internal/api/shared"
	"github.com/phrazzld/flashforge-api/internal/domain"
	"github.com/phrazzld/flashforge-api/internal/store"
)

// CardHandler handles card-level HTTP requests: authoring, the due
// queue, and review ratings.
type CardHandler struct {
	store  *store.Store
	logger *slog.Logger
}

// NewCardHandler creates a new CardHandler
func NewCardHandler(s *store.Store, logger *slog.Logger) *CardHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CardHandler")
	}

	return &CardHandler{
		store:  s,
		logger: logger.With(slog.String("component", "card_handler")),
	}
}

// AddCardRequest represents the request body for adding a card.
type AddCardRequest struct {
	Front string   `json:"front" validate:"required"`
	Back  string   `json:"back" validate:"required"`
	Tags  []string `json:"tags"`
}

// AddCard handles POST /decks/{deckID}/cards requests. New cards start
// with the initial ease factor and interval and are due immediately.
func (h *CardHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	deckID, ok := parseIDParam(w, r, "deckID")
	if !ok {
		return
	}

	var req AddCardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Card front and back are required", err)
		return
	}

	card, err := h.store.AddCard(deckID, req.Front, req.Back, req.Tags)
	if !finishMutation(w, r, h.logger, err) {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, cardToResponse(card))
}

// UpdateCardRequest represents the request body for editing a card.
// Absent fields are left unchanged.
type UpdateCardRequest struct {
	Front *string   `json:"front"`
	Back  *string   `json:"back"`
	Tags  *[]string `json:"tags"`
}

// UpdateCard handles PUT /decks/{deckID}/cards/{cardID} requests.
func (h *CardHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	deckID, ok := parseIDParam(w, r, "deckID")
	if !ok {
		return
	}
	cardID, ok := parseIDParam(w, r, "cardID")
	if !ok {
		return
	}

	var req UpdateCardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	card, err := h.store.UpdateCard(deckID, cardID, store.CardUpdate{
		Front: req.Front,
		Back:  req.Back,
		Tags:  req.Tags,
	})
	if !finishMutation(w, r, h.logger, err) {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}

// DeleteCard handles DELETE /decks/{deckID}/cards/{cardID} requests.
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	deckID, ok := parseIDParam(w, r, "deckID")
	if !ok {
		return
	}
	cardID, ok := parseIDParam(w, r, "cardID")
	if !ok {
		return
	}

	err := h.store.DeleteCard(deckID, cardID)
	if !finishMutation(w, r, h.logger, err) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DueCards handles GET /decks/{deckID}/due requests. A missing deck
// yields an empty list, not an error: the review session simply has
// nothing to show.
func (h *CardHandler) DueCards(w http.ResponseWriter, r *http.Request) {
	deckID, ok := parseIDParam(w, r, "deckID")
	if !ok {
		return
	}

	due := h.store.DueCards(deckID)
	shared.RespondWithJSON(w, r, http.StatusOK, cardsToResponses(due))
}

// RateCardRequest represents the request body for rating a card review.
type RateCardRequest struct {
	Rating string `json:"rating" validate:"required,oneof=again hard good easy"`
}

// RateCard handles POST /decks/{deckID}/cards/{cardID}/review requests.
// It reschedules the card, appends the review to the ledger, and
// returns the updated card with the current streak.
func (h *CardHandler) RateCard(w http.ResponseWriter, r *http.Request) {
	deckID, ok := parseIDParam(w, r, "deckID")
	if !ok {
		return
	}
	cardID, ok := parseIDParam(w, r, "cardID")
	if !ok {
		return
	}

	var req RateCardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			"Rating must be one of: again, hard, good, easy", err)
		return
	}

	result, err := h.store.RateCard(deckID, cardID, domain.Rating(req.Rating))
	if !finishMutation(w, r, h.logger, err) {
		return
	}

	h.logger.Debug("card rated",
		slog.String("card_id", cardID.String()),
		slog.String("rating", req.Rating))
	shared.RespondWithJSON(w, r, http.StatusOK, ReviewResponse{
		Card:   cardToResponse(result.Card),
		Streak: result.Streak,
	})
}
