package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/flashforge-api/internal/api/shared"
	"github.com/phrazzld/flashforge-api/internal/store"
)

// DeckHandler handles deck-level HTTP requests, including import and
// export of portable deck payloads.
type DeckHandler struct {
	store  *store.Store
	logger *slog.Logger
}

// NewDeckHandler creates a new DeckHandler
func NewDeckHandler(s *store.Store, logger *slog.Logger) *DeckHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for DeckHandler")
	}

	return &DeckHandler{
		store:  s,
		logger: logger.With(slog.String("component", "deck_handler")),
	}
}

// ListDecks handles GET /decks requests. Cards are omitted from the
// listing; GetDeck returns them.
func (h *DeckHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	decks := h.store.ListDecks()

	responses := make([]DeckResponse, len(decks))
	for i, deck := range decks {
		responses[i] = deckToSummary(deck)
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// GetDeck handles GET /decks/{deckID} requests, returning the deck with
// all its cards.
func (h *DeckHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	deckID, ok := parseIDParam(w, r, "deckID")
	if !ok {
		return
	}

	deck, err := h.store.GetDeck(deckID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, deckToResponse(deck))
}

// CreateDeckRequest represents the request body for creating a deck.
type CreateDeckRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// CreateDeck handles POST /decks requests.
func (h *DeckHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	var req CreateDeckRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Deck name cannot be empty", err)
		return
	}

	deck, err := h.store.CreateDeck(req.Name, req.Description)
	if !finishMutation(w, r, h.logger, err) {
		return
	}

	h.logger.Info("deck created via API", slog.String("deck_id", deck.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, deckToResponse(deck))
}

// UpdateDeckRequest represents the request body for renaming or
// re-describing a deck. Absent fields are left unchanged.
type UpdateDeckRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// UpdateDeck handles PUT /decks/{deckID} requests.
func (h *DeckHandler) UpdateDeck(w http.ResponseWriter, r *http.Request) {
	deckID, ok := parseIDParam(w, r, "deckID")
	if !ok {
		return
	}

	var req UpdateDeckRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	deck, err := h.store.UpdateDeck(deckID, store.DeckUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
	if !finishMutation(w, r, h.logger, err) {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, deckToResponse(deck))
}

// DeleteDeck handles DELETE /decks/{deckID} requests. The deletion
// cascades to the deck's cards; review logs stay in the ledger.
func (h *DeckHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	deckID, ok := parseIDParam(w, r, "deckID")
	if !ok {
		return
	}

	err := h.store.DeleteDeck(deckID)
	if !finishMutation(w, r, h.logger, err) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExportDeck handles GET /decks/{deckID}/export requests, returning the
// portable JSON payload for the deck.
func (h *DeckHandler) ExportDeck(w http.ResponseWriter, r *http.Request) {
	deckID, ok := parseIDParam(w, r, "deckID")
	if !ok {
		return
	}

	payload, err := h.store.ExportDeck(deckID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(payload)); err != nil {
		h.logger.Error("failed to write export payload", slog.String("error", err.Error()))
	}
}

// ImportDeckRequest represents the request body for importing a deck.
// Payload is the portable JSON document produced by export.
type ImportDeckRequest struct {
	Payload string `json:"payload" validate:"required"`
}

// ImportDeck handles POST /decks/import requests. The imported deck and
// its cards receive fresh IDs; a malformed payload changes nothing.
func (h *DeckHandler) ImportDeck(w http.ResponseWriter, r *http.Request) {
	var req ImportDeckRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Payload is required", err)
		return
	}

	deck, err := h.store.ImportDeck(req.Payload)
	if !finishMutation(w, r, h.logger, err) {
		return
	}

	h.logger.Info("deck imported",
		slog.String("deck_id", deck.ID.String()),
		slog.Int("cards", len(deck.Cards)))
	shared.RespondWithJSON(w, r, http.StatusCreated, deckToResponse(deck))
}
