package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListDecks(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	deck := env.createDeck(t, "Spanish")
	assert.Equal(t, "Spanish", deck.Name)
	assert.NotEmpty(t, deck.ID)

	recorder := env.do(t, http.MethodGet, "/api/decks", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var decks []DeckResponse
	decode(t, recorder, &decks)
	require.Len(t, decks, 1)
	assert.Equal(t, deck.ID, decks[0].ID)
	assert.Nil(t, decks[0].Cards, "listing omits card bodies")
}

func TestCreateDeckValidation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodPost, "/api/decks", map[string]string{"description": "no name"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = env.do(t, http.MethodGet, "/api/decks", nil)
	var decks []DeckResponse
	decode(t, recorder, &decks)
	assert.Empty(t, decks, "rejected creation leaves no deck behind")
}

func TestGetDeck(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	deck := env.createDeck(t, "Go")
	card := env.addCard(t, deck.ID, "front", "back")

	recorder := env.do(t, http.MethodGet, "/api/decks/"+deck.ID, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var got DeckResponse
	decode(t, recorder, &got)
	assert.Equal(t, 1, got.CardCount)
	require.Len(t, got.Cards, 1)
	assert.Equal(t, card.ID, got.Cards[0].ID)

	recorder = env.do(t, http.MethodGet, "/api/decks/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = env.do(t, http.MethodGet, "/api/decks/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdateDeck(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	deck := env.createDeck(t, "old")

	recorder := env.do(t, http.MethodPut, "/api/decks/"+deck.ID,
		map[string]string{"name": "new"})
	require.Equal(t, http.StatusOK, recorder.Code)
	var updated DeckResponse
	decode(t, recorder, &updated)
	assert.Equal(t, "new", updated.Name)

	recorder = env.do(t, http.MethodPut, "/api/decks/"+uuid.NewString(),
		map[string]string{"name": "ghost"})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestDeleteDeck(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	deck := env.createDeck(t, "doomed")

	recorder := env.do(t, http.MethodDelete, "/api/decks/"+deck.ID, nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = env.do(t, http.MethodDelete, "/api/decks/"+deck.ID, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestExportImportEndpoints(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	deck := env.createDeck(t, "portable")
	env.addCard(t, deck.ID, "front", "back")

	recorder := env.do(t, http.MethodGet, "/api/decks/"+deck.ID+"/export", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	payload := recorder.Body.String()
	assert.Contains(t, payload, `"name":"portable"`)

	recorder = env.do(t, http.MethodPost, "/api/decks/import", ImportDeckRequest{Payload: payload})
	require.Equal(t, http.StatusCreated, recorder.Code)
	var imported DeckResponse
	decode(t, recorder, &imported)
	assert.Equal(t, "portable", imported.Name)
	assert.NotEqual(t, deck.ID, imported.ID)
	require.Len(t, imported.Cards, 1)

	recorder = env.do(t, http.MethodGet, "/api/decks", nil)
	var decks []DeckResponse
	decode(t, recorder, &decks)
	assert.Len(t, decks, 2)
}

func TestImportRejectsMalformedPayload(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodPost, "/api/decks/import",
		ImportDeckRequest{Payload: `{"cards": []}`})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = env.do(t, http.MethodPost, "/api/decks/import", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = env.do(t, http.MethodGet, "/api/decks", nil)
	var decks []DeckResponse
	decode(t, recorder, &decks)
	assert.Empty(t, decks)
}
