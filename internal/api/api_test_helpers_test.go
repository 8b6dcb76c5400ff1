package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/flashforge-api/internal/store"
)

// nopSnapshots satisfies store.SnapshotStore without persisting
// anything, so handler tests run purely in memory.
type nopSnapshots struct{}

func (nopSnapshots) Load() (*store.State, error)  { return nil, nil }
func (nopSnapshots) Save(state *store.State) error { return nil }
func (nopSnapshots) Close() error                  { return nil }

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

// testEnv wires a store and a router with all API routes registered.
type testEnv struct {
	store  *store.Store
	router chi.Router
	clock  *fixedClock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := &fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	st, err := store.New(nopSnapshots{}, store.Options{
		Clock:    clock,
		Timezone: time.UTC,
	}, logger)
	require.NoError(t, err)

	deckHandler := NewDeckHandler(st, logger)
	cardHandler := NewCardHandler(st, logger)
	statsHandler := NewStatsHandler(st, logger)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/decks", deckHandler.ListDecks)
		r.Post("/decks", deckHandler.CreateDeck)
		r.Post("/decks/import", deckHandler.ImportDeck)
		r.Get("/decks/{deckID}", deckHandler.GetDeck)
		r.Put("/decks/{deckID}", deckHandler.UpdateDeck)
		r.Delete("/decks/{deckID}", deckHandler.DeleteDeck)
		r.Get("/decks/{deckID}/export", deckHandler.ExportDeck)
		r.Post("/decks/{deckID}/cards", cardHandler.AddCard)
		r.Put("/decks/{deckID}/cards/{cardID}", cardHandler.UpdateCard)
		r.Delete("/decks/{deckID}/cards/{cardID}", cardHandler.DeleteCard)
		r.Get("/decks/{deckID}/due", cardHandler.DueCards)
		r.Post("/decks/{deckID}/cards/{cardID}/review", cardHandler.RateCard)
		r.Get("/stats", statsHandler.GetStats)
		r.Get("/stats/activity", statsHandler.GetActivity)
		r.Get("/search", statsHandler.Search)
		r.Put("/settings/goal", statsHandler.SetDailyGoal)
		r.Put("/settings/preferences", statsHandler.UpdatePreferences)
	})

	return &testEnv{store: st, router: r, clock: clock}
}

// do executes a request against the in-memory router and returns the
// recorded response.
func (env *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	env.router.ServeHTTP(recorder, req)
	return recorder
}

// decode unmarshals a recorded JSON response body into target.
func decode(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
}

// createDeck creates a deck through the API and returns its response.
func (env *testEnv) createDeck(t *testing.T, name string) DeckResponse {
	t.Helper()
	recorder := env.do(t, http.MethodPost, "/api/decks", CreateDeckRequest{Name: name})
	require.Equal(t, http.StatusCreated, recorder.Code)
	var deck DeckResponse
	decode(t, recorder, &deck)
	return deck
}

// addCard adds a card through the API and returns its response.
func (env *testEnv) addCard(t *testing.T, deckID, front, back string) CardResponse {
	t.Helper()
	recorder := env.do(t, http.MethodPost, "/api/decks/"+deckID+"/cards",
		AddCardRequest{Front: front, Back: back})
	require.Equal(t, http.StatusCreated, recorder.Code)
	var card CardResponse
	decode(t, recorder, &card)
	return card
}
