package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsEndpoint(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	deck := env.createDeck(t, "deck")
	card := env.addCard(t, deck.ID, "front", "back")

	recorder := env.do(t, http.MethodPost,
		"/api/decks/"+deck.ID+"/cards/"+card.ID+"/review",
		RateCardRequest{Rating: "easy"})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.do(t, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var stats map[string]interface{}
	decode(t, recorder, &stats)
	assert.Equal(t, float64(1), stats["total_decks"])
	assert.Equal(t, float64(1), stats["total_cards"])
	assert.Equal(t, float64(0), stats["due_now"])
	assert.Equal(t, float64(1), stats["reviewed_today"])
	assert.Equal(t, float64(1), stats["streak"])
}

func TestActivityEndpoint(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodGet, "/api/stats/activity", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var days []map[string]interface{}
	decode(t, recorder, &days)
	require.Len(t, days, 7, "always seven trailing days, even with no reviews")
	for _, day := range days {
		assert.Equal(t, float64(0), day["reviewed"])
	}
}

func TestSearchEndpoint(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	deck := env.createDeck(t, "deck")
	env.addCard(t, deck.ID, "goroutines", "lightweight threads")

	recorder := env.do(t, http.MethodGet, "/api/search?q=goroutine", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var result SearchResponse
	decode(t, recorder, &result)
	assert.True(t, result.Active)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, deck.ID, result.Matches[0].DeckID)

	// No query: inactive, distinct from active-with-zero-results.
	recorder = env.do(t, http.MethodGet, "/api/search", nil)
	decode(t, recorder, &result)
	assert.False(t, result.Active)
	assert.Empty(t, result.Matches)

	recorder = env.do(t, http.MethodGet, "/api/search?q=zebra", nil)
	decode(t, recorder, &result)
	assert.True(t, result.Active)
	assert.Empty(t, result.Matches)
}

func TestSetDailyGoalEndpoint(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodPut, "/api/settings/goal", SetDailyGoalRequest{DailyGoal: 42})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 42, env.store.DailyGoal())

	recorder = env.do(t, http.MethodPut, "/api/settings/goal", map[string]int{"daily_goal": -5})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, 42, env.store.DailyGoal())
}

func TestUpdatePreferencesEndpoint(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodPut, "/api/settings/preferences",
		map[string]interface{}{"theme": "dark", "animations_enabled": false})
	require.Equal(t, http.StatusOK, recorder.Code)
	var prefs PreferencesResponse
	decode(t, recorder, &prefs)
	assert.Equal(t, "dark", prefs.Theme)
	assert.Equal(t, "sans", prefs.FontFamily, "untouched fields keep their defaults")
	assert.False(t, prefs.AnimationsEnabled)

	recorder = env.do(t, http.MethodPut, "/api/settings/preferences",
		map[string]string{"theme": "neon"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
