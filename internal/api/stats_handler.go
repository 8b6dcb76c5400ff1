package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/flashforge-api/internal/api/shared"
	"github.com/phrazzld/flashforge-api/internal/domain"
	"github.com/phrazzld/flashforge-api/internal/store"
)

// StatsHandler handles reporting, search, and settings requests.
type StatsHandler struct {
	store  *store.Store
	logger *slog.Logger
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(s *store.Store, logger *slog.Logger) *StatsHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for StatsHandler")
	}

	return &StatsHandler{
		store:  s,
		logger: logger.With(slog.String("component", "stats_handler")),
	}
}

// GetStats handles GET /stats requests with the dashboard summary.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.store.Stats())
}

// GetActivity handles GET /stats/activity requests, returning the 7
// trailing calendar days of review totals, oldest first.
func (h *StatsHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.store.WeeklyActivity())
}

// Search handles GET /search?q= requests. An empty or whitespace-only
// query returns an inactive result so clients can tell "no query" from
// "no matches".
func (h *StatsHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	result := h.store.Search(query)
	shared.RespondWithJSON(w, r, http.StatusOK, searchToResponse(result))
}

// SetDailyGoalRequest represents the request body for updating the
// daily review target.
type SetDailyGoalRequest struct {
	DailyGoal int `json:"daily_goal" validate:"required,gt=0"`
}

// SetDailyGoal handles PUT /settings/goal requests.
func (h *StatsHandler) SetDailyGoal(w http.ResponseWriter, r *http.Request) {
	var req SetDailyGoalRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			"Daily goal must be a positive number", err)
		return
	}

	err := h.store.SetDailyGoal(req.DailyGoal)
	if !finishMutation(w, r, h.logger, err) {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]int{"daily_goal": req.DailyGoal})
}

// UpdatePreferencesRequest represents a partial preferences update.
// Absent fields are left unchanged.
type UpdatePreferencesRequest struct {
	Theme             *string `json:"theme"`
	FontFamily        *string `json:"font_family"`
	AnimationsEnabled *bool   `json:"animations_enabled"`
}

// UpdatePreferences handles PUT /settings/preferences requests.
func (h *StatsHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req UpdatePreferencesRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	update := store.PreferencesUpdate{
		AnimationsEnabled: req.AnimationsEnabled,
	}
	if req.Theme != nil {
		theme := domain.Theme(*req.Theme)
		update.Theme = &theme
	}
	if req.FontFamily != nil {
		font := domain.FontFamily(*req.FontFamily)
		update.FontFamily = &font
	}

	prefs, err := h.store.UpdatePreferences(update)
	if !finishMutation(w, r, h.logger, err) {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, preferencesToResponse(prefs))
}
