package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/flashforge-api/internal/api"
	apiMiddleware "github.com/phrazzld/flashforge-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
// It accepts the application dependencies to create handlers and register routes.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's store
	deckHandler := api.NewDeckHandler(app.store, app.logger)
	cardHandler := api.NewCardHandler(app.store, app.logger)
	statsHandler := api.NewStatsHandler(app.store, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Deck endpoints
		r.Get("/decks", deckHandler.ListDecks)
		r.Post("/decks", deckHandler.CreateDeck)
		r.Post("/decks/import", deckHandler.ImportDeck)
		r.Get("/decks/{deckID}", deckHandler.GetDeck)
		r.Put("/decks/{deckID}", deckHandler.UpdateDeck)
		r.Delete("/decks/{deckID}", deckHandler.DeleteDeck)
		r.Get("/decks/{deckID}/export", deckHandler.ExportDeck)

		// Card endpoints
		r.Post("/decks/{deckID}/cards", cardHandler.AddCard)
		r.Put("/decks/{deckID}/cards/{cardID}", cardHandler.UpdateCard)
		r.Delete("/decks/{deckID}/cards/{cardID}", cardHandler.DeleteCard)
		r.Get("/decks/{deckID}/due", cardHandler.DueCards)
		r.Post("/decks/{deckID}/cards/{cardID}/review", cardHandler.RateCard)

		// Reporting and search endpoints
		r.Get("/stats", statsHandler.GetStats)
		r.Get("/stats/activity", statsHandler.GetActivity)
		r.Get("/search", statsHandler.Search)

		// Settings endpoints
		r.Put("/settings/goal", statsHandler.SetDailyGoal)
		r.Put("/settings/preferences", statsHandler.UpdatePreferences)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
