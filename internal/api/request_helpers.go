package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/phrazzld/flashforge-api/internal/api/shared"
	"github.com/phrazzld/flashforge-api/internal/store"
)

// parseIDParam extracts and parses a UUID path parameter. On failure it
// writes a 400 response and returns ok=false.
func parseIDParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, name+" is required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

// finishMutation completes a mutating request. A snapshot-save failure
// arrives as a store.ErrSnapshotSave-wrapped error alongside a valid
// result: the in-memory mutation succeeded, so the client still gets
// its data while the failure is logged for operator attention. Any
// other error produces a sanitized error response.
//
// Returns true when the caller should write its success response.
func finishMutation(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) bool {
	if err == nil {
		return true
	}

	if errors.Is(err, store.ErrSnapshotSave) {
		log.Warn("state mutated but snapshot save failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		return true
	}

	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
	return false
}
