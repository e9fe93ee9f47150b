package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tmcalumni/aclstrainer/internal/engine"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeEngineError maps engine error kinds to HTTP statuses. Content
// integrity failures have already been logged by the engine; state is
// unchanged in every case.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrUnknownScenario):
		writeError(w, http.StatusNotFound, "scenario not found")
	case errors.Is(err, engine.ErrUnknownStep), errors.Is(err, engine.ErrUnknownDecision):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, engine.ErrUnknownDifficulty):
		writeError(w, http.StatusBadRequest, "unknown difficulty level")
	case errors.Is(err, engine.ErrInvalidTransition), errors.Is(err, engine.ErrBrokenOutcome):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
