package server

import (
	"net/http"
	"strings"

	"github.com/tmcalumni/aclstrainer/internal/acls"
	"github.com/tmcalumni/aclstrainer/internal/engine"
)

type SelectScenarioRequest struct {
	ScenarioID string `json:"scenarioId"`
}

type ConfirmDifficultyRequest struct {
	Level string `json:"level"`
}

type DecisionRequest struct {
	DecisionID string `json:"decisionId"`
}

func handleSessionState(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := eng.Snapshot(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, snap)
	}
}

func handleSelectScenario(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectScenarioRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.ScenarioID = strings.TrimSpace(req.ScenarioID)
		if req.ScenarioID == "" {
			writeError(w, http.StatusBadRequest, "scenarioId is required")
			return
		}

		if err := eng.SelectScenario(r.Context(), req.ScenarioID); err != nil {
			writeEngineError(w, err)
			return
		}
		writeSnapshot(w, r, eng)
	}
}

func handleConfirmDifficulty(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ConfirmDifficultyRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Level == "" {
			writeError(w, http.StatusBadRequest, "level is required")
			return
		}

		if err := eng.ConfirmDifficulty(r.Context(), acls.DifficultyLevel(req.Level)); err != nil {
			writeEngineError(w, err)
			return
		}
		writeSnapshot(w, r, eng)
	}
}

func handleSubmitDecision(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DecisionRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.DecisionID = strings.TrimSpace(req.DecisionID)
		if req.DecisionID == "" {
			writeError(w, http.StatusBadRequest, "decisionId is required")
			return
		}

		res, err := eng.SubmitDecision(r.Context(), req.DecisionID)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func handleReset(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := eng.ReturnToSelection(r.Context()); err != nil {
			writeEngineError(w, err)
			return
		}
		writeSnapshot(w, r, eng)
	}
}

func handleRetry(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := eng.Retry(r.Context()); err != nil {
			writeEngineError(w, err)
			return
		}
		writeSnapshot(w, r, eng)
	}
}

func writeSnapshot(w http.ResponseWriter, r *http.Request, eng *engine.Engine) {
	snap, err := eng.Snapshot(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
