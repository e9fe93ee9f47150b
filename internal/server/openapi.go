package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/tmcalumni/aclstrainer/internal/acls"
	"github.com/tmcalumni/aclstrainer/internal/engine"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "ACLS Trainer API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the cardiac emergency training simulator.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/scenarios
	listScenarios, _ := r.NewOperationContext(http.MethodGet, "/api/scenarios")
	listScenarios.SetSummary("List scenarios")
	listScenarios.SetDescription("Returns id, title, description, and complexity for every scenario.")
	listScenarios.AddRespStructure([]acls.Summary{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listScenarios)

	// GET /api/difficulties
	listDifficulties, _ := r.NewOperationContext(http.MethodGet, "/api/difficulties")
	listDifficulties.SetSummary("List difficulty levels")
	listDifficulties.SetDescription("Returns the difficulty table: multipliers, labels, initial countdown.")
	listDifficulties.AddRespStructure([]acls.DifficultySettings{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listDifficulties)

	// GET /api/session
	getSession, _ := r.NewOperationContext(http.MethodGet, "/api/session")
	getSession.SetSummary("Session snapshot")
	getSession.SetDescription("Returns a consistent snapshot of the training session.")
	getSession.AddRespStructure(engine.Snapshot{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getSession)

	// POST /api/session/scenario
	postScenario, _ := r.NewOperationContext(http.MethodPost, "/api/session/scenario")
	postScenario.SetSummary("Select scenario")
	postScenario.SetDescription("Selects a scenario, moving the session to difficulty selection.")
	postScenario.AddReqStructure(SelectScenarioRequest{})
	postScenario.AddRespStructure(engine.Snapshot{}, openapi.WithHTTPStatus(http.StatusOK))
	postScenario.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postScenario.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postScenario)

	// POST /api/session/difficulty
	postDifficulty, _ := r.NewOperationContext(http.MethodPost, "/api/session/difficulty")
	postDifficulty.SetSummary("Confirm difficulty")
	postDifficulty.SetDescription("Confirms the difficulty and starts the scenario run with its countdown.")
	postDifficulty.AddReqStructure(ConfirmDifficultyRequest{})
	postDifficulty.AddRespStructure(engine.Snapshot{}, openapi.WithHTTPStatus(http.StatusOK))
	postDifficulty.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postDifficulty.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postDifficulty)

	// POST /api/session/decision
	postDecision, _ := r.NewOperationContext(http.MethodPost, "/api/session/decision")
	postDecision.SetSummary("Submit decision")
	postDecision.SetDescription("Submits a decision of the current step and returns its adjusted outcome.")
	postDecision.AddReqStructure(DecisionRequest{})
	postDecision.AddRespStructure(engine.DecisionResult{}, openapi.WithHTTPStatus(http.StatusOK))
	postDecision.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postDecision.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postDecision)

	// POST /api/session/reset
	postReset, _ := r.NewOperationContext(http.MethodPost, "/api/session/reset")
	postReset.SetSummary("Return to scenario selection")
	postReset.SetDescription("Discards the session and returns to the idle phase.")
	postReset.AddRespStructure(engine.Snapshot{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postReset)

	// POST /api/session/retry
	postRetry, _ := r.NewOperationContext(http.MethodPost, "/api/session/retry")
	postRetry.SetSummary("Retry scenario")
	postRetry.SetDescription("Re-enters difficulty selection for the finished session's scenario.")
	postRetry.AddRespStructure(engine.Snapshot{}, openapi.WithHTTPStatus(http.StatusOK))
	postRetry.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postRetry)

	// GET /api/session/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/session/events")
	getEvents.SetSummary("SSE snapshot stream")
	getEvents.SetDescription("Server-Sent Events stream pushing a snapshot after every engine event.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// GET /api/session/ws
	getWS, _ := r.NewOperationContext(http.MethodGet, "/api/session/ws")
	getWS.SetSummary("WebSocket snapshot stream")
	getWS.SetDescription("Upgrades to a WebSocket pushing the same snapshots as the SSE stream.")
	getWS.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("text/plain"))
	_ = r.AddOperation(getWS)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
