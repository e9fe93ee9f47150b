package server

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/tmcalumni/aclstrainer/internal/content"
	"github.com/tmcalumni/aclstrainer/internal/engine"
)

func addRoutes(r chi.Router, logger *slog.Logger, eng *engine.Engine, repo *content.Store, broker *Broker, db *sql.DB, spaDir string) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("ACLS Trainer API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db))

	r.Route("/api", func(r chi.Router) {
		r.Get("/scenarios", handleListScenarios(repo))
		r.Get("/difficulties", handleListDifficulties(eng))

		r.Route("/session", func(r chi.Router) {
			r.Get("/", handleSessionState(eng))
			r.Post("/scenario", handleSelectScenario(eng))
			r.Post("/difficulty", handleConfirmDifficulty(eng))
			r.Post("/decision", handleSubmitDecision(eng))
			r.Post("/reset", handleReset(eng))
			r.Post("/retry", handleRetry(eng))
			r.Get("/events", handleEvents(eng, broker))
			r.Get("/ws", handleWSSession(logger, eng, broker))
		})
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
