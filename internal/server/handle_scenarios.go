package server

import (
	"net/http"

	"github.com/tmcalumni/aclstrainer/internal/acls"
	"github.com/tmcalumni/aclstrainer/internal/content"
	"github.com/tmcalumni/aclstrainer/internal/engine"
)

func handleListScenarios(repo *content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sums, err := repo.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if sums == nil {
			sums = []acls.Summary{}
		}
		writeJSON(w, http.StatusOK, sums)
	}
}

func handleListDifficulties(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, eng.Difficulties())
	}
}
