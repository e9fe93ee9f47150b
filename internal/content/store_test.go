package content_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/tmcalumni/aclstrainer/internal/content"
	"github.com/tmcalumni/aclstrainer/internal/database"
	"github.com/tmcalumni/aclstrainer/internal/migrations"
)

func newTestStore(t *testing.T) *content.Store {
	t.Helper()

	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrations.Run(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	store := content.NewStore(db)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := store.Seed(context.Background(), logger); err != nil {
		t.Fatalf("seeding: %v", err)
	}
	// Seeding again must be a no-op on a populated repository.
	if err := store.Seed(context.Background(), logger); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	return store
}

func TestStoreList(t *testing.T) {
	store := newTestStore(t)

	got, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("listing scenarios: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("got %d scenarios, want 4", len(got))
	}

	wantOrder := []string{"post-cardiac-arrest", "pea-arrest", "unstable-tachycardia", "vf-arrest"}
	for i, sum := range got {
		if sum.ID != wantOrder[i] {
			t.Errorf("position %d holds %s, want %s (title order)", i, sum.ID, wantOrder[i])
		}
		if sum.Title == "" || sum.Description == "" {
			t.Errorf("summary for %s missing title or description", sum.ID)
		}
		if sum.Complexity < 1 || sum.Complexity > 10 {
			t.Errorf("complexity for %s = %d, want within 1..10", sum.ID, sum.Complexity)
		}
	}
}

func TestStoreScenario(t *testing.T) {
	store := newTestStore(t)

	sc, err := store.Scenario(context.Background(), "vf-arrest")
	if err != nil {
		t.Fatalf("loading scenario: %v", err)
	}

	if sc.Title != "Ventricular Fibrillation Cardiac Arrest" {
		t.Errorf("title = %q", sc.Title)
	}
	if sc.InitialStep != "initial-assessment" {
		t.Errorf("initial step = %q, want initial-assessment", sc.InitialStep)
	}
	if sc.Complexity != 6 {
		t.Errorf("complexity = %d, want 6", sc.Complexity)
	}
	if len(sc.Steps) != 9 {
		t.Errorf("got %d steps, want 9", len(sc.Steps))
	}

	// The graph must be self-contained: the initial step exists and every
	// non-terminal outcome points at a defined step.
	if _, ok := sc.Step(sc.InitialStep); !ok {
		t.Fatalf("initial step %q not in scenario", sc.InitialStep)
	}
	for _, step := range sc.Steps {
		for _, dec := range step.Decisions {
			out := dec.Outcome
			if out.IsGameOver {
				continue
			}
			if out.NextStep == "" {
				t.Errorf("decision %s/%s has neither next step nor game over", step.ID, dec.ID)
				continue
			}
			if _, ok := sc.Step(out.NextStep); !ok {
				t.Errorf("decision %s/%s points at missing step %q", step.ID, dec.ID, out.NextStep)
			}
		}
	}
}

func TestStoreGraphsSelfContained(t *testing.T) {
	store := newTestStore(t)

	sums, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("listing scenarios: %v", err)
	}
	for _, sum := range sums {
		sc, err := store.Scenario(context.Background(), sum.ID)
		if err != nil {
			t.Fatalf("loading %s: %v", sum.ID, err)
		}
		if _, ok := sc.Step(sc.InitialStep); !ok {
			t.Errorf("%s: initial step %q not defined", sc.ID, sc.InitialStep)
		}
		for _, step := range sc.Steps {
			if len(step.Decisions) == 0 {
				t.Errorf("%s: step %s has no decisions", sc.ID, step.ID)
			}
		}
	}
}

func TestStoreScenarioNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Scenario(context.Background(), "septic-shock")
	if !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
