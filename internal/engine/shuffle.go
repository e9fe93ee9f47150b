package engine

import (
	"math/rand/v2"
	"slices"

	"github.com/tmcalumni/aclstrainer/internal/acls"
)

// shuffleStep returns a copy of the step whose decisions are a uniformly
// random permutation of the original (Fisher-Yates). The canonical step and
// its outcome data are left untouched; the copy is only ever used for
// display ordering.
func shuffleStep(rng *rand.Rand, step acls.Step) acls.Step {
	out := step
	out.Decisions = slices.Clone(step.Decisions)
	for i := len(out.Decisions) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out.Decisions[i], out.Decisions[j] = out.Decisions[j], out.Decisions[i]
	}
	return out
}

// shuffleScenario builds the session-local randomized view for every step
// of the scenario. Shuffling happens once, at session start, so revisiting
// a step within the same session always shows the same order.
func shuffleScenario(rng *rand.Rand, sc *acls.Scenario) map[string]acls.Step {
	views := make(map[string]acls.Step, len(sc.Steps))
	for _, step := range sc.Steps {
		views[step.ID] = shuffleStep(rng, step)
	}
	return views
}
