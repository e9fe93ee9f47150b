// Package acls defines the core domain types for the cardiac emergency
// trainer. It has zero external dependencies — everything here is pure Go.
package acls

// Scenario is one clinical emergency storyline: a branching graph of steps.
// Scenarios are authored content, owned by the content repository, and never
// mutated at runtime.
type Scenario struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	InitialStep string `json:"initialStep"`
	Complexity  int    `json:"complexity,omitempty"`
	Steps       []Step `json:"steps"`
}

// Step is a node in the scenario graph: context plus a set of decisions.
type Step struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Image       string     `json:"image,omitempty"`
	Decisions   []Decision `json:"decisions"`
}

// Decision is a user-selectable action at a step, bound to exactly one
// outcome. IsUrgent affects presentation only.
type Decision struct {
	ID       string  `json:"id"`
	Text     string  `json:"text"`
	IsUrgent bool    `json:"isUrgent,omitempty"`
	Outcome  Outcome `json:"outcome"`
}

// Outcome is the deterministic result of a decision. A terminal outcome
// (IsGameOver) ends the run and carries no NextStep; a non-terminal outcome
// must name a NextStep within the same scenario.
type Outcome struct {
	Feedback    string `json:"feedback"`
	NextStep    string `json:"nextStep,omitempty"`
	IsCorrect   bool   `json:"isCorrect"`
	IsGameOver  bool   `json:"isGameOver,omitempty"`
	ScoreChange int    `json:"scoreChange"`
	AddTime     int    `json:"addTime,omitempty"`
}

// Summary is the scenario listing view shown before selection.
type Summary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Complexity  int    `json:"complexity"`
}

// Complexity bounds. Scenarios omitting a complexity get the default, and
// out-of-range authored values are clamped before scoring.
const (
	ComplexityMin     = 1
	ComplexityMax     = 10
	ComplexityDefault = 5
)

// EffectiveComplexity returns the scenario's complexity clamped to the
// valid range, or the default when unset.
func (s *Scenario) EffectiveComplexity() int {
	c := s.Complexity
	if c == 0 {
		c = ComplexityDefault
	}
	if c < ComplexityMin {
		c = ComplexityMin
	}
	if c > ComplexityMax {
		c = ComplexityMax
	}
	return c
}

// Step returns the step with the given id, or false if the scenario does
// not contain it.
func (s *Scenario) Step(id string) (Step, bool) {
	for _, st := range s.Steps {
		if st.ID == id {
			return st, true
		}
	}
	return Step{}, false
}

// Decision returns the decision with the given id, or false if the step
// does not contain it.
func (st Step) Decision(id string) (Decision, bool) {
	for _, d := range st.Decisions {
		if d.ID == id {
			return d, true
		}
	}
	return Decision{}, false
}

// Summary returns the listing view of the scenario.
func (s *Scenario) Summary() Summary {
	return Summary{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Complexity:  s.EffectiveComplexity(),
	}
}
