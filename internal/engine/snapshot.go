package engine

import (
	"slices"
	"time"

	"github.com/tmcalumni/aclstrainer/internal/acls"
)

// Phase is the session's position in the state machine.
type Phase string

const (
	PhaseIdle                Phase = "idle"
	PhaseSelectingDifficulty Phase = "selecting_difficulty"
	PhaseActive              Phase = "active"
	PhaseTerminal            Phase = "terminal"
)

// DecisionView is a decision as shown to the trainee: no outcome data.
type DecisionView struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	IsUrgent bool   `json:"isUrgent,omitempty"`
}

// StepView is the current step in session-local (shuffled) decision order.
type StepView struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Image       string         `json:"image,omitempty"`
	Decisions   []DecisionView `json:"decisions"`
}

// Feedback is the message shown after the last processed event.
type Feedback struct {
	Message string `json:"message"`
	Kind    string `json:"kind"` // "success" or "error"
}

// Snapshot is a fully consistent view of the session, taken between events.
// One is published to subscribers after every processed event, including
// timer ticks.
type Snapshot struct {
	Phase         Phase                    `json:"phase"`
	Scenario      *acls.Summary            `json:"scenario,omitempty"`
	Difficulty    *acls.DifficultySettings `json:"difficulty,omitempty"`
	Step          *StepView                `json:"step,omitempty"`
	TimeRemaining int                      `json:"timeRemaining"`
	InitialTime   int                      `json:"initialTime,omitempty"`
	Score         int                      `json:"score"`
	History       []string                 `json:"history"`
	GameOver      bool                     `json:"gameOver"`
	Success       bool                     `json:"success"`
	Celebrate     bool                     `json:"celebrate,omitempty"`
	Feedback      *Feedback                `json:"feedback,omitempty"`
}

// DecisionResult is returned synchronously for a submitted decision.
// ScoreChange is the adjusted delta actually applied.
type DecisionResult struct {
	IsCorrect   bool   `json:"isCorrect"`
	ScoreChange int    `json:"scoreChange"`
	Feedback    string `json:"feedback"`
	GameOver    bool   `json:"gameOver"`
	Success     bool   `json:"success"`
}

// snapshot builds the presentation view of the current state. Must be
// called from the event loop.
func (e *Engine) snapshot() Snapshot {
	s := Snapshot{
		Phase:         e.phase,
		TimeRemaining: e.clock.Remaining(),
		Score:         e.score,
		History:       slices.Clone(e.history),
		GameOver:      e.phase == PhaseTerminal,
		Success:       e.success,
	}
	if s.History == nil {
		s.History = []string{}
	}
	if e.scenario != nil {
		sum := e.scenario.Summary()
		s.Scenario = &sum
	}
	if e.difficulty != nil {
		d := *e.difficulty
		s.Difficulty = &d
		s.InitialTime = d.InitialTime
	}
	if e.phase == PhaseActive {
		if view, ok := e.views[e.stepID]; ok {
			s.Step = stepView(view)
		}
	}
	if e.feedback != nil {
		f := *e.feedback
		s.Feedback = &f
	}
	s.Celebrate = s.GameOver && e.success && time.Now().Before(e.celebrateUntil)
	return s
}

func stepView(step acls.Step) *StepView {
	v := &StepView{
		ID:          step.ID,
		Title:       step.Title,
		Description: step.Description,
		Image:       step.Image,
		Decisions:   make([]DecisionView, 0, len(step.Decisions)),
	}
	for _, d := range step.Decisions {
		v.Decisions = append(v.Decisions, DecisionView{ID: d.ID, Text: d.Text, IsUrgent: d.IsUrgent})
	}
	return v
}
