// Package engine runs one trainee's traversal of a scenario graph: the
// session state machine, the countdown, and the difficulty-aware scoring.
//
// The engine is a single-goroutine actor. User intents and timer ticks are
// discrete events funneled through one channel; whichever event is dequeued
// first completes its whole transition before the next is processed. The
// time.Ticker driving the countdown is owned by the loop and is stopped —
// and its channel unselected — in the same event that leaves the active
// phase, so a late tick can never touch a terminal session.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/tmcalumni/aclstrainer/internal/acls"
	"github.com/tmcalumni/aclstrainer/internal/content"
	"github.com/tmcalumni/aclstrainer/internal/random"
)

// timeoutMessage replaces outcome feedback when the countdown expires.
// There is no decision to record in history for a timeout.
const timeoutMessage = "Time's up! In a cardiac emergency, quick decisions are critical. The patient didn't survive."

// celebrateFor is how long snapshots report the celebrate pulse after a
// successful terminal transition.
const celebrateFor = 3 * time.Second

// ScenarioRepository is the read-only content source consumed by the
// engine. Lookups for ids the repository does not hold return an error
// satisfying errors.Is(err, content.ErrNotFound).
type ScenarioRepository interface {
	Scenario(ctx context.Context, id string) (*acls.Scenario, error)
	List(ctx context.Context) ([]acls.Summary, error)
}

// Options tune an Engine. The zero value is production behavior.
type Options struct {
	// TickInterval is the countdown period. Zero means one second. A
	// negative interval disables the automatic ticker; tests then drive
	// ticks through the loop themselves.
	TickInterval time.Duration

	// Rand is the shuffle source. Nil means a crypto-seeded PCG.
	Rand *rand.Rand

	// Notify, if set, receives a snapshot after every processed event
	// that changed session state.
	Notify func(Snapshot)
}

// Engine owns exactly one session at a time. All fields below cmds are
// mutated only by the Run loop.
type Engine struct {
	repo      ScenarioRepository
	levels    map[acls.DifficultyLevel]acls.DifficultySettings
	logger    *slog.Logger
	rng       *rand.Rand
	notify    func(Snapshot)
	tickEvery time.Duration

	cmds chan func()

	phase          Phase
	scenario       *acls.Scenario
	difficulty     *acls.DifficultySettings
	stepID         string
	views          map[string]acls.Step
	clock          Countdown
	score          int
	history        []string
	success        bool
	feedback       *Feedback
	celebrateUntil time.Time

	ticker *time.Ticker
	dirty  bool
}

func New(repo ScenarioRepository, levels map[acls.DifficultyLevel]acls.DifficultySettings, logger *slog.Logger, opts Options) *Engine {
	e := &Engine{
		repo:      repo,
		levels:    levels,
		logger:    logger,
		rng:       opts.Rand,
		notify:    opts.Notify,
		tickEvery: opts.TickInterval,
		cmds:      make(chan func()),
		phase:     PhaseIdle,
	}
	if e.tickEvery == 0 {
		e.tickEvery = time.Second
	}
	if e.rng == nil {
		e.rng = newRNG()
	}
	return e
}

func newRNG() *rand.Rand {
	s1, err1 := random.NewSeed()
	s2, err2 := random.NewSeed()
	if err1 != nil || err2 != nil {
		return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return rand.New(rand.NewPCG(s1, s2))
}

// Run processes events until ctx is cancelled. It must be running for any
// of the intent or snapshot methods to complete.
func (e *Engine) Run(ctx context.Context) error {
	defer e.stopTicker()

	for {
		var tickC <-chan time.Time
		if e.ticker != nil {
			tickC = e.ticker.C
		}

		select {
		case <-ctx.Done():
			return nil
		case fn := <-e.cmds:
			fn()
		case <-tickC:
			e.tick()
		}

		if e.dirty {
			e.dirty = false
			if e.notify != nil {
				e.notify(e.snapshot())
			}
		}
	}
}

// do runs fn on the event loop and waits for it to complete.
func (e *Engine) do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	select {
	case e.cmds <- func() { fn(); close(done) }:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SelectScenario moves Idle -> SelectingDifficulty for a known scenario id.
func (e *Engine) SelectScenario(ctx context.Context, id string) error {
	var err error
	if derr := e.do(ctx, func() { err = e.selectScenario(ctx, id) }); derr != nil {
		return derr
	}
	return err
}

// ConfirmDifficulty moves SelectingDifficulty -> Active: resets score and
// history, shuffles every step's decisions for this session, arms the
// countdown, and starts the ticker.
func (e *Engine) ConfirmDifficulty(ctx context.Context, level acls.DifficultyLevel) error {
	var err error
	if derr := e.do(ctx, func() { err = e.confirmDifficulty(level) }); derr != nil {
		return derr
	}
	return err
}

// SubmitDecision applies a decision of the current step. Outcomes are
// resolved against the canonical scenario definition; the shuffled view is
// display order only.
func (e *Engine) SubmitDecision(ctx context.Context, decisionID string) (DecisionResult, error) {
	var (
		res DecisionResult
		err error
	)
	if derr := e.do(ctx, func() { res, err = e.submitDecision(decisionID) }); derr != nil {
		return DecisionResult{}, derr
	}
	return res, err
}

// ReturnToSelection discards the session and returns to Idle. Valid in any
// phase; it is also the "back" action from difficulty selection.
func (e *Engine) ReturnToSelection(ctx context.Context) error {
	return e.do(ctx, func() { e.reset() })
}

// Retry moves Terminal -> SelectingDifficulty with the same scenario,
// discarding the finished session's state.
func (e *Engine) Retry(ctx context.Context) error {
	var err error
	if derr := e.do(ctx, func() { err = e.retry() }); derr != nil {
		return derr
	}
	return err
}

// Snapshot returns a consistent view of the session. Reads happen between
// events, never during one.
func (e *Engine) Snapshot(ctx context.Context) (Snapshot, error) {
	var s Snapshot
	if err := e.do(ctx, func() { s = e.snapshot() }); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// Difficulties returns the difficulty table in fixed tier order.
func (e *Engine) Difficulties() []acls.DifficultySettings {
	out := make([]acls.DifficultySettings, 0, len(e.levels))
	for _, level := range []acls.DifficultyLevel{acls.Beginner, acls.Intermediate, acls.Advanced} {
		if d, ok := e.levels[level]; ok {
			out = append(out, d)
		}
	}
	return out
}

func (e *Engine) selectScenario(ctx context.Context, id string) error {
	if e.phase != PhaseIdle {
		return ErrInvalidTransition
	}

	sc, err := e.repo.Scenario(ctx, id)
	if errors.Is(err, content.ErrNotFound) {
		return ErrUnknownScenario
	}
	if err != nil {
		return fmt.Errorf("loading scenario %q: %w", id, err)
	}

	e.scenario = sc
	e.phase = PhaseSelectingDifficulty
	e.dirty = true
	return nil
}

func (e *Engine) confirmDifficulty(level acls.DifficultyLevel) error {
	if e.phase != PhaseSelectingDifficulty {
		return ErrInvalidTransition
	}
	d, ok := e.levels[level]
	if !ok {
		return ErrUnknownDifficulty
	}
	if _, ok := e.scenario.Step(e.scenario.InitialStep); !ok {
		e.logger.Error("scenario initial step missing",
			"scenario", e.scenario.ID, "step", e.scenario.InitialStep)
		return ErrUnknownStep
	}

	e.difficulty = &d
	e.views = shuffleScenario(e.rng, e.scenario)
	e.stepID = e.scenario.InitialStep
	e.score = 0
	e.history = []string{e.scenario.Title}
	e.success = false
	e.feedback = nil
	e.celebrateUntil = time.Time{}
	e.clock.Start(d.InitialTime)
	e.startTicker()
	e.phase = PhaseActive
	e.dirty = true
	return nil
}

func (e *Engine) submitDecision(decisionID string) (DecisionResult, error) {
	if e.phase != PhaseActive {
		return DecisionResult{}, ErrInvalidTransition
	}

	// Resolve against canonical content. Any mismatch between the graph
	// and itself is reported and absorbed without touching session state.
	step, ok := e.scenario.Step(e.stepID)
	if !ok {
		e.logger.Error("current step missing from scenario",
			"scenario", e.scenario.ID, "step", e.stepID)
		return DecisionResult{}, ErrUnknownStep
	}
	dec, ok := step.Decision(decisionID)
	if !ok {
		e.logger.Warn("decision not in current step",
			"scenario", e.scenario.ID, "step", e.stepID, "decision", decisionID)
		return DecisionResult{}, ErrUnknownDecision
	}

	out := dec.Outcome
	if !out.IsGameOver {
		if out.NextStep == "" {
			e.logger.Error("outcome has no next step and no game over",
				"scenario", e.scenario.ID, "step", e.stepID, "decision", decisionID)
			return DecisionResult{}, ErrBrokenOutcome
		}
		if _, ok := e.scenario.Step(out.NextStep); !ok {
			e.logger.Error("outcome references missing step",
				"scenario", e.scenario.ID, "step", e.stepID, "next", out.NextStep)
			return DecisionResult{}, ErrUnknownStep
		}
	}

	adjusted := AdjustedScore(out.ScoreChange, *e.difficulty, e.scenario.EffectiveComplexity())

	if out.IsGameOver {
		// Cancel the countdown before any other state change.
		e.stopTicker()
		e.clock.Stop()
	}

	e.history = append(e.history, dec.Text)
	e.score += adjusted

	msg := out.Feedback
	if out.ScoreChange != 0 {
		msg = fmt.Sprintf("%s (%+d points)", out.Feedback, adjusted)
	}
	kind := "error"
	if out.IsCorrect {
		kind = "success"
	}
	e.feedback = &Feedback{Message: msg, Kind: kind}

	if out.IsGameOver {
		e.phase = PhaseTerminal
		e.success = out.IsCorrect
		if e.success {
			e.celebrateUntil = time.Now().Add(celebrateFor)
		}
	} else {
		if out.AddTime > 0 {
			e.clock.AddTime(AdjustedTime(out.AddTime, *e.difficulty))
		}
		e.stepID = out.NextStep
	}

	e.dirty = true
	return DecisionResult{
		IsCorrect:   out.IsCorrect,
		ScoreChange: adjusted,
		Feedback:    msg,
		GameOver:    out.IsGameOver,
		Success:     out.IsGameOver && out.IsCorrect,
	}, nil
}

// tick advances the countdown by one second. On expiry the session fails:
// ticker cancelled, terminal with success=false, fixed timeout feedback.
func (e *Engine) tick() {
	if e.phase != PhaseActive {
		return
	}

	expired := e.clock.Tick()
	e.dirty = true
	if !expired {
		return
	}

	e.stopTicker()
	e.phase = PhaseTerminal
	e.success = false
	e.feedback = &Feedback{Message: timeoutMessage, Kind: "error"}
}

func (e *Engine) reset() {
	e.stopTicker()
	e.clock.Stop()
	e.phase = PhaseIdle
	e.scenario = nil
	e.difficulty = nil
	e.stepID = ""
	e.views = nil
	e.clock = Countdown{}
	e.score = 0
	e.history = nil
	e.success = false
	e.feedback = nil
	e.celebrateUntil = time.Time{}
	e.dirty = true
}

func (e *Engine) retry() error {
	if e.phase != PhaseTerminal {
		return ErrInvalidTransition
	}
	sc := e.scenario
	e.reset()
	e.scenario = sc
	e.phase = PhaseSelectingDifficulty
	return nil
}

func (e *Engine) startTicker() {
	e.stopTicker()
	if e.tickEvery > 0 {
		e.ticker = time.NewTicker(e.tickEvery)
	}
}

func (e *Engine) stopTicker() {
	if e.ticker != nil {
		e.ticker.Stop()
		e.ticker = nil
	}
}
