package engine

import "errors"

var (
	// ErrUnknownScenario rejects a selection naming an id the repository
	// does not hold. The session stays in the selection phase.
	ErrUnknownScenario = errors.New("unknown scenario")

	// ErrUnknownDifficulty rejects a confirmation naming a level absent
	// from the difficulty table.
	ErrUnknownDifficulty = errors.New("unknown difficulty")

	// ErrUnknownStep and ErrUnknownDecision are defensive content-integrity
	// failures: the active scenario's graph disagrees with itself. The
	// submission is ignored and session state is left unchanged.
	ErrUnknownStep     = errors.New("unknown step")
	ErrUnknownDecision = errors.New("unknown decision")

	// ErrBrokenOutcome marks an outcome that neither advances nor ends the
	// run. Well-formed content never produces it; there is no safe default
	// transition to guess, so the submission is ignored.
	ErrBrokenOutcome = errors.New("outcome has neither next step nor game over")

	// ErrInvalidTransition rejects an intent that is not valid in the
	// session's current phase, e.g. submitting a decision while idle.
	ErrInvalidTransition = errors.New("invalid transition")
)
