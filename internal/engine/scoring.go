package engine

import (
	"math"

	"github.com/tmcalumni/aclstrainer/internal/acls"
)

// AdjustedScore maps a decision's base score delta to the points actually
// awarded, scaling by the difficulty's score multiplier and the scenario's
// complexity. Complexity on the 1-10 scale is normalized to a 0.84-1.2
// factor; complexity 5 yields exactly 1.0, so at that midpoint only the
// difficulty multiplier applies. Out-of-range complexity is clamped first.
//
// Rounding is half away from zero (math.Round). A base of 0 is always 0.
func AdjustedScore(base int, d acls.DifficultySettings, complexity int) int {
	if base == 0 {
		return 0
	}
	if complexity < acls.ComplexityMin {
		complexity = acls.ComplexityMin
	}
	if complexity > acls.ComplexityMax {
		complexity = acls.ComplexityMax
	}

	factor := 0.8 + float64(complexity)/25
	return int(math.Round(float64(base) * d.ScoreMultiplier * factor))
}

// AdjustedTime maps a base bonus-time amount to the seconds actually added,
// scaling by the difficulty's time multiplier. All shipped tiers use 1.0,
// but the multiplier is applied generically.
func AdjustedTime(base int, d acls.DifficultySettings) int {
	return int(math.Round(float64(base) * d.TimeMultiplier))
}
