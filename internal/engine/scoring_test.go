package engine

import (
	"testing"

	"github.com/tmcalumni/aclstrainer/internal/acls"
)

func TestAdjustedScore(t *testing.T) {
	levels := acls.Difficulties()

	tests := []struct {
		name       string
		base       int
		level      acls.DifficultyLevel
		complexity int
		want       int
	}{
		{"zero base beginner", 0, acls.Beginner, 5, 0},
		{"zero base advanced", 0, acls.Advanced, 10, 0},
		{"complexity 5 is identity for beginner", 10, acls.Beginner, 5, 10},
		{"complexity 5 applies only the multiplier", 10, acls.Intermediate, 5, 15},
		{"vf-arrest start-cpr on beginner", -5, acls.Beginner, 6, -5},
		{"vf-arrest check-pulse on advanced", 10, acls.Advanced, 6, 21},
		{"low complexity shrinks the delta", 10, acls.Beginner, 1, 8},
		{"high complexity grows the delta", 10, acls.Beginner, 10, 12},
		{"complexity below range is clamped to 1", 10, acls.Beginner, -3, 8},
		{"complexity above range is clamped to 10", 10, acls.Beginner, 99, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := levels[tt.level]
			got := AdjustedScore(tt.base, d, tt.complexity)
			if got != tt.want {
				t.Errorf("AdjustedScore(%d, %s, %d) = %d, want %d",
					tt.base, tt.level, tt.complexity, got, tt.want)
			}
			// Deterministic for identical inputs.
			if again := AdjustedScore(tt.base, d, tt.complexity); again != got {
				t.Errorf("AdjustedScore not deterministic: %d then %d", got, again)
			}
		})
	}
}

func TestAdjustedTime(t *testing.T) {
	levels := acls.Difficulties()

	// All shipped tiers use multiplier 1.0.
	for level, d := range levels {
		if got := AdjustedTime(10, d); got != 10 {
			t.Errorf("AdjustedTime(10, %s) = %d, want 10", level, got)
		}
	}

	// The multiplier must still apply generically for future tiers.
	custom := acls.DifficultySettings{TimeMultiplier: 1.5}
	if got := AdjustedTime(10, custom); got != 15 {
		t.Errorf("AdjustedTime(10, x1.5) = %d, want 15", got)
	}
	half := acls.DifficultySettings{TimeMultiplier: 0.5}
	if got := AdjustedTime(7, half); got != 4 {
		t.Errorf("AdjustedTime(7, x0.5) = %d, want 4", got)
	}
}
