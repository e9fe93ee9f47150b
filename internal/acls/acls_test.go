package acls

import "testing"

func TestEffectiveComplexity(t *testing.T) {
	tests := []struct {
		name       string
		complexity int
		want       int
	}{
		{"unset uses default", 0, ComplexityDefault},
		{"in range passes through", 7, 7},
		{"below range clamps to min", -4, ComplexityMin},
		{"above range clamps to max", 42, ComplexityMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Scenario{Complexity: tt.complexity}
			if got := s.EffectiveComplexity(); got != tt.want {
				t.Errorf("EffectiveComplexity() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStepAndDecisionLookup(t *testing.T) {
	s := Scenario{
		Steps: []Step{
			{ID: "triage", Decisions: []Decision{{ID: "assess"}, {ID: "defer"}}},
			{ID: "treatment"},
		},
	}

	step, ok := s.Step("triage")
	if !ok || step.ID != "triage" {
		t.Fatalf("Step(triage) = %v, %v", step.ID, ok)
	}
	if _, ok := s.Step("discharge"); ok {
		t.Error("Step(discharge) found, want miss")
	}

	dec, ok := step.Decision("defer")
	if !ok || dec.ID != "defer" {
		t.Fatalf("Decision(defer) = %v, %v", dec.ID, ok)
	}
	if _, ok := step.Decision("intubate"); ok {
		t.Error("Decision(intubate) found, want miss")
	}
}

func TestSummaryAppliesEffectiveComplexity(t *testing.T) {
	s := Scenario{ID: "stemi", Title: "STEMI", Description: "Chest pain", Complexity: 0}
	sum := s.Summary()
	if sum.ID != "stemi" || sum.Title != "STEMI" || sum.Description != "Chest pain" {
		t.Errorf("Summary() = %+v", sum)
	}
	if sum.Complexity != ComplexityDefault {
		t.Errorf("Complexity = %d, want default %d", sum.Complexity, ComplexityDefault)
	}
}

func TestDifficultiesReturnsFreshMap(t *testing.T) {
	a := Difficulties()
	a[Beginner] = DifficultySettings{}
	b := Difficulties()
	if b[Beginner].ScoreMultiplier != 1.0 {
		t.Error("mutating a returned table leaked into later calls")
	}
	for _, level := range []DifficultyLevel{Beginner, Intermediate, Advanced} {
		d, ok := b[level]
		if !ok {
			t.Fatalf("missing tier %s", level)
		}
		if d.InitialTime != 60 {
			t.Errorf("%s initial time = %d, want 60", level, d.InitialTime)
		}
	}
}
