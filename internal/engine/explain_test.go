package engine

import (
	"testing"

	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/domain"
)

func TestExplainFiltersAndSorts(t *testing.T) {
	t.Parallel()

	entries := Explain([]domain.FeatureContribution{
		{Feature: "a", Contribution: 0.1},
		{Feature: "b", Contribution: 0},
		{Feature: "c", Contribution: 0.3},
		{Feature: "d", Contribution: -0.2},
		{Feature: "e", Contribution: 0.2},
	})

	want := []string{"c", "e", "a"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, feature := range want {
		if entries[i].Feature != feature {
			t.Fatalf("entry %d = %q, want %q", i, entries[i].Feature, feature)
		}
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Contribution > entries[i-1].Contribution {
			t.Fatalf("entries not sorted descending at %d", i)
		}
	}
}

func TestExplainTieBreakIsDeclarationOrder(t *testing.T) {
	t.Parallel()

	entries := Explain([]domain.FeatureContribution{
		{Feature: "first", Contribution: 0.1},
		{Feature: "second", Contribution: 0.1},
		{Feature: "third", Contribution: 0.1},
	})
	want := []string{"first", "second", "third"}
	for i, feature := range want {
		if entries[i].Feature != feature {
			t.Fatalf("tie-break broke declaration order: entry %d = %q, want %q", i, entries[i].Feature, feature)
		}
	}
}

func TestExplainRelativeImpact(t *testing.T) {
	t.Parallel()

	entries := Explain([]domain.FeatureContribution{
		{Feature: "a", Contribution: 0.3},
		{Feature: "b", Contribution: 0.1},
	})
	// mean is 0.2, so impacts are 1.5 and 0.5; raw values stay untouched.
	if !almostEqual(entries[0].RelativeImpact, 1.5) || !almostEqual(entries[1].RelativeImpact, 0.5) {
		t.Fatalf("relative impacts = %v, %v, want 1.5, 0.5", entries[0].RelativeImpact, entries[1].RelativeImpact)
	}
	if !almostEqual(entries[0].Contribution, 0.3) || !almostEqual(entries[1].Contribution, 0.1) {
		t.Fatalf("raw contributions were not preserved")
	}
}

func TestExplainEmpty(t *testing.T) {
	t.Parallel()

	if entries := Explain(nil); len(entries) != 0 {
		t.Fatalf("expected empty explanation, got %d entries", len(entries))
	}
	if entries := Explain(contribs(0, 0)); len(entries) != 0 {
		t.Fatalf("all-zero contributions must explain to empty, got %d entries", len(entries))
	}
}
