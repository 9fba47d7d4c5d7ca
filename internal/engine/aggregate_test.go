package engine

import (
	"testing"

	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/domain"
)

func contribs(values ...float64) []domain.FeatureContribution {
	out := make([]domain.FeatureContribution, 0, len(values))
	for _, v := range values {
		out = append(out, domain.FeatureContribution{Feature: "f", Contribution: v})
	}
	return out
}

func TestAggregateEmpty(t *testing.T) {
	t.Parallel()

	score, label := Aggregate(nil)
	if score != 0 {
		t.Fatalf("empty contributions: score = %v, want 0", score)
	}
	if label != domain.LabelSafe {
		t.Fatalf("empty contributions: label = %q, want safe", label)
	}
}

func TestAggregateClampsToOne(t *testing.T) {
	t.Parallel()

	score, label := Aggregate(contribs(0.6, 0.6, 0.6))
	if score != 1 {
		t.Fatalf("score = %v, want 1", score)
	}
	if label != domain.LabelHighRisk {
		t.Fatalf("label = %q, want high_risk", label)
	}
}

func TestAggregateThresholds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  domain.Label
	}{
		{0, domain.LabelSafe},
		{0.39, domain.LabelSafe},
		{0.4, domain.LabelSuspicious},
		{0.69, domain.LabelSuspicious},
		{0.7, domain.LabelHighRisk},
		{1, domain.LabelHighRisk},
	}
	for _, tc := range tests {
		_, label := Aggregate(contribs(tc.score))
		if label != tc.want {
			t.Fatalf("score %v: label = %q, want %q", tc.score, label, tc.want)
		}
	}
}

func TestLabelSeverityOrdering(t *testing.T) {
	t.Parallel()

	if !(domain.LabelSafe.Severity() < domain.LabelSuspicious.Severity() &&
		domain.LabelSuspicious.Severity() < domain.LabelHighRisk.Severity()) {
		t.Fatalf("label severities out of order")
	}
}
