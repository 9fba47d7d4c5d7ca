package engine

import (
	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/domain"
)

// Verdict thresholds over the clamped score, left-inclusive:
// [0, 0.4) safe, [0.4, 0.7) suspicious, [0.7, 1] high_risk.
const (
	thresholdSuspicious = 0.4
	thresholdHighRisk   = 0.7
)

// Aggregate folds feature contributions into a score clamped to [0,1] and the
// verdict it maps to. An empty contribution set scores zero and reads safe.
func Aggregate(contributions []domain.FeatureContribution) (float64, domain.Label) {
	sum := 0.0
	for _, c := range contributions {
		sum += c.Contribution
	}
	score := clamp01(sum)
	return score, labelFor(score)
}

func labelFor(score float64) domain.Label {
	switch {
	case score >= thresholdHighRisk:
		return domain.LabelHighRisk
	case score >= thresholdSuspicious:
		return domain.LabelSuspicious
	default:
		return domain.LabelSafe
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
