package engine

import (
	"sort"

	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/domain"
)

// Explain filters out non-firing signals and ranks the rest by contribution,
// descending. The sort is stable over the extractor declaration order, so
// identical inputs always produce identical explanation ordering. Each entry
// keeps its raw contribution and adds a relative-impact fraction (contribution
// over the mean of retained contributions) for proportional display.
func Explain(contributions []domain.FeatureContribution) []domain.ExplanationEntry {
	retained := make([]domain.FeatureContribution, 0, len(contributions))
	total := 0.0
	for _, c := range contributions {
		if c.Contribution > 0 {
			retained = append(retained, c)
			total += c.Contribution
		}
	}
	if len(retained) == 0 {
		return []domain.ExplanationEntry{}
	}

	sort.SliceStable(retained, func(i, j int) bool {
		return retained[i].Contribution > retained[j].Contribution
	})

	mean := total / float64(len(retained))
	entries := make([]domain.ExplanationEntry, 0, len(retained))
	for _, c := range retained {
		entries = append(entries, domain.ExplanationEntry{
			Feature:        c.Feature,
			Contribution:   c.Contribution,
			RelativeImpact: c.Contribution / mean,
		})
	}
	return entries
}
