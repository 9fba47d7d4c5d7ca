// Package engine implements the deterministic heuristic scorer: a set of
// independent feature extractors, an aggregator that folds their contributions
// into a clamped score and verdict, and an explainer that ranks the signals
// for display. Everything here is pure; the same listing always produces the
// same result.
package engine

import (
	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/domain"
)

// Extractor maps a listing to zero or more named feature contributions.
// Extractors are total and side-effect free: they never fail, share no state,
// and may run in any order. A signal that does not fire is reported with a
// zero contribution so feature identifiers stay stable across calls.
type Extractor interface {
	Name() string
	Extract(listing domain.Listing) []domain.FeatureContribution
}

// PriceRange bounds expected prices for a category.
type PriceRange struct {
	Low  float64
	High float64
}

// Median is the midpoint of the range, the reference point for deviation.
func (r PriceRange) Median() float64 {
	return (r.Low + r.High) / 2
}

// DefaultExtractors returns the reference extractor set in declaration order.
// The order is the stable tie-break for explanation ranking.
func DefaultExtractors() []Extractor {
	return []Extractor{
		NewSuspiciousWordExtractor(defaultSuspiciousWords(), suspiciousWordWeight),
		NewPriceDeviationExtractor(defaultPriceRanges(), defaultPriceRange()),
		NewRatingAnomalyExtractor(),
		NewSellerNameExtractor(defaultGenericSellerTerms()),
		NewImageCountExtractor(),
	}
}

// Default vocabularies and price tables are function-returned so each
// extractor owns a fresh copy; nothing here holds mutable package state.
func defaultSuspiciousWords() []string {
	return []string{"free", "wow", "amazing", "limited", "urgent", "exclusive", "fake", "replica"}
}

func defaultGenericSellerTerms() []string {
	return []string{"seller", "shop", "store", "mall"}
}

// Market-median price ranges per category. Unknown categories fall back to
// defaultPriceRange.
func defaultPriceRanges() map[string]PriceRange {
	return map[string]PriceRange{
		"electronics": {Low: 200, High: 2000},
		"clothing":    {Low: 10, High: 200},
		"jewelry":     {Low: 50, High: 5000},
		"watches":     {Low: 100, High: 10000},
		"books":       {Low: 5, High: 50},
	}
}

func defaultPriceRange() PriceRange {
	return PriceRange{Low: 1, High: 10000}
}

const suspiciousWordWeight = 0.15
