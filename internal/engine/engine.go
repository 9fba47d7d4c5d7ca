package engine

import (
	"time"

	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/domain"
)

// ModelVersion tags results produced by the heuristic engine, distinguishing
// them from verdicts delegated to a trained scoring backend.
const ModelVersion = "heuristic-v0.1"

// Engine runs the extractor set over a listing and assembles the verdict.
type Engine struct {
	extractors []Extractor
	version    string
	nowFn      func() time.Time
}

// New builds an engine over an explicit extractor set. Extractor order is the
// explanation tie-break order.
func New(version string, extractors ...Extractor) *Engine {
	return &Engine{
		extractors: extractors,
		version:    version,
		nowFn:      func() time.Time { return time.Now().UTC() },
	}
}

// Default returns the engine with the reference extractor set and tables.
func Default() *Engine {
	return New(ModelVersion, DefaultExtractors()...)
}

// Register adds an extractor. A registration whose Name matches an existing
// extractor replaces it in place, keeping its tie-break rank; a new name
// appends and ranks last on ties.
func (e *Engine) Register(x Extractor) {
	for i, existing := range e.extractors {
		if existing.Name() == x.Name() {
			e.extractors[i] = x
			return
		}
	}
	e.extractors = append(e.extractors, x)
}

// WithNow overrides the timestamp source, for deterministic tests.
func (e *Engine) WithNow(nowFn func() time.Time) *Engine {
	e.nowFn = nowFn
	return e
}

// Score computes the full analysis for one listing: one pass over the
// extractors, with the same contribution set feeding both the aggregator and
// the explainer. Pure and total for any well-formed listing.
func (e *Engine) Score(listing domain.Listing) domain.AnalysisResult {
	contributions := make([]domain.FeatureContribution, 0, len(e.extractors)+1)
	for _, x := range e.extractors {
		contributions = append(contributions, x.Extract(listing)...)
	}
	score, label := Aggregate(contributions)
	return domain.AnalysisResult{
		Score:        score,
		Label:        label,
		Explanation:  Explain(contributions),
		ModelVersion: e.version,
		Timestamp:    e.nowFn(),
	}
}
