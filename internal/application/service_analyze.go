package application

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/domain"
	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/ports"
)

// Analyze validates the submission and produces a verdict. Validation failure
// is the only path that returns an error; once a listing is well-formed the
// caller always gets a result, remote backend or not.
func (s *Service) Analyze(ctx context.Context, in domain.ListingInput) (domain.AnalysisResult, error) {
	listing, err := in.Validate()
	if err != nil {
		return domain.AnalysisResult{}, err
	}
	return s.analyzeListing(ctx, listing), nil
}

// AnalyzeBatch scores listings in order. Items are isolated: a malformed
// listing yields an item-level error in its position and the rest proceed.
func (s *Service) AnalyzeBatch(ctx context.Context, inputs []domain.ListingInput) BatchResponse {
	items := make([]BatchItem, len(inputs))
	for i, in := range inputs {
		res, err := s.Analyze(ctx, in)
		if err != nil {
			code := "INTERNAL_ERROR"
			if errors.Is(err, domain.ErrInvalidInput) {
				code = "VALIDATION_ERROR"
			}
			items[i] = BatchItem{Error: &ItemError{Code: code, Message: err.Error()}}
			continue
		}
		result := res
		items[i] = BatchItem{Result: &result}
	}
	return BatchResponse{Results: items, Count: len(items)}
}

func (s *Service) analyzeListing(ctx context.Context, listing domain.Listing) domain.AnalysisResult {
	cacheKey := verdictCacheKey(listing)
	if cached, ok := s.cachedVerdict(ctx, cacheKey); ok {
		return cached
	}

	// Two-stage pipeline: a single bounded remote attempt, then an explicit
	// branch to the local engine on any non-success outcome.
	result, remote := s.remoteVerdict(ctx, listing)
	if !remote {
		result = s.engine.Score(listing)
	}

	s.storeVerdict(ctx, cacheKey, result)
	s.recordAnalysis(ctx, listing, result)
	s.publishAnalyzed(ctx, listing, result)
	return result
}

func (s *Service) remoteVerdict(ctx context.Context, listing domain.Listing) (domain.AnalysisResult, bool) {
	if s.inference == nil {
		return domain.AnalysisResult{}, false
	}
	inferCtx, cancel := context.WithTimeout(ctx, s.cfg.InferTimeout)
	defer cancel()
	result, err := s.inference.Infer(inferCtx, listing)
	if err != nil {
		s.logger.WarnContext(ctx, "inference backend unavailable, falling back to heuristic engine",
			"module", "application.analyze",
			"error", err,
		)
		return domain.AnalysisResult{}, false
	}
	return result, true
}

func (s *Service) cachedVerdict(ctx context.Context, key string) (domain.AnalysisResult, bool) {
	if s.cache == nil {
		return domain.AnalysisResult{}, false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil || raw == "" {
		return domain.AnalysisResult{}, false
	}
	var cached domain.AnalysisResult
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return domain.AnalysisResult{}, false
	}
	return cached, true
}

func (s *Service) storeVerdict(ctx context.Context, key string, result domain.AnalysisResult) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.cfg.VerdictCacheTTL); err != nil {
		s.logger.WarnContext(ctx, "verdict cache write failed", "module", "application.analyze", "error", err)
	}
}

func (s *Service) recordAnalysis(ctx context.Context, listing domain.Listing, result domain.AnalysisResult) {
	if s.audit == nil {
		return
	}
	rec := ports.AnalysisRecord{
		AnalysisID: uuid.New(),
		Listing:    listing,
		Result:     result,
		CreatedAt:  s.nowFn(),
	}
	if err := s.audit.Record(ctx, rec); err != nil {
		s.logger.ErrorContext(ctx, "analysis audit write failed", "module", "application.analyze", "error", err)
	}
}

type analyzedEvent struct {
	Score        float64      `json:"score"`
	Label        domain.Label `json:"label"`
	Category     string       `json:"category"`
	Country      string       `json:"country"`
	Seller       string       `json:"seller"`
	ModelVersion string       `json:"model_version"`
	Timestamp    string       `json:"timestamp"`
}

func (s *Service) publishAnalyzed(ctx context.Context, listing domain.Listing, result domain.AnalysisResult) {
	if s.events == nil {
		return
	}
	payload, err := json.Marshal(analyzedEvent{
		Score:        result.Score,
		Label:        result.Label,
		Category:     listing.Category,
		Country:      listing.Country,
		Seller:       listing.Seller,
		ModelVersion: result.ModelVersion,
		Timestamp:    result.Timestamp.Format("2006-01-02T15:04:05.000Z07:00"),
	})
	if err != nil {
		return
	}
	if err := s.events.Publish(ctx, s.cfg.AnalyzedEventType, payload, listing.Category); err != nil {
		s.logger.WarnContext(ctx, "analyzed event publish failed", "module", "application.analyze", "error", err)
	}
}

// verdictCacheKey hashes the canonical JSON form of the listing. Scoring is
// deterministic in listing content, so content-equal listings share a verdict.
func verdictCacheKey(listing domain.Listing) string {
	raw, err := json.Marshal(listing)
	if err != nil {
		return "m12:verdict:unhashable"
	}
	sum := sha256.Sum256(raw)
	return "m12:verdict:" + hex.EncodeToString(sum[:])
}
