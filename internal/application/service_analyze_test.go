package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/domain"
	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/ports"
)

func strPtr(v string) *string   { return &v }
func f64Ptr(v float64) *float64 { return &v }
func intPtr(v int) *int         { return &v }

func validInput() domain.ListingInput {
	return domain.ListingInput{
		Title:       strPtr("iPhone 15 Pro Max"),
		Price:       f64Ptr(1199.99),
		Seller:      strPtr("TechMart"),
		Rating:      f64Ptr(4.8),
		ReviewCount: intPtr(5234),
		Category:    "electronics",
		Country:     "US",
		Images:      []string{"x.jpg"},
	}
}

type stubInference struct {
	result domain.AnalysisResult
	err    error
	block  bool
	calls  int
}

func (s *stubInference) Infer(ctx context.Context, _ domain.Listing) (domain.AnalysisResult, error) {
	s.calls++
	if s.block {
		<-ctx.Done()
		return domain.AnalysisResult{}, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, ctx.Err())
	}
	return s.result, s.err
}

func (s *stubInference) Healthy(context.Context) error { return s.err }

type memoryCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryCache() *memoryCache { return &memoryCache{data: map[string]string{}} }

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data[key], nil
}

func (c *memoryCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

type memoryAudit struct {
	mu   sync.Mutex
	recs []ports.AnalysisRecord
}

func (a *memoryAudit) Record(_ context.Context, rec ports.AnalysisRecord) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.recs = append(a.recs, rec)
	return nil
}

func (a *memoryAudit) GetByID(context.Context, uuid.UUID) (ports.AnalysisRecord, error) {
	return ports.AnalysisRecord{}, domain.ErrNotFound
}

func (a *memoryAudit) ListRecent(context.Context, int) ([]ports.AnalysisRecord, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]ports.AnalysisRecord(nil), a.recs...), nil
}

func TestAnalyzeRejectsInvalidInput(t *testing.T) {
	t.Parallel()
	svc := NewService(Dependencies{})

	in := validInput()
	in.Title = nil
	if _, err := svc.Analyze(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	in = validInput()
	in.Price = nil
	if _, err := svc.Analyze(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing price, got %v", err)
	}
}

func TestAnalyzeUsesRemoteBackendWhenHealthy(t *testing.T) {
	t.Parallel()
	remote := &stubInference{result: domain.AnalysisResult{
		Score: 0.9, Label: domain.LabelHighRisk, ModelVersion: "v0.1",
		Explanation: []domain.ExplanationEntry{}, Timestamp: time.Now().UTC(),
	}}
	svc := NewService(Dependencies{Inference: remote})

	res, err := svc.Analyze(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ModelVersion != "v0.1" || res.Label != domain.LabelHighRisk {
		t.Fatalf("expected remote verdict to pass through, got %+v", res)
	}
	if remote.calls != 1 {
		t.Fatalf("expected one remote attempt, got %d", remote.calls)
	}
}

func TestAnalyzeFallsBackWhenBackendErrors(t *testing.T) {
	t.Parallel()
	remote := &stubInference{err: fmt.Errorf("%w: status 503", domain.ErrBackendUnavailable)}
	svc := NewService(Dependencies{Inference: remote})

	res, err := svc.Analyze(context.Background(), validInput())
	if err != nil {
		t.Fatalf("fallback must not surface an error, got %v", err)
	}
	if res.ModelVersion != "heuristic-v0.1" {
		t.Fatalf("expected heuristic model version, got %q", res.ModelVersion)
	}
	if res.Score < 0 || res.Score > 1 {
		t.Fatalf("fallback score out of bounds: %v", res.Score)
	}
	if remote.calls != 1 {
		t.Fatalf("expected exactly one remote attempt, got %d", remote.calls)
	}
}

func TestAnalyzeFallsBackWithinTimeout(t *testing.T) {
	t.Parallel()
	remote := &stubInference{block: true}
	svc := NewService(Dependencies{
		Config:    Config{InferTimeout: 20 * time.Millisecond},
		Inference: remote,
	})

	start := time.Now()
	res, err := svc.Analyze(context.Background(), validInput())
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ModelVersion != "heuristic-v0.1" {
		t.Fatalf("expected heuristic fallback, got %q", res.ModelVersion)
	}
	if elapsed > time.Second {
		t.Fatalf("fallback took %v, expected the timeout bound plus small overhead", elapsed)
	}
}

func TestAnalyzeServesCachedVerdict(t *testing.T) {
	t.Parallel()
	cache := newMemoryCache()
	remote := &stubInference{err: errors.New("down")}
	svc := NewService(Dependencies{Inference: remote, Cache: cache})

	first, err := svc.Analyze(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Analyze(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Score != second.Score || first.Label != second.Label {
		t.Fatalf("cached verdict differs: %+v vs %+v", first, second)
	}
	if remote.calls != 1 {
		t.Fatalf("second call should hit the cache, remote calls = %d", remote.calls)
	}
}

func TestAnalyzeWritesAuditRecord(t *testing.T) {
	t.Parallel()
	audit := &memoryAudit{}
	svc := NewService(Dependencies{Audit: audit})

	res, err := svc.Analyze(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(audit.recs) != 1 {
		t.Fatalf("expected one audit record, got %d", len(audit.recs))
	}
	rec := audit.recs[0]
	if rec.Result.Score != res.Score || rec.Result.Label != res.Label {
		t.Fatalf("audit record verdict mismatch: %+v vs %+v", rec.Result, res)
	}
	if rec.Listing.Title != "iPhone 15 Pro Max" {
		t.Fatalf("audit record kept wrong listing: %+v", rec.Listing)
	}
	if rec.AnalysisID == uuid.Nil {
		t.Fatalf("audit record missing analysis id")
	}
}

func TestAnalyzeBatchIsolatesFailures(t *testing.T) {
	t.Parallel()
	svc := NewService(Dependencies{})

	bad := validInput()
	bad.Seller = nil
	resp := svc.AnalyzeBatch(context.Background(), []domain.ListingInput{validInput(), bad, validInput()})

	if resp.Count != 3 || len(resp.Results) != 3 {
		t.Fatalf("expected three positional results, got %+v", resp)
	}
	if resp.Results[0].Result == nil || resp.Results[2].Result == nil {
		t.Fatalf("valid items must produce results")
	}
	if resp.Results[1].Error == nil || resp.Results[1].Error.Code != "VALIDATION_ERROR" {
		t.Fatalf("invalid item must carry a validation error, got %+v", resp.Results[1])
	}
	if resp.Results[1].Result != nil {
		t.Fatalf("failed item must not carry a result")
	}
}
