package producer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/domain"
)

// Stats accumulates verdict counts across a producer run.
type Stats struct {
	Total   int
	ByLabel map[domain.Label]int
	Errors  int
}

// Runner posts generated listings to the analyze endpoint at a fixed
// interval until the duration elapses or the context is cancelled.
type Runner struct {
	generator  *Generator
	httpClient *http.Client
	logger     *slog.Logger
	apiURL     string
	interval   time.Duration
	duration   time.Duration
}

type RunnerOptions struct {
	APIURL   string
	Interval time.Duration
	Duration time.Duration
	FakeRate float64
	Seed     int64
	Logger   *slog.Logger
}

func NewRunner(opts RunnerOptions) *Runner {
	apiURL := opts.APIURL
	if apiURL == "" {
		apiURL = "http://localhost:8080/v1/analyze"
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = 3 * time.Second
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		generator:  NewGenerator(opts.Seed, opts.FakeRate),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
		apiURL:     strings.TrimRight(apiURL, "/"),
		interval:   interval,
		duration:   opts.Duration,
	}
}

// Run drives the generator until duration elapses (zero means run until the
// context is cancelled) and returns the verdict tally.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	stats := Stats{ByLabel: make(map[domain.Label]int)}
	if r.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.duration)
		defer cancel()
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		listing := r.generator.Next()
		stats.Total++
		result, err := r.send(ctx, listing)
		if err != nil {
			if ctx.Err() != nil {
				stats.Total--
				return stats, nil
			}
			stats.Errors++
			r.logger.WarnContext(ctx, "analyze request failed",
				"title", listing.Title,
				"error", err,
			)
		} else {
			stats.ByLabel[result.Label]++
			r.logger.InfoContext(ctx, "listing analyzed",
				"title", listing.Title,
				"price", listing.Price,
				"seller", listing.Seller,
				"label", string(result.Label),
				"score", result.Score,
			)
		}

		select {
		case <-ctx.Done():
			return stats, nil
		case <-ticker.C:
		}
	}
}

func (r *Runner) send(ctx context.Context, listing domain.Listing) (domain.AnalysisResult, error) {
	body, err := json.Marshal(listing)
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("encode listing: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.apiURL, bytes.NewReader(body))
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("post listing: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.AnalysisResult{}, fmt.Errorf("analyze returned status %d", resp.StatusCode)
	}
	var result domain.AnalysisResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("decode verdict: %w", err)
	}
	return result, nil
}
