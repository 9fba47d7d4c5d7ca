// Package inference is the HTTP adapter for the remote scoring backend.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/domain"
)

// Client calls the model-serving backend. One attempt per call, no retries:
// the caller owns the timeout and falls back to the local engine on failure,
// so stacking retries here would only eat into that budget.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Infer posts the listing to POST /infer and decodes the AnalysisResult body.
// Transport errors, non-2xx statuses and undecodable bodies all wrap
// domain.ErrBackendUnavailable.
func (c *Client) Infer(ctx context.Context, listing domain.Listing) (domain.AnalysisResult, error) {
	body, err := json.Marshal(listing)
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("encode listing: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/infer", bytes.NewReader(body))
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("build infer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.AnalysisResult{}, fmt.Errorf("%w: infer returned status %d", domain.ErrBackendUnavailable, resp.StatusCode)
	}
	var result domain.AnalysisResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: decode infer response: %v", domain.ErrBackendUnavailable, err)
	}
	return result, nil
}

// Healthy probes GET /health, the backend's liveness contract.
func (c *Client) Healthy(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: health returned status %d", domain.ErrBackendUnavailable, resp.StatusCode)
	}
	return nil
}
