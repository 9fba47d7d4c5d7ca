package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/application"
	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/domain"
)

func testRouter() http.Handler {
	svc := application.NewService(application.Dependencies{})
	return NewRouter(NewHandler(svc))
}

const legitListing = `{
	"title": "iPhone 15 Pro Max", "price": 1199.99, "seller": "TechMart",
	"rating": 4.8, "review_count": 5234, "category": "electronics",
	"country": "US", "images": ["x.jpg"]
}`

func TestAnalyzeEndpoint(t *testing.T) {
	t.Parallel()
	router := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(legitListing))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var res domain.AnalysisResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Label != domain.LabelSafe {
		t.Fatalf("label = %q, want safe", res.Label)
	}
	if res.ModelVersion == "" || res.Timestamp.IsZero() {
		t.Fatalf("response missing provenance fields: %+v", res)
	}
}

func TestAnalyzeEndpointRejectsMissingFields(t *testing.T) {
	t.Parallel()
	router := testRouter()

	body := `{"title": "Widget", "price": 10}`
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var apiErr apiError
	if err := json.Unmarshal(rec.Body.Bytes(), &apiErr); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
}

func TestAnalyzeEndpointRejectsMalformedJSON(t *testing.T) {
	t.Parallel()
	router := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(`{"title":`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeBatchEndpoint(t *testing.T) {
	t.Parallel()
	router := testRouter()

	body := "[" + legitListing + `, {"title": "Broken"}]`
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze/batch", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp application.BatchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 2 {
		t.Fatalf("count = %d, want 2", resp.Count)
	}
	if resp.Results[0].Result == nil {
		t.Fatalf("first item should have scored: %+v", resp.Results[0])
	}
	if resp.Results[1].Error == nil || resp.Results[1].Error.Code != "VALIDATION_ERROR" {
		t.Fatalf("second item should fail validation in place: %+v", resp.Results[1])
	}
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()
	router := testRouter()

	for _, path := range []string{"/healthz", "/readyz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status = %d, want 200", path, rec.Code)
		}
	}
}
