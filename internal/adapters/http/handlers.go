package http

import (
	"encoding/json"
	"net/http"

	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/domain"
)

const maxBodyBytes = 1 << 20

// analyze scores a single listing. The response body is the AnalysisResult
// itself; the enveloped error shape is reserved for failures.
func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	var in domain.ListingInput
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json body")
		return
	}
	result, err := h.service.Analyze(r.Context(), in)
	if err != nil {
		status, code, msg := mapDomainError(err)
		writeError(w, status, code, msg)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// analyzeBatch scores an ordered sequence of listings. Results hold positions;
// a malformed item carries an item-level error and never aborts its siblings.
func (h *Handler) analyzeBatch(w http.ResponseWriter, r *http.Request) {
	var inputs []domain.ListingInput
	r.Body = http.MaxBytesReader(w, r.Body, 8*maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json body")
		return
	}
	writeJSON(w, http.StatusOK, h.service.AnalyzeBatch(r.Context(), inputs))
}
