package application

import (
	"time"

	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/domain"
)

type Config struct {
	ServiceName       string
	InferTimeout      time.Duration
	VerdictCacheTTL   time.Duration
	AnalyzedEventType string
}

// ItemError is a per-item failure inside a batch response.
type ItemError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// BatchItem holds either a result or an item-level error, never both. Items
// keep the position of the listing that produced them.
type BatchItem struct {
	Result *domain.AnalysisResult `json:"result,omitempty"`
	Error  *ItemError             `json:"error,omitempty"`
}

type BatchResponse struct {
	Results []BatchItem `json:"results"`
	Count   int         `json:"count"`
}
