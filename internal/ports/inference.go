package ports

import (
	"context"

	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/domain"
)

// InferenceClient talks to the remote scoring backend. Implementations make at
// most one attempt per call and honor context cancellation; any failure is
// reported as an error wrapping domain.ErrBackendUnavailable so the caller can
// branch to the local engine.
type InferenceClient interface {
	Infer(ctx context.Context, listing domain.Listing) (domain.AnalysisResult, error)
	Healthy(ctx context.Context) error
}
