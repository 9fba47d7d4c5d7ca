package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/domain"
)

// AnalysisRecord is one audit-log entry: the listing as submitted plus the
// verdict produced for it.
type AnalysisRecord struct {
	AnalysisID uuid.UUID
	Listing    domain.Listing
	Result     domain.AnalysisResult
	CreatedAt  time.Time
}

// AnalysisRepository persists the analysis audit log. Writes are best-effort
// from the caller's perspective: a failed write never fails the analysis.
type AnalysisRepository interface {
	Record(ctx context.Context, rec AnalysisRecord) error
	GetByID(ctx context.Context, analysisID uuid.UUID) (AnalysisRecord, error)
	ListRecent(ctx context.Context, limit int) ([]AnalysisRecord, error)
}
