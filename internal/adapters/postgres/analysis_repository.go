package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/domain"
	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/ports"
	"gorm.io/gorm"
)

type analysisRepository struct {
	db *gorm.DB
}

// Record writes the listing and its verdict atomically; the audit log either
// has both sides of an analysis or neither.
func (r *analysisRepository) Record(ctx context.Context, rec ports.AnalysisRecord) error {
	listing, analysis, err := toModels(rec)
	if err != nil {
		return err
	}
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&listing).Error; err != nil {
			return err
		}
		return tx.Create(&analysis).Error
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

func (r *analysisRepository) GetByID(ctx context.Context, analysisID uuid.UUID) (ports.AnalysisRecord, error) {
	var analysis analysisModel
	if err := r.db.WithContext(ctx).Where("analysis_id = ?", analysisID).Take(&analysis).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.AnalysisRecord{}, domain.ErrNotFound
		}
		return ports.AnalysisRecord{}, err
	}
	var listing listingModel
	if err := r.db.WithContext(ctx).Where("listing_id = ?", analysis.ListingID).Take(&listing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.AnalysisRecord{}, domain.ErrNotFound
		}
		return ports.AnalysisRecord{}, err
	}
	return toRecord(analysis, listing)
}

func (r *analysisRepository) ListRecent(ctx context.Context, limit int) ([]ports.AnalysisRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	var analyses []analysisModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&analyses).Error; err != nil {
		return nil, err
	}
	records := make([]ports.AnalysisRecord, 0, len(analyses))
	for _, analysis := range analyses {
		var listing listingModel
		if err := r.db.WithContext(ctx).Where("listing_id = ?", analysis.ListingID).Take(&listing).Error; err != nil {
			continue
		}
		rec, err := toRecord(analysis, listing)
		if err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
