package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/domain"
	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/ports"
)

func toModels(rec ports.AnalysisRecord) (listingModel, analysisModel, error) {
	images, err := json.Marshal(rec.Listing.Images)
	if err != nil {
		return listingModel{}, analysisModel{}, fmt.Errorf("encode images: %w", err)
	}
	explanation, err := json.Marshal(rec.Result.Explanation)
	if err != nil {
		return listingModel{}, analysisModel{}, fmt.Errorf("encode explanation: %w", err)
	}
	listingID := uuid.New()
	listing := listingModel{
		ListingID:   listingID,
		Title:       rec.Listing.Title,
		Description: rec.Listing.Description,
		Price:       rec.Listing.Price,
		Seller:      rec.Listing.Seller,
		Rating:      rec.Listing.Rating,
		ReviewCount: rec.Listing.ReviewCount,
		Category:    rec.Listing.Category,
		Country:     rec.Listing.Country,
		Images:      images,
		CreatedAt:   rec.CreatedAt,
	}
	analysis := analysisModel{
		AnalysisID:   rec.AnalysisID,
		ListingID:    listingID,
		Score:        rec.Result.Score,
		Label:        string(rec.Result.Label),
		Explanation:  explanation,
		ModelVersion: rec.Result.ModelVersion,
		ScoredAt:     rec.Result.Timestamp,
		CreatedAt:    rec.CreatedAt,
	}
	return listing, analysis, nil
}

func toRecord(a analysisModel, l listingModel) (ports.AnalysisRecord, error) {
	var images []string
	if len(l.Images) > 0 {
		if err := json.Unmarshal(l.Images, &images); err != nil {
			return ports.AnalysisRecord{}, fmt.Errorf("decode images: %w", err)
		}
	}
	var explanation []domain.ExplanationEntry
	if len(a.Explanation) > 0 {
		if err := json.Unmarshal(a.Explanation, &explanation); err != nil {
			return ports.AnalysisRecord{}, fmt.Errorf("decode explanation: %w", err)
		}
	}
	return ports.AnalysisRecord{
		AnalysisID: a.AnalysisID,
		Listing: domain.Listing{
			Title:       l.Title,
			Description: l.Description,
			Price:       l.Price,
			Seller:      l.Seller,
			Rating:      l.Rating,
			ReviewCount: l.ReviewCount,
			Category:    l.Category,
			Country:     l.Country,
			Images:      images,
		},
		Result: domain.AnalysisResult{
			Score:        a.Score,
			Label:        domain.Label(a.Label),
			Explanation:  explanation,
			ModelVersion: a.ModelVersion,
			Timestamp:    a.ScoredAt,
		},
		CreatedAt: a.CreatedAt,
	}, nil
}
