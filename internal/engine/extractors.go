package engine

import (
	"math"
	"strings"

	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/domain"
)

// Stable feature identifiers. These are part of the API contract: callers use
// them as lookup keys across repeated analyses.
const (
	FeatureSuspiciousWords         = "suspicious_words_in_title"
	FeaturePriceDeviation          = "price_deviation_from_median"
	FeaturePerfectRatingLowReviews = "perfect_rating_low_reviews"
	FeatureZeroReviews             = "zero_reviews"
	FeatureGenericSellerName       = "generic_seller_name"
	FeatureNoImages                = "no_images"
)

// SuspiciousWordExtractor counts vocabulary terms present in the lower-cased
// title (each term at most once, regardless of repeats) and weights the count.
// The contribution is uncapped here; the aggregator clamp bounds the total.
type SuspiciousWordExtractor struct {
	vocabulary []string
	weight     float64
}

func NewSuspiciousWordExtractor(vocabulary []string, weight float64) *SuspiciousWordExtractor {
	return &SuspiciousWordExtractor{vocabulary: vocabulary, weight: weight}
}

func (e *SuspiciousWordExtractor) Name() string { return "suspicious_words" }

func (e *SuspiciousWordExtractor) Extract(listing domain.Listing) []domain.FeatureContribution {
	title := strings.ToLower(listing.Title)
	matched := 0
	for _, term := range e.vocabulary {
		if strings.Contains(title, term) {
			matched++
		}
	}
	return []domain.FeatureContribution{{
		Feature:      FeatureSuspiciousWords,
		Contribution: float64(matched) * e.weight,
	}}
}

// PriceDeviationExtractor scores how far the price sits from the category's
// median, capped so a wild price alone never dominates the verdict.
type PriceDeviationExtractor struct {
	ranges   map[string]PriceRange
	fallback PriceRange
}

const (
	priceDeviationWeight = 0.2
	priceDeviationCap    = 0.2
)

func NewPriceDeviationExtractor(ranges map[string]PriceRange, fallback PriceRange) *PriceDeviationExtractor {
	return &PriceDeviationExtractor{ranges: ranges, fallback: fallback}
}

func (e *PriceDeviationExtractor) Name() string { return "price_deviation" }

func (e *PriceDeviationExtractor) Extract(listing domain.Listing) []domain.FeatureContribution {
	r, ok := e.ranges[listing.Category]
	if !ok {
		r = e.fallback
	}
	median := r.Median()

	// Non-positive prices and degenerate ranges produce no price signal
	// rather than a division blow-up or a spurious maximal deviation.
	contribution := 0.0
	if listing.Price > 0 && median > 0 {
		deviation := math.Abs(listing.Price-median) / median
		contribution = math.Min(deviation*priceDeviationWeight, priceDeviationCap)
	}
	return []domain.FeatureContribution{{
		Feature:      FeaturePriceDeviation,
		Contribution: contribution,
	}}
}

// RatingAnomalyExtractor reports two independent review-pattern signals:
// a near-perfect rating backed by very few reviews, and a listing with no
// reviews at all. Both may fire on the same listing.
type RatingAnomalyExtractor struct{}

const (
	perfectRatingThreshold = 4.9
	lowReviewThreshold     = 10
	perfectRatingWeight    = 0.15
	zeroReviewsWeight      = 0.1
)

func NewRatingAnomalyExtractor() *RatingAnomalyExtractor { return &RatingAnomalyExtractor{} }

func (e *RatingAnomalyExtractor) Name() string { return "rating_anomaly" }

func (e *RatingAnomalyExtractor) Extract(listing domain.Listing) []domain.FeatureContribution {
	perfect := 0.0
	if listing.Rating >= perfectRatingThreshold && listing.ReviewCount < lowReviewThreshold {
		perfect = perfectRatingWeight
	}
	zero := 0.0
	if listing.ReviewCount == 0 {
		zero = zeroReviewsWeight
	}
	return []domain.FeatureContribution{
		{Feature: FeaturePerfectRatingLowReviews, Contribution: perfect},
		{Feature: FeatureZeroReviews, Contribution: zero},
	}
}

// SellerNameExtractor flags generic storefront names.
type SellerNameExtractor struct {
	genericTerms []string
}

const genericSellerWeight = 0.1

func NewSellerNameExtractor(genericTerms []string) *SellerNameExtractor {
	return &SellerNameExtractor{genericTerms: genericTerms}
}

func (e *SellerNameExtractor) Name() string { return "seller_name" }

func (e *SellerNameExtractor) Extract(listing domain.Listing) []domain.FeatureContribution {
	seller := strings.ToLower(listing.Seller)
	contribution := 0.0
	for _, term := range e.genericTerms {
		if strings.Contains(seller, term) {
			contribution = genericSellerWeight
			break
		}
	}
	return []domain.FeatureContribution{{
		Feature:      FeatureGenericSellerName,
		Contribution: contribution,
	}}
}

// ImageCountExtractor flags listings with no images.
type ImageCountExtractor struct{}

const noImagesWeight = 0.1

func NewImageCountExtractor() *ImageCountExtractor { return &ImageCountExtractor{} }

func (e *ImageCountExtractor) Name() string { return "image_count" }

func (e *ImageCountExtractor) Extract(listing domain.Listing) []domain.FeatureContribution {
	contribution := 0.0
	if len(listing.Images) == 0 {
		contribution = noImagesWeight
	}
	return []domain.FeatureContribution{{
		Feature:      FeatureNoImages,
		Contribution: contribution,
	}}
}
