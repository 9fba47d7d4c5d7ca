package domain

import "time"

// Label is the discrete verdict derived from an analysis score.
type Label string

const (
	LabelSafe       Label = "safe"
	LabelSuspicious Label = "suspicious"
	LabelHighRisk   Label = "high_risk"
)

// Severity orders labels from least to most severe. Unknown labels sort first.
func (l Label) Severity() int {
	switch l {
	case LabelSafe:
		return 1
	case LabelSuspicious:
		return 2
	case LabelHighRisk:
		return 3
	default:
		return 0
	}
}

// Listing is a validated product listing, the unit of scoring.
// Construct via ListingInput.Validate so required fields are checked once at
// the boundary; downstream scoring code may assume a well-formed value.
type Listing struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Seller      string   `json:"seller"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	Category    string   `json:"category"`
	Country     string   `json:"country"`
	Images      []string `json:"images,omitempty"`
}

// FeatureContribution is one extractor signal: a stable feature identifier and
// its non-negative share of suspiciousness.
type FeatureContribution struct {
	Feature      string  `json:"feature"`
	Contribution float64 `json:"contribution"`
}

// ExplanationEntry is a ranked explanation row. Contribution carries the raw
// extractor value verbatim; RelativeImpact re-expresses it against the mean of
// the retained contributions for proportional display.
type ExplanationEntry struct {
	Feature        string  `json:"feature"`
	Contribution   float64 `json:"contribution"`
	RelativeImpact float64 `json:"relative_impact"`
}

// AnalysisResult is the aggregate verdict for one listing.
type AnalysisResult struct {
	Score        float64            `json:"score"`
	Label        Label              `json:"label"`
	Explanation  []ExplanationEntry `json:"explanation"`
	ModelVersion string             `json:"model_version"`
	Timestamp    time.Time          `json:"timestamp"`
}
