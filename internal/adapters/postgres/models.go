package postgres

import (
	"time"

	"github.com/google/uuid"
)

type listingModel struct {
	ListingID   uuid.UUID `gorm:"column:listing_id;type:uuid;primaryKey"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description"`
	Price       float64   `gorm:"column:price"`
	Seller      string    `gorm:"column:seller"`
	Rating      float64   `gorm:"column:rating"`
	ReviewCount int       `gorm:"column:review_count"`
	Category    string    `gorm:"column:category"`
	Country     string    `gorm:"column:country"`
	Images      []byte    `gorm:"column:images;type:jsonb"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (listingModel) TableName() string { return "listings" }

type analysisModel struct {
	AnalysisID   uuid.UUID `gorm:"column:analysis_id;type:uuid;primaryKey"`
	ListingID    uuid.UUID `gorm:"column:listing_id"`
	Score        float64   `gorm:"column:score"`
	Label        string    `gorm:"column:label"`
	Explanation  []byte    `gorm:"column:explanation;type:jsonb"`
	ModelVersion string    `gorm:"column:model_version"`
	ScoredAt     time.Time `gorm:"column:scored_at"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (analysisModel) TableName() string { return "analyses" }
