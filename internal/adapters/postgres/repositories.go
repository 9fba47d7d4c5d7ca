package postgres

import (
	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/ports"
	"gorm.io/gorm"
)

type Repositories struct {
	Analyses ports.AnalysisRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Analyses: &analysisRepository{db: db},
	}
}
