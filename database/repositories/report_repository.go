package repositories

import (
	"github.com/medwatch-dev/medwatch/common"
	"github.com/medwatch-dev/medwatch/database/models"
	"github.com/medwatch-dev/medwatch/shared"
)

type reportRepository struct {
	common.Repository[uint, models.Report, shared.DB]
	db shared.DB
}

func NewReportRepository(db shared.DB) *reportRepository {
	return &reportRepository{
		db:         db,
		Repository: newGormRepository[uint, models.Report](db),
	}
}

func (r *reportRepository) ListAll() ([]models.Report, error) {
	// non-nil so an empty history renders as [] and not null
	reports := []models.Report{}
	err := r.db.Order("id ASC").Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}
