package repository

import (
	"asabig-talent-platform/internal/domain/entity"
	domainRepo "asabig-talent-platform/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type metricRepository struct{}

func NewMetricRepository() domainRepo.MetricRepository {
	return &metricRepository{}
}

func (r *metricRepository) Create(db *gorm.DB, entry *entity.MetricEntry) error {
	return db.Create(entry).Error
}

// FindByAthleteID returns the athlete's metric log ordered by measurement
// date; metricName narrows to one time series when non-empty.
func (r *metricRepository) FindByAthleteID(db *gorm.DB, athleteID uuid.UUID, metricName string) ([]entity.MetricEntry, error) {
	query := db.Where("athlete_id = ?", athleteID)
	if metricName != "" {
		query = query.Where("metric_name = ?", metricName)
	}

	var entries []entity.MetricEntry
	if err := query.Order("measured_at ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *metricRepository) CountByAthleteID(db *gorm.DB, athleteID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.MetricEntry{}).Where("athlete_id = ?", athleteID).Count(&count).Error
	return count, err
}
