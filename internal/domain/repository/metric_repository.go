package repository

import (
	"asabig-talent-platform/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MetricRepository interface {
	Create(db *gorm.DB, entry *entity.MetricEntry) error
	FindByAthleteID(db *gorm.DB, athleteID uuid.UUID, metricName string) ([]entity.MetricEntry, error)
	CountByAthleteID(db *gorm.DB, athleteID uuid.UUID) (int64, error)
}
