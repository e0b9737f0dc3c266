package repository

import (
	"asabig-talent-platform/internal/domain/entity"
	domainRepo "asabig-talent-platform/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type uploadRepository struct{}

func NewUploadRepository() domainRepo.UploadRepository {
	return &uploadRepository{}
}

func (r *uploadRepository) Create(db *gorm.DB, record *entity.UploadRecord) error {
	return db.Create(record).Error
}

func (r *uploadRepository) FindByAthleteID(db *gorm.DB, athleteID uuid.UUID) ([]entity.UploadRecord, error) {
	var records []entity.UploadRecord
	err := db.Where("athlete_id = ?", athleteID).Order("created_at DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
