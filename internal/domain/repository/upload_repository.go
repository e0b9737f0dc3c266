package repository

import (
	"asabig-talent-platform/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UploadRepository interface {
	Create(db *gorm.DB, record *entity.UploadRecord) error
	FindByAthleteID(db *gorm.DB, athleteID uuid.UUID) ([]entity.UploadRecord, error)
}
