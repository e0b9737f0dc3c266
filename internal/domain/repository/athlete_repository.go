package repository

import (
	"asabig-talent-platform/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AthleteRepository interface {
	Create(db *gorm.DB, athlete *entity.Athlete) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Athlete, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Athlete, error)
	FindByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.Athlete, error)
	FindAll(db *gorm.DB, filter *entity.AthleteFilter) ([]entity.Athlete, error)
	Update(db *gorm.DB, athlete *entity.Athlete) error
}
