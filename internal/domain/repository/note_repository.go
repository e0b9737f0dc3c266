package repository

import (
	"asabig-talent-platform/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteRepository interface {
	Create(db *gorm.DB, note *entity.ScoutNote) error
	FindByAthleteID(db *gorm.DB, athleteID uuid.UUID) ([]entity.ScoutNote, error)
}
