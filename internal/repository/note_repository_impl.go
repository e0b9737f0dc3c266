package repository

import (
	"asabig-talent-platform/internal/domain/entity"
	domainRepo "asabig-talent-platform/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type noteRepository struct{}

func NewNoteRepository() domainRepo.NoteRepository {
	return &noteRepository{}
}

func (r *noteRepository) Create(db *gorm.DB, note *entity.ScoutNote) error {
	return db.Create(note).Error
}

func (r *noteRepository) FindByAthleteID(db *gorm.DB, athleteID uuid.UUID) ([]entity.ScoutNote, error) {
	var notes []entity.ScoutNote
	err := db.Preload("Author").Where("athlete_id = ?", athleteID).Order("created_at DESC").Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}
