package repository

import (
	"asabig-talent-platform/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShortlistRepository interface {
	Create(db *gorm.DB, shortlist *entity.Shortlist) error
	FindByID(db *gorm.DB, id int64) (*entity.Shortlist, error)
	FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) ([]entity.Shortlist, error)
	Delete(db *gorm.DB, id int64) (int64, error)
	AddItem(db *gorm.DB, item *entity.ShortlistItem) error
	RemoveItem(db *gorm.DB, shortlistID int64, athleteID uuid.UUID) (int64, error)
}
