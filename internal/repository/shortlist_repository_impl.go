package repository

import (
	"errors"

	"asabig-talent-platform/internal/domain/entity"
	domainRepo "asabig-talent-platform/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type shortlistRepository struct{}

func NewShortlistRepository() domainRepo.ShortlistRepository {
	return &shortlistRepository{}
}

func (r *shortlistRepository) Create(db *gorm.DB, shortlist *entity.Shortlist) error {
	return db.Create(shortlist).Error
}

func (r *shortlistRepository) FindByID(db *gorm.DB, id int64) (*entity.Shortlist, error) {
	var shortlist entity.Shortlist
	err := db.Preload("Items").Preload("Items.Athlete").Where("id = ?", id).First(&shortlist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shortlist, nil
}

func (r *shortlistRepository) FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) ([]entity.Shortlist, error) {
	var shortlists []entity.Shortlist
	err := db.Preload("Items").Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&shortlists).Error
	if err != nil {
		return nil, err
	}
	return shortlists, nil
}

func (r *shortlistRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	if err := db.Where("shortlist_id = ?", id).Delete(&entity.ShortlistItem{}).Error; err != nil {
		return 0, err
	}
	affected := db.Where("id = ?", id).Delete(&entity.Shortlist{})
	return affected.RowsAffected, affected.Error
}

func (r *shortlistRepository) AddItem(db *gorm.DB, item *entity.ShortlistItem) error {
	return db.Create(item).Error
}

func (r *shortlistRepository) RemoveItem(db *gorm.DB, shortlistID int64, athleteID uuid.UUID) (int64, error) {
	affected := db.Where("shortlist_id = ? AND athlete_id = ?", shortlistID, athleteID).Delete(&entity.ShortlistItem{})
	return affected.RowsAffected, affected.Error
}
