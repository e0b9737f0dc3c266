package repository

import (
	"errors"

	"asabig-talent-platform/internal/domain/entity"
	domainRepo "asabig-talent-platform/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type athleteRepository struct{}

func NewAthleteRepository() domainRepo.AthleteRepository {
	return &athleteRepository{}
}

func (r *athleteRepository) Create(db *gorm.DB, athlete *entity.Athlete) error {
	return db.Create(athlete).Error
}

func (r *athleteRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Athlete, error) {
	var athlete entity.Athlete
	err := db.Where("id = ?", id).First(&athlete).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &athlete, nil
}

func (r *athleteRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Athlete, error) {
	var athlete entity.Athlete
	err := db.Where("user_id = ?", userID).First(&athlete).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &athlete, nil
}

func (r *athleteRepository) FindByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.Athlete, error) {
	var athletes []entity.Athlete
	err := db.Where("id IN ?", ids).Order("full_name ASC").Find(&athletes).Error
	if err != nil {
		return nil, err
	}
	return athletes, nil
}

// FindAll returns active athlete records matching the filter, ordered by
// name. The gender selection is translated to an IN clause over its accepted
// stored values, so M/F-tagged records satisfy either single-gender filter
// and unrecognized stored values drop out of any specific selection.
func (r *athleteRepository) FindAll(db *gorm.DB, filter *entity.AthleteFilter) ([]entity.Athlete, error) {
	query := db.Where("is_active = ?", true)

	if filter != nil {
		if accepted := filter.Gender.AcceptedGenders(); accepted != nil {
			query = query.Where("gender IN ?", accepted)
		}
		if filter.Sport != "" {
			query = query.Where("sport = ?", filter.Sport)
		}
		if filter.Club != "" {
			query = query.Where("club ILIKE ?", "%"+filter.Club+"%")
		}
		if filter.City != "" {
			query = query.Where("city = ?", filter.City)
		}
		if filter.AgeGroup != "" {
			query = query.Where("age_group = ?", filter.AgeGroup)
		}
		if filter.Name != "" {
			query = query.Where("full_name ILIKE ?", "%"+filter.Name+"%")
		}
	}

	var athletes []entity.Athlete
	if err := query.Order("full_name ASC").Find(&athletes).Error; err != nil {
		return nil, err
	}
	return athletes, nil
}

func (r *athleteRepository) Update(db *gorm.DB, athlete *entity.Athlete) error {
	return db.Omit("User").Save(athlete).Error
}
