package entity

import (
	"time"

	"github.com/google/uuid"
)

// Athlete represents one youth participant tracked by the platform.
// Records are created on registration (player accounts) or by staff /
// CSV import, and are never hard-deleted: IsActive drives the lifecycle.
type Athlete struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	FullName     string     `gorm:"type:varchar(255);not null;index" json:"full_name"`
	Gender       string     `gorm:"type:varchar(8)" json:"gender,omitempty"`
	BirthYear    *int       `gorm:"type:int" json:"birth_year,omitempty"`
	AgeGroup     string     `gorm:"type:varchar(20);index" json:"age_group,omitempty"`
	Sport        string     `gorm:"type:varchar(100);index" json:"sport,omitempty"`
	Club         string     `gorm:"type:varchar(255);index" json:"club,omitempty"`
	City         string     `gorm:"type:varchar(100);index" json:"city,omitempty"`
	DominantSide string     `gorm:"type:varchar(20)" json:"dominant_side,omitempty"`
	PhotoPath    string     `gorm:"type:varchar(512)" json:"photo_path,omitempty"`
	Preferences  JSON       `gorm:"type:jsonb" json:"preferences,omitempty"`
	IsActive     *bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User    *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Metrics []MetricEntry  `gorm:"foreignKey:AthleteID" json:"metrics,omitempty"`
	Uploads []UploadRecord `gorm:"foreignKey:AthleteID" json:"uploads,omitempty"`
	Notes   []ScoutNote    `gorm:"foreignKey:AthleteID" json:"notes,omitempty"`
}

func (Athlete) TableName() string {
	return "athletes"
}
