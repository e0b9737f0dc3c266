package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScoutNote is a free-text observation recorded by a staff user on an
// athlete. Append-only.
type ScoutNote struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AthleteID uuid.UUID `gorm:"type:uuid;not null;index" json:"athlete_id"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Athlete Athlete `gorm:"foreignKey:AthleteID" json:"athlete,omitempty"`
	Author  User    `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (ScoutNote) TableName() string {
	return "scout_notes"
}
