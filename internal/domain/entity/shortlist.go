package entity

import (
	"time"

	"github.com/google/uuid"
)

// Shortlist is a named collection of athlete records owned by a staff user
// (scout or academy), used for candidate tracking.
type Shortlist struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Owner User            `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Items []ShortlistItem `gorm:"foreignKey:ShortlistID" json:"items,omitempty"`
}

func (Shortlist) TableName() string {
	return "shortlists"
}

// ShortlistItem links one athlete into a shortlist. The (shortlist, athlete)
// pair is unique, so re-adding an athlete is an idempotent no-op at the
// storage layer.
type ShortlistItem struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ShortlistID int64     `gorm:"not null;uniqueIndex:idx_shortlist_athlete" json:"shortlist_id"`
	AthleteID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_shortlist_athlete" json:"athlete_id"`
	AddedAt     time.Time `gorm:"autoCreateTime" json:"added_at"`

	// Relationships
	Shortlist Shortlist `gorm:"foreignKey:ShortlistID" json:"shortlist,omitempty"`
	Athlete   Athlete   `gorm:"foreignKey:AthleteID" json:"athlete,omitempty"`
}

func (ShortlistItem) TableName() string {
	return "shortlist_items"
}
