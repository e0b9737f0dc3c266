package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID    int       `gorm:"not null;index" json:"role_id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	IsActive  *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role       Role        `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Athletes   []Athlete   `gorm:"foreignKey:UserID" json:"athletes,omitempty"`
	Shortlists []Shortlist `gorm:"foreignKey:OwnerID" json:"shortlists,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsStaff reports whether the user belongs to a staff role (scout, academy,
// admin) allowed to manage athlete records they do not own.
func (u *User) IsStaff() bool {
	return u.RoleID == RoleIDAdmin || u.RoleID == RoleIDScout || u.RoleID == RoleIDAcademy
}
