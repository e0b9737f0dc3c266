package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDAdmin   = 1
	RoleIDScout   = 2
	RoleIDAcademy = 3
	RoleIDParent  = 4
	RoleIDPlayer  = 5
)

// RoleNames constants
const (
	RoleAdmin   = "admin"
	RoleScout   = "scout"
	RoleAcademy = "academy"
	RoleParent  = "parent"
	RolePlayer  = "player"
)

// RoleName resolves a role ID to its name, empty string if unknown.
func RoleName(id int) string {
	switch id {
	case RoleIDAdmin:
		return RoleAdmin
	case RoleIDScout:
		return RoleScout
	case RoleIDAcademy:
		return RoleAcademy
	case RoleIDParent:
		return RoleParent
	case RoleIDPlayer:
		return RolePlayer
	}
	return ""
}
