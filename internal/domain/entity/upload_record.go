package entity

import (
	"time"

	"github.com/google/uuid"
)

// UploadType classifies an athlete upload
type UploadType string

const (
	UploadTypeMedicalPDF UploadType = "medical_pdf"
	UploadTypePhoto      UploadType = "photo"
	UploadTypeVideo      UploadType = "video"
	UploadTypeOther      UploadType = "other"
)

// IsValid reports whether the type belongs to the known set.
func (t UploadType) IsValid() bool {
	switch t {
	case UploadTypeMedicalPDF, UploadTypePhoto, UploadTypeVideo, UploadTypeOther:
		return true
	}
	return false
}

// UploadRecord is an append-only reference to a stored file or external
// link attached to an athlete. Exactly one of FilePath and LinkURL is set.
type UploadRecord struct {
	ID         int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	AthleteID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"athlete_id"`
	UploadType UploadType `gorm:"type:varchar(20);not null;index" json:"upload_type"`
	FilePath   string     `gorm:"type:varchar(512)" json:"file_path,omitempty"`
	LinkURL    string     `gorm:"type:varchar(512)" json:"link_url,omitempty"`
	FileName   string     `gorm:"type:varchar(255)" json:"file_name,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Athlete Athlete `gorm:"foreignKey:AthleteID" json:"athlete,omitempty"`
}

func (UploadRecord) TableName() string {
	return "upload_records"
}
