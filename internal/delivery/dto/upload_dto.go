package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateLinkUploadRequest registers an external link (typically a hosted
// video) as an upload. File uploads go through multipart instead.
type CreateLinkUploadRequest struct {
	UploadType string `json:"upload_type" validate:"required,oneof=medical_pdf photo video"`
	LinkURL    string `json:"link_url" validate:"required,url"`
}

type UploadResponse struct {
	ID         int64     `json:"id"`
	AthleteID  uuid.UUID `json:"athlete_id"`
	UploadType string    `json:"upload_type"`
	FileName   string    `json:"file_name,omitempty"`
	FilePath   string    `json:"file_path,omitempty"`
	LinkURL    string    `json:"link_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
