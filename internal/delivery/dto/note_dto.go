package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Body string `json:"body" validate:"required,min=1,max=2000"`
}

type NoteResponse struct {
	ID         int64     `json:"id"`
	AthleteID  uuid.UUID `json:"athlete_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}
