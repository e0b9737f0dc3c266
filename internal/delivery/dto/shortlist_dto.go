package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateShortlistRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type AddShortlistAthleteRequest struct {
	AthleteID uuid.UUID `json:"athlete_id" validate:"required"`
}

type ShortlistResponse struct {
	ID        int64             `json:"id"`
	OwnerID   uuid.UUID         `json:"owner_id"`
	Name      string            `json:"name"`
	Athletes  []AthleteResponse `json:"athletes,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
