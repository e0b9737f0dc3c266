package dto

import (
	"time"

	"asabig-talent-platform/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAthleteRequest registers an athlete record without a user account
// (staff-entered or imported rows).
type CreateAthleteRequest struct {
	FullName     string                 `json:"full_name" validate:"required,min=2"`
	Gender       string                 `json:"gender" validate:"omitempty"`
	BirthYear    *int                   `json:"birth_year" validate:"omitempty,gte=1990,lte=2100"`
	AgeGroup     string                 `json:"age_group" validate:"omitempty,max=20"`
	Sport        string                 `json:"sport" validate:"omitempty,max=100"`
	Club         string                 `json:"club" validate:"omitempty,max=255"`
	City         string                 `json:"city" validate:"omitempty,max=100"`
	DominantSide string                 `json:"dominant_side" validate:"omitempty,max=20"`
	Preferences  map[string]interface{} `json:"preferences" validate:"omitempty"`
}

// UpdateAthleteRequest mutates profile fields; empty values leave the field
// untouched, so callers send only what changes.
type UpdateAthleteRequest struct {
	FullName     string                 `json:"full_name" validate:"omitempty,min=2"`
	Gender       string                 `json:"gender" validate:"omitempty"`
	BirthYear    *int                   `json:"birth_year" validate:"omitempty,gte=1990,lte=2100"`
	AgeGroup     string                 `json:"age_group" validate:"omitempty,max=20"`
	Sport        string                 `json:"sport" validate:"omitempty,max=100"`
	Club         string                 `json:"club" validate:"omitempty,max=255"`
	City         string                 `json:"city" validate:"omitempty,max=100"`
	DominantSide string                 `json:"dominant_side" validate:"omitempty,max=20"`
	Preferences  map[string]interface{} `json:"preferences" validate:"omitempty"`
}

// ListAthletesQuery carries the list filters parsed from the query string.
type ListAthletesQuery struct {
	Gender   string
	Sport    string
	Club     string
	City     string
	AgeGroup string
	Name     string
}

type AthleteResponse struct {
	ID           uuid.UUID              `json:"id"`
	UserID       *uuid.UUID             `json:"user_id,omitempty"`
	FullName     string                 `json:"full_name"`
	Gender       string                 `json:"gender,omitempty"`
	BirthYear    *int                   `json:"birth_year,omitempty"`
	AgeGroup     string                 `json:"age_group,omitempty"`
	Sport        string                 `json:"sport,omitempty"`
	Club         string                 `json:"club,omitempty"`
	City         string                 `json:"city,omitempty"`
	DominantSide string                 `json:"dominant_side,omitempty"`
	PhotoPath    string                 `json:"photo_path,omitempty"`
	Preferences  map[string]interface{} `json:"preferences,omitempty"`
	IsActive     *bool                  `json:"is_active,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// CompletionResponse is the wire form of a completion score.
type CompletionResponse struct {
	AthleteID uuid.UUID                  `json:"athlete_id"`
	Total     int                        `json:"total"`
	Breakdown entity.CompletionBreakdown `json:"breakdown"`
}

// ComparisonResponse returns up to four athletes side by side, each with a
// freshly computed completion score.
type ComparisonResponse struct {
	Athletes []ComparisonEntry `json:"athletes"`
}

type ComparisonEntry struct {
	Athlete    AthleteResponse        `json:"athlete"`
	Completion entity.CompletionScore `json:"completion"`
}
