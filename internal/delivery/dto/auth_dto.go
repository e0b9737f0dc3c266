package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RegisterPlayerRequest creates a player account together with its athlete
// record. Gender accepts raw values and is normalized on the way in.
type RegisterPlayerRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	FullName     string `json:"full_name" validate:"required,min=2"`
	Gender       string `json:"gender" validate:"omitempty"`
	BirthYear    *int   `json:"birth_year" validate:"omitempty,gte=1990,lte=2100"`
	AgeGroup     string `json:"age_group" validate:"omitempty,max=20"`
	Sport        string `json:"sport" validate:"omitempty,max=100"`
	Club         string `json:"club" validate:"omitempty,max=255"`
	City         string `json:"city" validate:"omitempty,max=100"`
	DominantSide string `json:"dominant_side" validate:"omitempty,max=20"`
}

// RegisterStaffRequest creates a scout, academy or parent account.
type RegisterStaffRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required,min=2"`
	Role     string `json:"role" validate:"required,oneof=scout academy parent"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID        uuid.UUID        `json:"id"`
	Email     string           `json:"email"`
	FullName  string           `json:"full_name"`
	Role      string           `json:"role"`
	Athlete   *AthleteResponse `json:"athlete,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
