package converter

import (
	"asabig-talent-platform/internal/delivery/dto"
	"asabig-talent-platform/internal/domain/entity"
)

// AthleteToResponse converts an Athlete entity to AthleteResponse DTO
func AthleteToResponse(athlete *entity.Athlete) *dto.AthleteResponse {
	if athlete == nil {
		return nil
	}

	return &dto.AthleteResponse{
		ID:           athlete.ID,
		UserID:       athlete.UserID,
		FullName:     athlete.FullName,
		Gender:       athlete.Gender,
		BirthYear:    athlete.BirthYear,
		AgeGroup:     athlete.AgeGroup,
		Sport:        athlete.Sport,
		Club:         athlete.Club,
		City:         athlete.City,
		DominantSide: athlete.DominantSide,
		PhotoPath:    athlete.PhotoPath,
		Preferences:  athlete.Preferences,
		IsActive:     athlete.IsActive,
		CreatedAt:    athlete.CreatedAt,
		UpdatedAt:    athlete.UpdatedAt,
	}
}

// AthletesToResponse converts a slice of athletes, never returning nil so the
// JSON list renders as [] when empty.
func AthletesToResponse(athletes []entity.Athlete) []dto.AthleteResponse {
	responses := make([]dto.AthleteResponse, 0, len(athletes))
	for i := range athletes {
		responses = append(responses, *AthleteToResponse(&athletes[i]))
	}
	return responses
}
