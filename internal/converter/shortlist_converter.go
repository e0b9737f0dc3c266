package converter

import (
	"asabig-talent-platform/internal/delivery/dto"
	"asabig-talent-platform/internal/domain/entity"
)

// ShortlistToResponse converts a Shortlist entity to ShortlistResponse DTO.
// Athlete entries are included when Items (with their Athlete relation) are
// loaded.
func ShortlistToResponse(shortlist *entity.Shortlist) *dto.ShortlistResponse {
	if shortlist == nil {
		return nil
	}

	response := &dto.ShortlistResponse{
		ID:        shortlist.ID,
		OwnerID:   shortlist.OwnerID,
		Name:      shortlist.Name,
		CreatedAt: shortlist.CreatedAt,
		UpdatedAt: shortlist.UpdatedAt,
	}

	if len(shortlist.Items) > 0 {
		response.Athletes = make([]dto.AthleteResponse, 0, len(shortlist.Items))
		for i := range shortlist.Items {
			response.Athletes = append(response.Athletes, *AthleteToResponse(&shortlist.Items[i].Athlete))
		}
	}

	return response
}

func ShortlistsToResponse(shortlists []entity.Shortlist) []dto.ShortlistResponse {
	responses := make([]dto.ShortlistResponse, 0, len(shortlists))
	for i := range shortlists {
		responses = append(responses, *ShortlistToResponse(&shortlists[i]))
	}
	return responses
}
