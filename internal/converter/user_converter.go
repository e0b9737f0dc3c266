package converter

import (
	"asabig-talent-platform/internal/delivery/dto"
	"asabig-talent-platform/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
// The linked athlete record is included when it is loaded.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      entity.RoleName(user.RoleID),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if user.Role.RoleName != "" {
		response.Role = user.Role.RoleName
	}

	if len(user.Athletes) > 0 {
		response.Athlete = AthleteToResponse(&user.Athletes[0])
	}

	return response
}
