package converter

import (
	"asabig-talent-platform/internal/delivery/dto"
	"asabig-talent-platform/internal/domain/entity"
)

// UploadToResponse converts an UploadRecord entity to UploadResponse DTO
func UploadToResponse(upload *entity.UploadRecord) *dto.UploadResponse {
	if upload == nil {
		return nil
	}

	return &dto.UploadResponse{
		ID:         upload.ID,
		AthleteID:  upload.AthleteID,
		UploadType: string(upload.UploadType),
		FileName:   upload.FileName,
		FilePath:   upload.FilePath,
		LinkURL:    upload.LinkURL,
		CreatedAt:  upload.CreatedAt,
	}
}

func UploadsToResponse(uploads []entity.UploadRecord) []dto.UploadResponse {
	responses := make([]dto.UploadResponse, 0, len(uploads))
	for i := range uploads {
		responses = append(responses, *UploadToResponse(&uploads[i]))
	}
	return responses
}
