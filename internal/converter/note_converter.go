package converter

import (
	"asabig-talent-platform/internal/delivery/dto"
	"asabig-talent-platform/internal/domain/entity"
)

// NoteToResponse converts a ScoutNote entity to NoteResponse DTO.
// The author name is included when the Author relation is loaded.
func NoteToResponse(note *entity.ScoutNote) *dto.NoteResponse {
	if note == nil {
		return nil
	}

	return &dto.NoteResponse{
		ID:         note.ID,
		AthleteID:  note.AthleteID,
		AuthorID:   note.AuthorID,
		AuthorName: note.Author.FullName,
		Body:       note.Body,
		CreatedAt:  note.CreatedAt,
	}
}

func NotesToResponse(notes []entity.ScoutNote) []dto.NoteResponse {
	responses := make([]dto.NoteResponse, 0, len(notes))
	for i := range notes {
		responses = append(responses, *NoteToResponse(&notes[i]))
	}
	return responses
}
