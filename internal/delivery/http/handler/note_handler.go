package handler

import (
	"encoding/json"
	"net/http"

	"asabig-talent-platform/internal/delivery/dto"
	"asabig-talent-platform/internal/delivery/http/middleware"
	"asabig-talent-platform/internal/usecase"
	"asabig-talent-platform/pkg/response"
	"asabig-talent-platform/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type NoteHandler struct {
	noteUsecase usecase.NoteUsecase
	validator   *validator.CustomValidator
}

func NewNoteHandler(noteUsecase usecase.NoteUsecase, validator *validator.CustomValidator) *NoteHandler {
	return &NoteHandler{
		noteUsecase: noteUsecase,
		validator:   validator,
	}
}

// CreateNote handles scouting note creation
// @Summary Create scout note
// @Description Record a free-text observation on an athlete
// @Tags Notes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Athlete ID"
// @Param request body dto.CreateNoteRequest true "Create Note Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /athletes/{id}/notes [post]
func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	athleteID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid athlete ID")
		return
	}

	var req dto.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	note, err := h.noteUsecase.Create(r.Context(), authorID, athleteID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAthleteNotFound:
			response.NotFound(w, "Athlete not found")
		default:
			response.InternalServerError(w, "Failed to create note")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Note created successfully", note)
}

// ListNotes handles scouting note listing
// @Summary List scout notes
// @Tags Notes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Athlete ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /athletes/{id}/notes [get]
func (h *NoteHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	athleteID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid athlete ID")
		return
	}

	notes, err := h.noteUsecase.ListByAthlete(r.Context(), athleteID)
	if err != nil {
		switch err {
		case usecase.ErrAthleteNotFound:
			response.NotFound(w, "Athlete not found")
		default:
			response.InternalServerError(w, "Failed to list notes")
		}
		return
	}

	response.Success(w, http.StatusOK, "Notes retrieved successfully", notes)
}
