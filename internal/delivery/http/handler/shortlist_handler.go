package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"asabig-talent-platform/internal/delivery/dto"
	"asabig-talent-platform/internal/delivery/http/middleware"
	"asabig-talent-platform/internal/usecase"
	"asabig-talent-platform/pkg/response"
	"asabig-talent-platform/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ShortlistHandler struct {
	shortlistUsecase usecase.ShortlistUsecase
	validator        *validator.CustomValidator
}

func NewShortlistHandler(shortlistUsecase usecase.ShortlistUsecase, validator *validator.CustomValidator) *ShortlistHandler {
	return &ShortlistHandler{
		shortlistUsecase: shortlistUsecase,
		validator:        validator,
	}
}

// CreateShortlist handles shortlist creation
// @Summary Create shortlist
// @Tags Shortlists
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateShortlistRequest true "Create Shortlist Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /shortlists [post]
func (h *ShortlistHandler) CreateShortlist(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateShortlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	shortlist, err := h.shortlistUsecase.Create(r.Context(), ownerID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create shortlist")
		return
	}

	response.Success(w, http.StatusCreated, "Shortlist created successfully", shortlist)
}

// ListShortlists handles listing the caller's shortlists
// @Summary List shortlists
// @Tags Shortlists
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /shortlists [get]
func (h *ShortlistHandler) ListShortlists(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	shortlists, err := h.shortlistUsecase.ListByOwner(r.Context(), ownerID)
	if err != nil {
		response.InternalServerError(w, "Failed to list shortlists")
		return
	}

	response.Success(w, http.StatusOK, "Shortlists retrieved successfully", shortlists)
}

// GetShortlist handles fetching one shortlist with its athletes
// @Summary Get shortlist
// @Tags Shortlists
// @Security BearerAuth
// @Produce json
// @Param id path int true "Shortlist ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /shortlists/{id} [get]
func (h *ShortlistHandler) GetShortlist(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid shortlist ID")
		return
	}

	shortlist, err := h.shortlistUsecase.Get(r.Context(), ownerID, id)
	if err != nil {
		switch err {
		case usecase.ErrShortlistNotFound:
			response.NotFound(w, "Shortlist not found")
		default:
			response.InternalServerError(w, "Failed to get shortlist")
		}
		return
	}

	response.Success(w, http.StatusOK, "Shortlist retrieved successfully", shortlist)
}

// DeleteShortlist handles shortlist deletion
// @Summary Delete shortlist
// @Tags Shortlists
// @Security BearerAuth
// @Produce json
// @Param id path int true "Shortlist ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /shortlists/{id} [delete]
func (h *ShortlistHandler) DeleteShortlist(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid shortlist ID")
		return
	}

	if err := h.shortlistUsecase.Delete(r.Context(), ownerID, id); err != nil {
		switch err {
		case usecase.ErrShortlistNotFound:
			response.NotFound(w, "Shortlist not found")
		default:
			response.InternalServerError(w, "Failed to delete shortlist")
		}
		return
	}

	response.Success(w, http.StatusOK, "Shortlist deleted successfully", nil)
}

// AddAthlete handles adding an athlete to a shortlist
// @Summary Add athlete to shortlist
// @Tags Shortlists
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Shortlist ID"
// @Param request body dto.AddShortlistAthleteRequest true "Add Athlete Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /shortlists/{id}/athletes [post]
func (h *ShortlistHandler) AddAthlete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid shortlist ID")
		return
	}

	var req dto.AddShortlistAthleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.shortlistUsecase.AddAthlete(r.Context(), ownerID, id, &req); err != nil {
		switch err {
		case usecase.ErrShortlistNotFound:
			response.NotFound(w, "Shortlist not found")
		case usecase.ErrAthleteNotFound:
			response.NotFound(w, "Athlete not found")
		case usecase.ErrAthleteAlreadyListed:
			response.Error(w, http.StatusConflict, "Athlete already on shortlist", nil)
		default:
			response.InternalServerError(w, "Failed to add athlete to shortlist")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Athlete added to shortlist", nil)
}

// RemoveAthlete handles removing an athlete from a shortlist
// @Summary Remove athlete from shortlist
// @Tags Shortlists
// @Security BearerAuth
// @Produce json
// @Param id path int true "Shortlist ID"
// @Param athleteId path string true "Athlete ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /shortlists/{id}/athletes/{athleteId} [delete]
func (h *ShortlistHandler) RemoveAthlete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid shortlist ID")
		return
	}
	athleteID, err := uuid.Parse(vars["athleteId"])
	if err != nil {
		response.BadRequest(w, "Invalid athlete ID")
		return
	}

	if err := h.shortlistUsecase.RemoveAthlete(r.Context(), ownerID, id, athleteID); err != nil {
		switch err {
		case usecase.ErrShortlistNotFound:
			response.NotFound(w, "Shortlist not found")
		case usecase.ErrAthleteNotOnShortlist:
			response.NotFound(w, "Athlete not on shortlist")
		default:
			response.InternalServerError(w, "Failed to remove athlete from shortlist")
		}
		return
	}

	response.Success(w, http.StatusOK, "Athlete removed from shortlist", nil)
}
