package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"asabig-talent-platform/internal/delivery/dto"
	"asabig-talent-platform/internal/delivery/http/middleware"
	"asabig-talent-platform/internal/usecase"
	"asabig-talent-platform/pkg/response"
	"asabig-talent-platform/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AthleteHandler struct {
	athleteUsecase usecase.AthleteUsecase
	validator      *validator.CustomValidator
}

func NewAthleteHandler(athleteUsecase usecase.AthleteUsecase, validator *validator.CustomValidator) *AthleteHandler {
	return &AthleteHandler{
		athleteUsecase: athleteUsecase,
		validator:      validator,
	}
}

// CreateAthlete handles staff-entered athlete creation
// @Summary Create athlete record
// @Description Create an athlete record without a linked user account
// @Tags Athletes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAthleteRequest true "Create Athlete Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /athletes [post]
func (h *AthleteHandler) CreateAthlete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateAthleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	athlete, err := h.athleteUsecase.Create(r.Context(), actorID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create athlete")
		return
	}

	response.Success(w, http.StatusCreated, "Athlete created successfully", athlete)
}

// ListAthletes handles the filtered athlete listing
// @Summary List athletes
// @Description List active athletes with optional filters; gender=M or F also includes M/F records
// @Tags Athletes
// @Security BearerAuth
// @Produce json
// @Param gender query string false "Gender selection (All, M, F, M/F)"
// @Param sport query string false "Sport"
// @Param club query string false "Club (substring)"
// @Param city query string false "City"
// @Param age_group query string false "Age group"
// @Param name query string false "Full name (substring)"
// @Success 200 {object} response.Response
// @Router /athletes [get]
func (h *AthleteHandler) ListAthletes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := &dto.ListAthletesQuery{
		Gender:   q.Get("gender"),
		Sport:    q.Get("sport"),
		Club:     q.Get("club"),
		City:     q.Get("city"),
		AgeGroup: q.Get("age_group"),
		Name:     q.Get("name"),
	}

	athletes, err := h.athleteUsecase.List(r.Context(), query)
	if err != nil {
		response.InternalServerError(w, "Failed to list athletes")
		return
	}

	response.Success(w, http.StatusOK, "Athletes retrieved successfully", athletes)
}

// GetAthlete handles fetching one athlete record
// @Summary Get athlete
// @Tags Athletes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Athlete ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /athletes/{id} [get]
func (h *AthleteHandler) GetAthlete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid athlete ID")
		return
	}

	athlete, err := h.athleteUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAthleteNotFound:
			response.NotFound(w, "Athlete not found")
		default:
			response.InternalServerError(w, "Failed to get athlete")
		}
		return
	}

	response.Success(w, http.StatusOK, "Athlete retrieved successfully", athlete)
}

// UpdateAthlete handles athlete profile updates
// @Summary Update athlete
// @Description Update profile fields; players may only edit their own record
// @Tags Athletes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Athlete ID"
// @Param request body dto.UpdateAthleteRequest true "Update Athlete Request"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /athletes/{id} [put]
func (h *AthleteHandler) UpdateAthlete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	roleID, _ := middleware.GetRoleIDFromContext(r.Context())

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid athlete ID")
		return
	}

	var req dto.UpdateAthleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	athlete, err := h.athleteUsecase.Update(r.Context(), actorID, roleID, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrAthleteNotFound:
			response.NotFound(w, "Athlete not found")
		case usecase.ErrNotRecordOwner:
			response.Forbidden(w, "You don't have permission to edit this record")
		default:
			response.InternalServerError(w, "Failed to update athlete")
		}
		return
	}

	response.Success(w, http.StatusOK, "Athlete updated successfully", athlete)
}

// DeactivateAthlete handles athlete soft-deletion
// @Summary Deactivate athlete
// @Description Remove the athlete from listings while keeping its history
// @Tags Athletes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Athlete ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /athletes/{id} [delete]
func (h *AthleteHandler) DeactivateAthlete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	roleID, _ := middleware.GetRoleIDFromContext(r.Context())

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid athlete ID")
		return
	}

	if err := h.athleteUsecase.Deactivate(r.Context(), actorID, roleID, id); err != nil {
		switch err {
		case usecase.ErrAthleteNotFound:
			response.NotFound(w, "Athlete not found")
		case usecase.ErrNotRecordOwner:
			response.Forbidden(w, "You don't have permission to deactivate this record")
		default:
			response.InternalServerError(w, "Failed to deactivate athlete")
		}
		return
	}

	response.Success(w, http.StatusOK, "Athlete deactivated successfully", nil)
}

// CompareAthletes handles side-by-side comparison
// @Summary Compare athletes
// @Description Compare up to 4 athletes with their completion scores
// @Tags Athletes
// @Security BearerAuth
// @Produce json
// @Param ids query string true "Comma-separated athlete IDs (max 4)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /athletes/compare [get]
func (h *AthleteHandler) CompareAthletes(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("ids"))
	if raw == "" {
		response.BadRequest(w, "Query parameter 'ids' is required")
		return
	}

	var ids []uuid.UUID
	for _, part := range strings.Split(raw, ",") {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			response.BadRequest(w, "Invalid athlete ID in 'ids'")
			return
		}
		ids = append(ids, id)
	}

	comparison, err := h.athleteUsecase.Compare(r.Context(), ids)
	if err != nil {
		switch err {
		case usecase.ErrNoComparisonTargets, usecase.ErrTooManyComparisons:
			response.BadRequest(w, err.Error())
		case usecase.ErrAthleteNotFound:
			response.NotFound(w, "One or more athletes not found")
		default:
			response.InternalServerError(w, "Failed to compare athletes")
		}
		return
	}

	response.Success(w, http.StatusOK, "Comparison retrieved successfully", comparison)
}

// GetCompletion handles profile completion scoring
// @Summary Get completion score
// @Description Compute the athlete's profile completion score (0-100)
// @Tags Athletes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Athlete ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /athletes/{id}/completion [get]
func (h *AthleteHandler) GetCompletion(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid athlete ID")
		return
	}

	completion, err := h.athleteUsecase.GetCompletion(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAthleteNotFound:
			response.NotFound(w, "Athlete not found")
		default:
			response.InternalServerError(w, "Failed to compute completion score")
		}
		return
	}

	response.Success(w, http.StatusOK, "Completion score computed successfully", completion)
}
