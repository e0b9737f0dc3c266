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

// maxUploadBytes caps multipart uploads at 32 MB.
const maxUploadBytes = 32 << 20

type UploadHandler struct {
	uploadUsecase usecase.UploadUsecase
	validator     *validator.CustomValidator
}

func NewUploadHandler(uploadUsecase usecase.UploadUsecase, validator *validator.CustomValidator) *UploadHandler {
	return &UploadHandler{
		uploadUsecase: uploadUsecase,
		validator:     validator,
	}
}

// CreateFileUpload handles multipart file uploads
// @Summary Upload file
// @Description Store a file (medical PDF, photo or video) for an athlete; a photo becomes the profile photo
// @Tags Uploads
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Athlete ID"
// @Param upload_type formData string true "Upload type (medical_pdf, photo, video)"
// @Param file formData file true "File"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /athletes/{id}/uploads [post]
func (h *UploadHandler) CreateFileUpload(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	roleID, _ := middleware.GetRoleIDFromContext(r.Context())

	athleteID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid athlete ID")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	uploadType := r.FormValue("upload_type")
	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "File is required")
		return
	}
	defer file.Close()

	upload, err := h.uploadUsecase.CreateFile(r.Context(), actorID, roleID, athleteID, uploadType, header.Filename, file)
	if err != nil {
		switch err {
		case usecase.ErrAthleteNotFound:
			response.NotFound(w, "Athlete not found")
		case usecase.ErrNotRecordOwner:
			response.Forbidden(w, "You can only upload to your own athlete record")
		case usecase.ErrInvalidUploadType:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to store upload")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Upload stored successfully", upload)
}

// CreateLinkUpload handles external link registration
// @Summary Register link upload
// @Description Register an external URL (typically hosted video) as an upload
// @Tags Uploads
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Athlete ID"
// @Param request body dto.CreateLinkUploadRequest true "Create Link Upload Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /athletes/{id}/uploads/link [post]
func (h *UploadHandler) CreateLinkUpload(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	roleID, _ := middleware.GetRoleIDFromContext(r.Context())

	athleteID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid athlete ID")
		return
	}

	var req dto.CreateLinkUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	upload, err := h.uploadUsecase.CreateLink(r.Context(), actorID, roleID, athleteID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAthleteNotFound:
			response.NotFound(w, "Athlete not found")
		case usecase.ErrNotRecordOwner:
			response.Forbidden(w, "You can only upload to your own athlete record")
		case usecase.ErrInvalidUploadType:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to register upload")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Upload registered successfully", upload)
}

// ListUploads handles upload listing
// @Summary List uploads
// @Tags Uploads
// @Security BearerAuth
// @Produce json
// @Param id path string true "Athlete ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /athletes/{id}/uploads [get]
func (h *UploadHandler) ListUploads(w http.ResponseWriter, r *http.Request) {
	athleteID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid athlete ID")
		return
	}

	uploads, err := h.uploadUsecase.ListByAthlete(r.Context(), athleteID)
	if err != nil {
		switch err {
		case usecase.ErrAthleteNotFound:
			response.NotFound(w, "Athlete not found")
		default:
			response.InternalServerError(w, "Failed to list uploads")
		}
		return
	}

	response.Success(w, http.StatusOK, "Uploads retrieved successfully", uploads)
}
