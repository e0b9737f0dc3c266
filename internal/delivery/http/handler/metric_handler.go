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

type MetricHandler struct {
	metricUsecase usecase.MetricUsecase
	validator     *validator.CustomValidator
}

func NewMetricHandler(metricUsecase usecase.MetricUsecase, validator *validator.CustomValidator) *MetricHandler {
	return &MetricHandler{
		metricUsecase: metricUsecase,
		validator:     validator,
	}
}

// RecordMetric handles appending a measurement
// @Summary Record metric
// @Description Append one measurement to the athlete's metric log
// @Tags Metrics
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Athlete ID"
// @Param request body dto.RecordMetricRequest true "Record Metric Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /athletes/{id}/metrics [post]
func (h *MetricHandler) RecordMetric(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	athleteID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid athlete ID")
		return
	}

	var req dto.RecordMetricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	metric, err := h.metricUsecase.Record(r.Context(), actorID, athleteID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAthleteNotFound:
			response.NotFound(w, "Athlete not found")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to record metric")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Metric recorded successfully", metric)
}

// ListMetrics handles metric history retrieval
// @Summary List metrics
// @Description List the athlete's metric history, optionally narrowed to one metric name
// @Tags Metrics
// @Security BearerAuth
// @Produce json
// @Param id path string true "Athlete ID"
// @Param metric query string false "Metric name"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /athletes/{id}/metrics [get]
func (h *MetricHandler) ListMetrics(w http.ResponseWriter, r *http.Request) {
	athleteID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid athlete ID")
		return
	}

	metrics, err := h.metricUsecase.ListByAthlete(r.Context(), athleteID, r.URL.Query().Get("metric"))
	if err != nil {
		switch err {
		case usecase.ErrAthleteNotFound:
			response.NotFound(w, "Athlete not found")
		default:
			response.InternalServerError(w, "Failed to list metrics")
		}
		return
	}

	response.Success(w, http.StatusOK, "Metrics retrieved successfully", metrics)
}
