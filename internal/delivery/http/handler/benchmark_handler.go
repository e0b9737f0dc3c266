package handler

import (
	"errors"
	"net/http"

	"asabig-talent-platform/internal/dataset"
	"asabig-talent-platform/internal/delivery/dto"
	"asabig-talent-platform/internal/usecase"
	"asabig-talent-platform/pkg/response"

	"github.com/gorilla/mux"
)

type BenchmarkHandler struct {
	benchmarkUsecase usecase.BenchmarkUsecase
}

func NewBenchmarkHandler(benchmarkUsecase usecase.BenchmarkUsecase) *BenchmarkHandler {
	return &BenchmarkHandler{benchmarkUsecase: benchmarkUsecase}
}

// ListDatasets handles the dataset catalog
// @Summary List benchmark datasets
// @Description List every registered reference dataset and its load status
// @Tags Benchmarks
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /benchmarks [get]
func (h *BenchmarkHandler) ListDatasets(w http.ResponseWriter, r *http.Request) {
	statuses := h.benchmarkUsecase.Statuses(r.Context())
	response.Success(w, http.StatusOK, "Datasets retrieved successfully", statuses)
}

// ViewDataset handles a filtered dataset view
// @Summary View benchmark dataset
// @Description View a dataset filtered by age group, gender and sport; gender=M or F also includes M/F rows
// @Tags Benchmarks
// @Security BearerAuth
// @Produce json
// @Param name path string true "Dataset name"
// @Param age_group query string false "Age group (All for no filter)"
// @Param gender query string false "Gender selection (All, M, F, M/F)"
// @Param sport query string false "Sport (All for no filter)"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /benchmarks/{name} [get]
func (h *BenchmarkHandler) ViewDataset(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := &dto.BenchmarkQuery{
		AgeGroup: q.Get("age_group"),
		Gender:   q.Get("gender"),
		Sport:    q.Get("sport"),
	}

	view, err := h.benchmarkUsecase.View(r.Context(), mux.Vars(r)["name"], query)
	if err != nil {
		h.writeDatasetError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Dataset retrieved successfully", view)
}

// FilterOptions handles dropdown value listing
// @Summary List filter options
// @Description List the distinct values of one dataset column
// @Tags Benchmarks
// @Security BearerAuth
// @Produce json
// @Param name path string true "Dataset name"
// @Param column query string true "Column name"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /benchmarks/{name}/options [get]
func (h *BenchmarkHandler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	column := r.URL.Query().Get("column")
	if column == "" {
		response.BadRequest(w, "Query parameter 'column' is required")
		return
	}

	values, err := h.benchmarkUsecase.FilterOptions(r.Context(), mux.Vars(r)["name"], column)
	if err != nil {
		h.writeDatasetError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Filter options retrieved successfully", values)
}

// LinkDatasets handles cross-dataset linking
// @Summary Link two datasets
// @Description Join a primary dataset to a secondary one by athlete_id, falling back to full name
// @Tags Benchmarks
// @Security BearerAuth
// @Produce json
// @Param name path string true "Primary dataset name"
// @Param secondary query string true "Secondary dataset name"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /benchmarks/{name}/link [get]
func (h *BenchmarkHandler) LinkDatasets(w http.ResponseWriter, r *http.Request) {
	secondary := r.URL.Query().Get("secondary")
	if secondary == "" {
		response.BadRequest(w, "Query parameter 'secondary' is required")
		return
	}

	linked, err := h.benchmarkUsecase.Link(r.Context(), mux.Vars(r)["name"], secondary)
	if err != nil {
		if errors.Is(err, dataset.ErrNoLinkage) {
			// Distinct from an empty match list: these datasets share no key
			response.Error(w, http.StatusUnprocessableEntity, "Datasets cannot be linked", nil)
			return
		}
		h.writeDatasetError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Datasets linked successfully", linked)
}

func (h *BenchmarkHandler) writeDatasetError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrDatasetNotFound:
		response.NotFound(w, "Dataset not found")
	case usecase.ErrDatasetNotLoaded:
		response.Error(w, http.StatusServiceUnavailable, "Dataset file is not loaded", nil)
	default:
		response.InternalServerError(w, "Failed to read dataset")
	}
}
