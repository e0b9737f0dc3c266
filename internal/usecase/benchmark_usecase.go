package usecase

import (
	"context"
	"errors"

	"asabig-talent-platform/internal/dataset"
	"asabig-talent-platform/internal/delivery/dto"
	"asabig-talent-platform/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

var (
	ErrDatasetNotFound  = errors.New("dataset not found")
	ErrDatasetNotLoaded = errors.New("dataset file is not loaded")
)

// BenchmarkUsecase serves the reference CSV datasets loaded at startup:
// catalog status, filtered views and cross-dataset linking. Tables are
// immutable once loaded, so reads need no locking.
type BenchmarkUsecase interface {
	Statuses(ctx context.Context) []dto.BenchmarkStatusResponse
	View(ctx context.Context, name string, query *dto.BenchmarkQuery) (*dto.BenchmarkTableResponse, error)
	FilterOptions(ctx context.Context, name string, column string) ([]string, error)
	Link(ctx context.Context, primaryName, secondaryName string) (*dto.BenchmarkLinkResponse, error)
}

type benchmarkUsecase struct {
	log      *logrus.Logger
	tables   map[string]*dataset.Table
	statuses []dataset.Status
}

func NewBenchmarkUsecase(log *logrus.Logger, tables map[string]*dataset.Table, statuses []dataset.Status) BenchmarkUsecase {
	return &benchmarkUsecase{
		log:      log,
		tables:   tables,
		statuses: statuses,
	}
}

func (u *benchmarkUsecase) Statuses(ctx context.Context) []dto.BenchmarkStatusResponse {
	responses := make([]dto.BenchmarkStatusResponse, 0, len(u.statuses))
	for _, s := range u.statuses {
		responses = append(responses, dto.BenchmarkStatusResponse{
			Dataset: s.Dataset,
			File:    s.File,
			Loaded:  s.Loaded,
			Rows:    s.Rows,
			Error:   s.Error,
		})
	}
	return responses
}

// View applies the dashboard filters to a dataset. Filters on columns the
// dataset does not have are ignored, so one query shape works across all
// datasets.
func (u *benchmarkUsecase) View(ctx context.Context, name string, query *dto.BenchmarkQuery) (*dto.BenchmarkTableResponse, error) {
	table, err := u.table(name)
	if err != nil {
		return nil, err
	}

	filtered := table.
		FilterEqual("age_group", query.AgeGroup).
		FilterEqual("sport", query.Sport).
		FilterGender("gender", entity.ParseGenderSelection(query.Gender))

	rows := filtered.Rows
	if rows == nil {
		rows = [][]string{}
	}

	return &dto.BenchmarkTableResponse{
		Dataset: name,
		Columns: filtered.Columns,
		Rows:    rows,
		Total:   len(rows),
	}, nil
}

// FilterOptions returns the distinct values of one column, for building the
// filter dropdowns.
func (u *benchmarkUsecase) FilterOptions(ctx context.Context, name string, column string) ([]string, error) {
	table, err := u.table(name)
	if err != nil {
		return nil, err
	}

	values := table.DistinctValues(column)
	if values == nil {
		values = []string{}
	}
	return values, nil
}

// Link joins two datasets and returns, per primary row, the matching
// secondary rows. dataset.ErrNoLinkage propagates unchanged so the handler
// can distinguish "cannot link" from "linked, nothing matched".
func (u *benchmarkUsecase) Link(ctx context.Context, primaryName, secondaryName string) (*dto.BenchmarkLinkResponse, error) {
	primary, err := u.table(primaryName)
	if err != nil {
		return nil, err
	}
	secondary, err := u.table(secondaryName)
	if err != nil {
		return nil, err
	}

	linkage, err := dataset.Link(primary, secondary)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.BenchmarkLinkItem, 0, len(primary.Rows))
	for _, row := range primary.Rows {
		entries = append(entries, dto.BenchmarkLinkItem{
			Row:     row,
			Matches: linkage.MatchesFor(row),
		})
	}

	return &dto.BenchmarkLinkResponse{
		Primary:   primaryName,
		Secondary: secondaryName,
		LinkKey:   string(linkage.Key),
		Entries:   entries,
	}, nil
}

func (u *benchmarkUsecase) table(name string) (*dataset.Table, error) {
	if _, registered := dataset.DataFiles[name]; !registered {
		return nil, ErrDatasetNotFound
	}
	table, ok := u.tables[name]
	if !ok {
		return nil, ErrDatasetNotLoaded
	}
	return table, nil
}
