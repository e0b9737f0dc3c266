package usecase

import (
	"context"
	"errors"
	"testing"

	"asabig-talent-platform/internal/dataset"
	"asabig-talent-platform/internal/delivery/dto"

	"github.com/sirupsen/logrus"
)

func benchmarkFixture() BenchmarkUsecase {
	talent := dataset.NewTable("generic_talent_data",
		[]string{"athlete_id", "full_name", "age_group", "gender", "sport"},
		[][]string{
			{"a1", "Dana", "U14", "F", "Football"},
			{"a2", "Omer", "U14", "M", "Football"},
			{"a3", "Noa", "U16", "M/F", "Basketball"},
		})
	tests := dataset.NewTable("field_tests",
		[]string{"athlete_id", "test", "result"},
		[][]string{
			{"a1", "sprint_20m", "3.41"},
			{"a1", "vertical_jump", "31"},
			{"a3", "sprint_20m", "3.55"},
		})
	medical := dataset.NewTable("medical_data",
		[]string{"player name", "clearance"},
		[][]string{
			{"Dana", "cleared"},
		})
	kpis := dataset.NewTable("sport_specific_kpis",
		[]string{"kpi", "value"},
		[][]string{
			{"pass_accuracy", "0.81"},
		})

	tables := map[string]*dataset.Table{
		"generic_talent_data": talent,
		"field_tests":         tests,
		"medical_data":        medical,
		"sport_specific_kpis": kpis,
	}
	statuses := []dataset.Status{
		{Dataset: "athlete_tests", File: "athlete_tests.csv", Error: "open athlete_tests.csv: file does not exist"},
		{Dataset: "field_tests", File: "field_tests.csv", Loaded: true, Rows: 3},
		{Dataset: "generic_talent_data", File: "generic_talent_data.csv", Loaded: true, Rows: 3},
	}

	return NewBenchmarkUsecase(logrus.New(), tables, statuses)
}

func TestBenchmarkViewAppliesInclusiveGenderFilter(t *testing.T) {
	u := benchmarkFixture()

	view, err := u.View(context.Background(), "generic_talent_data", &dto.BenchmarkQuery{Gender: "F"})
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if view.Total != 2 {
		t.Fatalf("expected F selection to keep F and M/F rows, got %d rows", view.Total)
	}
	for _, row := range view.Rows {
		if row[3] != "F" && row[3] != "M/F" {
			t.Errorf("unexpected row gender %q", row[3])
		}
	}
}

func TestBenchmarkViewAllKeepsEveryRow(t *testing.T) {
	u := benchmarkFixture()

	view, err := u.View(context.Background(), "generic_talent_data", &dto.BenchmarkQuery{Gender: "All", AgeGroup: "All"})
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if view.Total != 3 {
		t.Fatalf("All filters must keep every row, got %d", view.Total)
	}
}

func TestBenchmarkViewCombinedFilters(t *testing.T) {
	u := benchmarkFixture()

	view, err := u.View(context.Background(), "generic_talent_data", &dto.BenchmarkQuery{AgeGroup: "U14", Gender: "M"})
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if view.Total != 1 || view.Rows[0][1] != "Omer" {
		t.Fatalf("expected only Omer, got %v", view.Rows)
	}
}

func TestBenchmarkViewIgnoresFiltersOnMissingColumns(t *testing.T) {
	u := benchmarkFixture()

	view, err := u.View(context.Background(), "sport_specific_kpis", &dto.BenchmarkQuery{Gender: "F", AgeGroup: "U14"})
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if view.Total != 1 {
		t.Fatalf("filters on absent columns must be no-ops, got %d rows", view.Total)
	}
}

func TestBenchmarkViewUnknownAndUnloadedDatasets(t *testing.T) {
	u := benchmarkFixture()

	if _, err := u.View(context.Background(), "nope", &dto.BenchmarkQuery{}); !errors.Is(err, ErrDatasetNotFound) {
		t.Errorf("unknown dataset: got %v, want ErrDatasetNotFound", err)
	}
	if _, err := u.View(context.Background(), "athlete_tests", &dto.BenchmarkQuery{}); !errors.Is(err, ErrDatasetNotLoaded) {
		t.Errorf("registered but unloaded dataset: got %v, want ErrDatasetNotLoaded", err)
	}
}

func TestBenchmarkLinkByAthleteID(t *testing.T) {
	u := benchmarkFixture()

	resp, err := u.Link(context.Background(), "generic_talent_data", "field_tests")
	if err != nil {
		t.Fatalf("Link: %v", err)
	}
	if resp.LinkKey != "athlete_id" {
		t.Fatalf("expected athlete_id linkage, got %q", resp.LinkKey)
	}
	if len(resp.Entries) != 3 {
		t.Fatalf("expected one entry per primary row, got %d", len(resp.Entries))
	}
	if len(resp.Entries[0].Matches) != 2 {
		t.Errorf("a1 has two test rows, got %d", len(resp.Entries[0].Matches))
	}
	if len(resp.Entries[1].Matches) != 0 {
		t.Errorf("a2 has no test rows, got %d", len(resp.Entries[1].Matches))
	}
}

func TestBenchmarkLinkFallsBackToName(t *testing.T) {
	u := benchmarkFixture()

	resp, err := u.Link(context.Background(), "generic_talent_data", "medical_data")
	if err != nil {
		t.Fatalf("Link: %v", err)
	}
	if resp.LinkKey != "full_name" {
		t.Fatalf("expected full_name linkage, got %q", resp.LinkKey)
	}
	if len(resp.Entries[0].Matches) != 1 {
		t.Errorf("Dana should match one medical row, got %d", len(resp.Entries[0].Matches))
	}
}

func TestBenchmarkLinkImpossible(t *testing.T) {
	u := benchmarkFixture()

	if _, err := u.Link(context.Background(), "generic_talent_data", "sport_specific_kpis"); !errors.Is(err, dataset.ErrNoLinkage) {
		t.Fatalf("expected ErrNoLinkage, got %v", err)
	}
}

func TestBenchmarkStatusesMirrorLoadOutcomes(t *testing.T) {
	u := benchmarkFixture()

	statuses := u.Statuses(context.Background())
	if len(statuses) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(statuses))
	}
	if statuses[0].Loaded || statuses[0].Error == "" {
		t.Errorf("failed dataset must carry its error: %+v", statuses[0])
	}
	if !statuses[1].Loaded || statuses[1].Rows != 3 {
		t.Errorf("loaded dataset must report row count: %+v", statuses[1])
	}
}

func TestBenchmarkFilterOptions(t *testing.T) {
	u := benchmarkFixture()

	values, err := u.FilterOptions(context.Background(), "generic_talent_data", "age_group")
	if err != nil {
		t.Fatalf("FilterOptions: %v", err)
	}
	if len(values) != 2 || values[0] != "U14" || values[1] != "U16" {
		t.Fatalf("expected sorted distinct age groups, got %v", values)
	}

	if values, _ := u.FilterOptions(context.Background(), "generic_talent_data", "missing"); len(values) != 0 {
		t.Errorf("missing column must yield no options, got %v", values)
	}
}
