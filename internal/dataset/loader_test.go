package dataset

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

func TestLoadParsesHeaderAndRows(t *testing.T) {
	fs := afero.NewMemMapFs()
	csv := "athlete_id,full_name,gender\nA1,Sara,F\nA2,Omar,M\n"
	if err := afero.WriteFile(fs, "/data/athletes.csv", []byte(csv), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	loader := NewLoader(fs, "/data", logrus.New())

	table, err := loader.Load("athletes")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(table.Columns) != 3 || len(table.Rows) != 2 {
		t.Fatalf("got %d columns, %d rows", len(table.Columns), len(table.Rows))
	}
	if idx, ok := table.Column("Full_Name"); !ok || table.Value(table.Rows[0], idx) != "Sara" {
		t.Fatalf("column reconciliation failed")
	}
}

func TestLoadUnknownDataset(t *testing.T) {
	loader := NewLoader(afero.NewMemMapFs(), "/data", logrus.New())
	if _, err := loader.Load("nope"); !errors.Is(err, ErrUnknownDataset) {
		t.Fatalf("expected ErrUnknownDataset, got %v", err)
	}
}

func TestLoadAllReportsPerFileStatus(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/data/athletes.csv", []byte("athlete_id,full_name\nA1,Sara\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	loader := NewLoader(fs, "/data", logrus.New())

	tables, statuses := loader.LoadAll()
	if len(tables) != 1 {
		t.Fatalf("expected only athletes loaded, got %d tables", len(tables))
	}
	if len(statuses) != len(DataFiles) {
		t.Fatalf("expected %d statuses, got %d", len(DataFiles), len(statuses))
	}
	for _, st := range statuses {
		if st.Dataset == "athletes" {
			if !st.Loaded || st.Rows != 1 {
				t.Fatalf("athletes status wrong: %+v", st)
			}
		} else if st.Loaded {
			t.Fatalf("missing file reported as loaded: %+v", st)
		}
	}
}
