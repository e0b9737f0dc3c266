package dataset

import (
	"testing"

	"asabig-talent-platform/internal/domain/entity"
)

func benchmarkTable() *Table {
	return NewTable("generic_talent_data",
		[]string{"Age Group(s)", "Gender", "Sport", "Benchmark"},
		[][]string{
			{"U12", "M", "Football", "12.5"},
			{"U12", "F", "Football", "13.1"},
			{"U12", "M/F", "Football", "12.8"},
			{"U14", "X", "Basketball", "11.9"},
		})
}

func TestColumnLookupIsCaseInsensitive(t *testing.T) {
	tbl := benchmarkTable()
	for _, name := range []string{"Gender", "gender", "GENDER", " gender "} {
		if _, ok := tbl.Column(name); !ok {
			t.Errorf("column lookup failed for %q", name)
		}
	}
	if _, ok := tbl.Column("missing"); ok {
		t.Error("lookup of missing column should fail")
	}
}

func TestFilterEqualKeepsAllForSentinel(t *testing.T) {
	tbl := benchmarkTable()
	if got := tbl.FilterEqual("Sport", "All"); len(got.Rows) != len(tbl.Rows) {
		t.Fatalf("All sentinel should keep every row, got %d", len(got.Rows))
	}
	if got := tbl.FilterEqual("Sport", "Football"); len(got.Rows) != 3 {
		t.Fatalf("expected 3 Football rows, got %d", len(got.Rows))
	}
	// Missing column leaves the table unchanged, like the dashboard.
	if got := tbl.FilterEqual("Position", "GK"); len(got.Rows) != len(tbl.Rows) {
		t.Fatalf("missing column must not filter, got %d rows", len(got.Rows))
	}
}

func TestFilterGenderInclusive(t *testing.T) {
	tbl := benchmarkTable()

	males := tbl.FilterGender("Gender", entity.SelectionMale)
	if len(males.Rows) != 2 {
		t.Fatalf("M selection should keep M and M/F rows, got %d", len(males.Rows))
	}

	females := tbl.FilterGender("Gender", entity.SelectionFemale)
	if len(females.Rows) != 2 {
		t.Fatalf("F selection should keep F and M/F rows, got %d", len(females.Rows))
	}
	if females.Rows[0][1] != "F" || females.Rows[1][1] != "M/F" {
		t.Fatalf("F selection kept wrong rows: %v", females.Rows)
	}

	strict := tbl.FilterGender("Gender", entity.SelectionBoth)
	if len(strict.Rows) != 1 || strict.Rows[0][1] != "M/F" {
		t.Fatalf("M/F selection must be strict, got %v", strict.Rows)
	}

	all := tbl.FilterGender("Gender", entity.SelectionAll)
	if len(all.Rows) != 4 {
		t.Fatalf("All selection must keep unparseable rows too, got %d", len(all.Rows))
	}
}

func TestDistinctValuesSorted(t *testing.T) {
	tbl := benchmarkTable()
	got := tbl.DistinctValues("Age Group(s)")
	if len(got) != 2 || got[0] != "U12" || got[1] != "U14" {
		t.Fatalf("distinct age groups = %v", got)
	}
	if vals := tbl.DistinctValues("nope"); vals != nil {
		t.Fatalf("missing column should yield nil, got %v", vals)
	}
}

func TestValueToleratesRaggedRows(t *testing.T) {
	tbl := NewTable("ragged", []string{"a", "b", "c"}, [][]string{{"1"}})
	if v := tbl.Value(tbl.Rows[0], 2); v != "" {
		t.Fatalf("short row should read empty, got %q", v)
	}
}
