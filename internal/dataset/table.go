package dataset

import (
	"sort"
	"strings"

	"asabig-talent-platform/internal/domain/entity"
)

// Table is an in-memory tabular dataset loaded from CSV. Column names are
// reconciled once at construction (lowercased lookup map); reads never probe
// headers again.
type Table struct {
	Name    string     `json:"name"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`

	colIndex map[string]int
}

// NewTable builds a table and its column index. Duplicate column names keep
// the first occurrence.
func NewTable(name string, columns []string, rows [][]string) *Table {
	t := &Table{
		Name:     name,
		Columns:  columns,
		Rows:     rows,
		colIndex: make(map[string]int, len(columns)),
	}
	for i, col := range columns {
		key := strings.ToLower(strings.TrimSpace(col))
		if _, exists := t.colIndex[key]; !exists {
			t.colIndex[key] = i
		}
	}
	return t
}

// Column returns the index of a column by case-insensitive name.
func (t *Table) Column(name string) (int, bool) {
	idx, ok := t.colIndex[strings.ToLower(strings.TrimSpace(name))]
	return idx, ok
}

// columnContaining returns the first column whose name contains the given
// fragment, case-insensitive. Used for the legacy name-column probe when
// linking tables without a shared identifier.
func (t *Table) columnContaining(fragment string) (int, bool) {
	fragment = strings.ToLower(fragment)
	for i, col := range t.Columns {
		if strings.Contains(strings.ToLower(col), fragment) {
			return i, true
		}
	}
	return -1, false
}

// Value reads a cell, tolerating ragged rows.
func (t *Table) Value(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// FilterEqual keeps rows whose column equals value exactly. A missing column
// or the "All" sentinel leaves the table unchanged, matching the dashboard
// dropdowns.
func (t *Table) FilterEqual(column, value string) *Table {
	if value == "" || value == "All" {
		return t
	}
	idx, ok := t.Column(column)
	if !ok {
		return t
	}

	var rows [][]string
	for _, row := range t.Rows {
		if t.Value(row, idx) == value {
			rows = append(rows, row)
		}
	}
	return NewTable(t.Name, t.Columns, rows)
}

// FilterGender keeps rows admitted by the inclusive gender selection rule.
// A table without the column is returned unchanged; SelectionAll keeps every
// row including unparseable gender values.
func (t *Table) FilterGender(column string, sel entity.GenderSelection) *Table {
	if sel == entity.SelectionAll {
		return t
	}
	idx, ok := t.Column(column)
	if !ok {
		return t
	}

	var rows [][]string
	for _, row := range t.Rows {
		if sel.Matches(t.Value(row, idx)) {
			rows = append(rows, row)
		}
	}
	return NewTable(t.Name, t.Columns, rows)
}

// DistinctValues returns the sorted distinct non-empty values of a column,
// for building filter dropdowns.
func (t *Table) DistinctValues(column string) []string {
	idx, ok := t.Column(column)
	if !ok {
		return nil
	}

	seen := map[string]bool{}
	var values []string
	for _, row := range t.Rows {
		v := t.Value(row, idx)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
