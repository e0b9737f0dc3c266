package dataset

import "errors"

// ErrNoLinkage is returned when two tables share neither an identifier
// column nor a usable name column. Distinct from a linkage that simply
// matches zero rows, which is a valid empty result.
var ErrNoLinkage = errors.New("no linkage possible between tables")

// LinkKey identifies which join key a linkage uses.
type LinkKey string

const (
	LinkKeyID   LinkKey = "athlete_id"
	LinkKeyName LinkKey = "full_name"
)

const (
	idColumn          = "athlete_id"
	primaryNameColumn = "full_name"
)

// Linkage associates rows of a secondary table with rows of a primary table.
type Linkage struct {
	Primary   *Table
	Secondary *Table
	Key       LinkKey

	primaryCol   int
	secondaryCol int
}

// Link resolves a join between two independently-loaded tables.
//
// Preferred key: an athlete_id column present in BOTH tables. Fallback: the
// primary's full_name column against the secondary's first column containing
// "name" (exact, case-sensitive equality; no whitespace normalization —
// duplicate names across athletes will merge their rows, a known limitation
// carried over from the source data model).
func Link(primary, secondary *Table) (*Linkage, error) {
	if pIdx, ok := primary.Column(idColumn); ok {
		if sIdx, ok := secondary.Column(idColumn); ok {
			return &Linkage{
				Primary:      primary,
				Secondary:    secondary,
				Key:          LinkKeyID,
				primaryCol:   pIdx,
				secondaryCol: sIdx,
			}, nil
		}
	}

	if pIdx, ok := primary.Column(primaryNameColumn); ok {
		if sIdx, ok := secondary.columnContaining("name"); ok {
			return &Linkage{
				Primary:      primary,
				Secondary:    secondary,
				Key:          LinkKeyName,
				primaryCol:   pIdx,
				secondaryCol: sIdx,
			}, nil
		}
	}

	return nil, ErrNoLinkage
}

// MatchesFor returns every secondary row linked to the given primary row.
// One primary row may match many secondary rows (repeated test entries);
// callers must treat the result as a collection. An empty slice is a valid
// "linked but nothing recorded" outcome.
func (l *Linkage) MatchesFor(primaryRow []string) [][]string {
	key := l.Primary.Value(primaryRow, l.primaryCol)

	matches := [][]string{}
	if key == "" {
		return matches
	}
	for _, row := range l.Secondary.Rows {
		if l.Secondary.Value(row, l.secondaryCol) == key {
			matches = append(matches, row)
		}
	}
	return matches
}
