package entity

import "strings"

// Canonical gender values stored on records. M/F marks mixed or dual-gender
// rows (common in imported benchmark data) and is included by either
// single-gender selection.
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderBoth   = "M/F"
)

// GenderSelection is a filter value chosen by a caller. SelectionAll is the
// explicit no-filter sentinel; the three others carry the canonical value
// they select.
type GenderSelection string

const (
	SelectionAll    GenderSelection = "All"
	SelectionMale   GenderSelection = GenderMale
	SelectionFemale GenderSelection = GenderFemale
	SelectionBoth   GenderSelection = GenderBoth
)

// genderAliases maps trimmed, lowercased raw inputs to canonical values.
var genderAliases = map[string]string{
	"m":      GenderMale,
	"male":   GenderMale,
	"boy":    GenderMale,
	"f":      GenderFemale,
	"female": GenderFemale,
	"girl":   GenderFemale,
	"m/f":    GenderBoth,
	"m\\f":   GenderBoth,
	"m / f":  GenderBoth,
	"mf":     GenderBoth,
	"both":   GenderBoth,
	"mixed":  GenderBoth,
}

// NormalizeGender canonicalizes a raw gender value. Unrecognized input is
// returned unchanged so the caller can store what it received; normalization
// is idempotent.
func NormalizeGender(raw string) string {
	if canonical, ok := genderAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return canonical
	}
	return raw
}

// ParseGenderSelection turns a raw query value into a selection. Empty,
// "All" and anything unrecognized mean no filtering.
func ParseGenderSelection(raw string) GenderSelection {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, string(SelectionAll)) {
		return SelectionAll
	}
	switch NormalizeGender(trimmed) {
	case GenderMale:
		return SelectionMale
	case GenderFemale:
		return SelectionFemale
	case GenderBoth:
		return SelectionBoth
	}
	return SelectionAll
}

// Matches reports whether a record with the given raw gender value is
// included under the selection. A single-gender selection includes its own
// gender plus M/F records; the M/F selection includes only M/F records;
// missing or unrecognized record genders are excluded by every selection
// except All.
func (s GenderSelection) Matches(recordGender string) bool {
	if s == SelectionAll {
		return true
	}

	switch NormalizeGender(recordGender) {
	case GenderMale:
		return s == SelectionMale
	case GenderFemale:
		return s == SelectionFemale
	case GenderBoth:
		return true
	}
	return false
}

// AcceptedGenders lists the canonical record values included under the
// selection, for use in SQL IN clauses. Nil means no gender predicate.
func (s GenderSelection) AcceptedGenders() []string {
	switch s {
	case SelectionMale:
		return []string{GenderMale, GenderBoth}
	case SelectionFemale:
		return []string{GenderFemale, GenderBoth}
	case SelectionBoth:
		return []string{GenderBoth}
	}
	return nil
}
