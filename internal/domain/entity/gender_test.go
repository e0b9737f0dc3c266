package entity

import "testing"

func TestNormalizeGenderCanonicalizes(t *testing.T) {
	cases := map[string]string{
		"M":      GenderMale,
		"m":      GenderMale,
		"Male":   GenderMale,
		"MALE":   GenderMale,
		"F":      GenderFemale,
		"female": GenderFemale,
		"M/F":    GenderBoth,
		"m/f":    GenderBoth,
		"M\\F":   GenderBoth,
		"M / F":  GenderBoth,
		"MF":     GenderBoth,
		"both":   GenderBoth,
		" f ":    GenderFemale,
	}

	for raw, want := range cases {
		if got := NormalizeGender(raw); got != want {
			t.Errorf("NormalizeGender(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestNormalizeGenderPassesUnknownThrough(t *testing.T) {
	for _, raw := range []string{"X", "unknown", "", "N/A"} {
		if got := NormalizeGender(raw); got != raw {
			t.Errorf("NormalizeGender(%q) = %q, want input unchanged", raw, got)
		}
	}
}

func TestNormalizeGenderIdempotent(t *testing.T) {
	for _, raw := range []string{"Male", "FEMALE", "m / f", "X", "", "M"} {
		once := NormalizeGender(raw)
		if twice := NormalizeGender(once); twice != once {
			t.Errorf("normalize not idempotent for %q: %q -> %q", raw, once, twice)
		}
	}
}

// For canonical record genders and single-gender selections, inclusion holds
// iff the selection equals the record gender or the record is tagged M/F.
func TestSelectionMatchesInclusiveRule(t *testing.T) {
	genders := []string{GenderMale, GenderFemale, GenderBoth}
	selections := []GenderSelection{SelectionMale, SelectionFemale}

	for _, sel := range selections {
		for _, g := range genders {
			want := string(sel) == g || g == GenderBoth
			if got := sel.Matches(g); got != want {
				t.Errorf("selection %s vs record %s: got %v, want %v", sel, g, got, want)
			}
		}
	}
}

func TestSelectionAllMatchesEverything(t *testing.T) {
	for _, g := range []string{GenderMale, GenderFemale, GenderBoth, "X", ""} {
		if !SelectionAll.Matches(g) {
			t.Errorf("SelectionAll must include record gender %q", g)
		}
	}
}

func TestSelectionBothIsStrict(t *testing.T) {
	if !SelectionBoth.Matches(GenderBoth) {
		t.Error("M/F selection must include M/F records")
	}
	if SelectionBoth.Matches(GenderMale) || SelectionBoth.Matches(GenderFemale) {
		t.Error("M/F selection must not include single-gender records")
	}
}

func TestSelectionExcludesMissingAndUnknown(t *testing.T) {
	for _, sel := range []GenderSelection{SelectionMale, SelectionFemale, SelectionBoth} {
		for _, g := range []string{"", "X", "n/a"} {
			if sel.Matches(g) {
				t.Errorf("selection %s must exclude record gender %q", sel, g)
			}
		}
	}
}

func TestSelectionMatchesNormalizesRecordGender(t *testing.T) {
	if !SelectionFemale.Matches("female") {
		t.Error("raw 'female' should match F selection after normalization")
	}
	if !SelectionMale.Matches("m / f") {
		t.Error("raw 'm / f' should match M selection after normalization")
	}
}

// Filtering {M, F, M/F, X} by selection F keeps exactly the F and M/F rows.
func TestFemaleSelectionScenario(t *testing.T) {
	records := []string{GenderMale, GenderFemale, GenderBoth, "X"}
	var kept []int
	for i, g := range records {
		if SelectionFemale.Matches(g) {
			kept = append(kept, i)
		}
	}
	if len(kept) != 2 || kept[0] != 1 || kept[1] != 2 {
		t.Fatalf("expected rows [1 2] kept, got %v", kept)
	}
}

func TestParseGenderSelection(t *testing.T) {
	cases := map[string]GenderSelection{
		"All":    SelectionAll,
		"all":    SelectionAll,
		"":       SelectionAll,
		"M":      SelectionMale,
		"male":   SelectionMale,
		"F":      SelectionFemale,
		"M/F":    SelectionBoth,
		"bogus":  SelectionAll,
	}
	for raw, want := range cases {
		if got := ParseGenderSelection(raw); got != want {
			t.Errorf("ParseGenderSelection(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestAcceptedGenders(t *testing.T) {
	if vals := SelectionAll.AcceptedGenders(); vals != nil {
		t.Errorf("All selection should return nil, got %v", vals)
	}
	if vals := SelectionMale.AcceptedGenders(); len(vals) != 2 || vals[0] != GenderMale || vals[1] != GenderBoth {
		t.Errorf("M selection accepted genders = %v", vals)
	}
	if vals := SelectionBoth.AcceptedGenders(); len(vals) != 1 || vals[0] != GenderBoth {
		t.Errorf("M/F selection accepted genders = %v", vals)
	}
}
