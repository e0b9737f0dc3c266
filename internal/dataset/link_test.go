package dataset

import (
	"errors"
	"testing"
)

func TestLinkPrefersAthleteID(t *testing.T) {
	athletes := NewTable("athletes",
		[]string{"athlete_id", "full_name"},
		[][]string{{"A1", "Sara"}, {"A2", "Omar"}})
	tests := NewTable("athlete_tests",
		[]string{"athlete_id", "test", "value"},
		[][]string{
			{"A1", "sprint_30m", "4.6"},
			{"A2", "sprint_30m", "4.4"},
			{"A1", "vertical_jump", "38"},
		})

	link, err := Link(athletes, tests)
	if err != nil {
		t.Fatalf("Link: %v", err)
	}
	if link.Key != LinkKeyID {
		t.Fatalf("expected athlete_id key, got %s", link.Key)
	}

	matches := link.MatchesFor(athletes.Rows[0])
	if len(matches) != 2 {
		t.Fatalf("expected 2 rows for A1, got %d", len(matches))
	}
}

func TestLinkFallsBackToName(t *testing.T) {
	athletes := NewTable("athletes",
		[]string{"full_name", "sport"},
		[][]string{{"Sara", "Football"}})
	tests := NewTable("athlete_tests",
		[]string{"player_name", "test", "value"},
		[][]string{
			{"Sara", "sprint_30m", "4.6"},
			{"sara", "sprint_30m", "4.9"},
			{"Sara ", "sprint_30m", "5.0"},
		})

	link, err := Link(athletes, tests)
	if err != nil {
		t.Fatalf("Link: %v", err)
	}
	if link.Key != LinkKeyName {
		t.Fatalf("expected name key, got %s", link.Key)
	}

	// Exact, case-sensitive equality only: "sara" and "Sara " do not match.
	matches := link.MatchesFor(athletes.Rows[0])
	if len(matches) != 1 || matches[0][2] != "4.6" {
		t.Fatalf("expected the single exact match, got %v", matches)
	}
}

func TestLinkReportsNoLinkage(t *testing.T) {
	athletes := NewTable("athletes",
		[]string{"sport", "club"},
		[][]string{{"Football", "Alpha"}})
	tests := NewTable("athlete_tests",
		[]string{"test", "value"},
		[][]string{{"sprint_30m", "4.6"}})

	if _, err := Link(athletes, tests); !errors.Is(err, ErrNoLinkage) {
		t.Fatalf("expected ErrNoLinkage, got %v", err)
	}
}

func TestLinkedButEmptyIsNotAnError(t *testing.T) {
	athletes := NewTable("athletes",
		[]string{"athlete_id", "full_name"},
		[][]string{{"A9", "Nora"}})
	tests := NewTable("athlete_tests",
		[]string{"athlete_id", "test"},
		[][]string{{"A1", "sprint_30m"}})

	link, err := Link(athletes, tests)
	if err != nil {
		t.Fatalf("Link: %v", err)
	}
	matches := link.MatchesFor(athletes.Rows[0])
	if matches == nil || len(matches) != 0 {
		t.Fatalf("expected empty non-nil match set, got %v", matches)
	}
}

func TestLinkEmptyKeyMatchesNothing(t *testing.T) {
	athletes := NewTable("athletes",
		[]string{"athlete_id"},
		[][]string{{""}})
	tests := NewTable("athlete_tests",
		[]string{"athlete_id", "test"},
		[][]string{{"", "sprint_30m"}})

	link, err := Link(athletes, tests)
	if err != nil {
		t.Fatalf("Link: %v", err)
	}
	if matches := link.MatchesFor(athletes.Rows[0]); len(matches) != 0 {
		t.Fatalf("blank keys must not join rows, got %v", matches)
	}
}
