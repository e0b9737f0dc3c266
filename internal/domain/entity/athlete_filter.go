package entity

// AthleteFilter is a domain-level filter for querying athlete records.
// Used by repository layer to avoid coupling with delivery DTOs.
type AthleteFilter struct {
	Gender   GenderSelection // inclusive selection, see gender.go
	Sport    string          // exact match
	Club     string          // filter by club/academy (ILIKE)
	City     string          // exact match
	AgeGroup string          // exact match
	Name     string          // filter by full name (ILIKE)
}
