package entity

import "strings"

// Completion scoring: a 0-100 presence heuristic over an athlete's record,
// used by scouts to triage candidates. The score is a pure function of the
// current record state and is recomputed on every request; no stored score
// is ever trusted.
//
// Sub-score bounds: profile 60, metrics 25, uploads 15.
const (
	CompletionProfileMax = 60
	CompletionMetricsMax = 25
	CompletionUploadsMax = 15
	CompletionTotalMax   = 100
)

// CompletionBreakdown carries the per-section sub-scores.
type CompletionBreakdown struct {
	Profile int `json:"profile"`
	Metrics int `json:"metrics"`
	Uploads int `json:"uploads"`
}

// CompletionScore is the scoring result returned to callers.
type CompletionScore struct {
	Total     int                 `json:"total"`
	Breakdown CompletionBreakdown `json:"breakdown"`
}

// profileFieldWeights sum to 50; the photo field carries the remaining 10
// and is existence-checked rather than null-checked (see scoreProfile).
// Together they reach the profile bound exactly, so the clamp below never
// fires on a well-formed table and a missing photo always shows in the score.
var profileFieldWeights = []struct {
	weight  int
	present func(a *Athlete) bool
}{
	{8, func(a *Athlete) bool { return fieldPresent(a.FullName) }},
	{7, func(a *Athlete) bool { return fieldPresent(a.Gender) }},
	{7, func(a *Athlete) bool { return a.BirthYear != nil }},
	{7, func(a *Athlete) bool { return fieldPresent(a.AgeGroup) }},
	{7, func(a *Athlete) bool { return fieldPresent(a.Sport) }},
	{5, func(a *Athlete) bool { return fieldPresent(a.DominantSide) }},
	{5, func(a *Athlete) bool { return fieldPresent(a.Club) }},
	{4, func(a *Athlete) bool { return fieldPresent(a.City) }},
}

const photoWeight = 10

// uploadTypeWeights award a one-time bonus per upload type present.
var uploadTypeWeights = map[UploadType]int{
	UploadTypeMedicalPDF: 6,
	UploadTypePhoto:      5,
	UploadTypeVideo:      4,
}

// metricCountSteps is evaluated highest-first; the first matching threshold
// wins.
var metricCountSteps = []struct {
	minEntries int
	score      int
}{
	{12, 25},
	{6, 18},
	{3, 10},
	{1, 5},
}

// ComputeCompletion scores an athlete record from its profile fields, its
// metric entries and its uploads. photoExists must reflect whether
// a.PhotoPath resolves to a real file at computation time; a stored path
// whose file is gone scores as if no photo were set.
func ComputeCompletion(a *Athlete, metrics []MetricEntry, uploads []UploadRecord, photoExists bool) CompletionScore {
	breakdown := CompletionBreakdown{
		Profile: scoreProfile(a, photoExists),
		Metrics: scoreMetrics(len(metrics)),
		Uploads: scoreUploads(uploads),
	}

	total := clamp(breakdown.Profile+breakdown.Metrics+breakdown.Uploads, 0, CompletionTotalMax)
	return CompletionScore{Total: total, Breakdown: breakdown}
}

func scoreProfile(a *Athlete, photoExists bool) int {
	if a == nil {
		return 0
	}

	score := 0
	for _, fw := range profileFieldWeights {
		if fw.present(a) {
			score += fw.weight
		}
	}
	if fieldPresent(a.PhotoPath) && photoExists {
		score += photoWeight
	}
	return clamp(score, 0, CompletionProfileMax)
}

func scoreMetrics(entryCount int) int {
	for _, step := range metricCountSteps {
		if entryCount >= step.minEntries {
			return step.score
		}
	}
	return 0
}

func scoreUploads(uploads []UploadRecord) int {
	seen := map[UploadType]bool{}
	score := 0
	for _, up := range uploads {
		if seen[up.UploadType] {
			continue
		}
		seen[up.UploadType] = true
		score += uploadTypeWeights[up.UploadType]
	}
	return clamp(score, 0, CompletionUploadsMax)
}

func fieldPresent(v string) bool {
	return strings.TrimSpace(v) != ""
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
