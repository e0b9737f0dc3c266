package entity

import (
	"testing"
	"time"
)

func fullAthlete() *Athlete {
	year := 2010
	return &Athlete{
		FullName:     "A",
		Gender:       GenderBoth,
		BirthYear:    &year,
		AgeGroup:     "U14",
		Sport:        "Football",
		Club:         "Demo Academy",
		City:         "Riyadh",
		DominantSide: "Right",
		PhotoPath:    "photos/a.jpg",
	}
}

func metricEntries(n int) []MetricEntry {
	entries := make([]MetricEntry, n)
	for i := range entries {
		entries[i] = MetricEntry{MetricName: "sprint_30m", Value: 4.5, MeasuredAt: time.Now()}
	}
	return entries
}

func TestCompletionFullRecordScores100(t *testing.T) {
	uploads := []UploadRecord{
		{UploadType: UploadTypeMedicalPDF},
		{UploadType: UploadTypePhoto},
		{UploadType: UploadTypeVideo},
	}

	score := ComputeCompletion(fullAthlete(), metricEntries(12), uploads, true)
	if score.Total != 100 {
		t.Fatalf("expected total 100, got %d (breakdown %+v)", score.Total, score.Breakdown)
	}
	if score.Breakdown.Profile != 60 || score.Breakdown.Metrics != 25 || score.Breakdown.Uploads != 15 {
		t.Fatalf("unexpected breakdown %+v", score.Breakdown)
	}
}

func TestCompletionEmptyRecordScoresZero(t *testing.T) {
	score := ComputeCompletion(&Athlete{}, nil, nil, false)
	if score.Total != 0 {
		t.Fatalf("expected total 0, got %d", score.Total)
	}
	if score.Breakdown != (CompletionBreakdown{}) {
		t.Fatalf("expected zero breakdown, got %+v", score.Breakdown)
	}
}

// Full profile with existing photo, 6 metric entries, only a photo upload.
func TestCompletionScenario83(t *testing.T) {
	uploads := []UploadRecord{{UploadType: UploadTypePhoto}}

	score := ComputeCompletion(fullAthlete(), metricEntries(6), uploads, true)
	if score.Breakdown.Profile != 60 {
		t.Errorf("profile = %d, want 60", score.Breakdown.Profile)
	}
	if score.Breakdown.Metrics != 18 {
		t.Errorf("metrics = %d, want 18", score.Breakdown.Metrics)
	}
	if score.Breakdown.Uploads != 5 {
		t.Errorf("uploads = %d, want 5", score.Breakdown.Uploads)
	}
	if score.Total != 83 {
		t.Fatalf("total = %d, want 83", score.Total)
	}
}

// The non-photo weights plus the photo weight must land exactly on the
// profile bound; any surplus would be eaten by the clamp and hide the
// photo check on complete profiles.
func TestCompletionProfileWeightsSumToBound(t *testing.T) {
	sum := photoWeight
	for _, fw := range profileFieldWeights {
		sum += fw.weight
	}
	if sum != CompletionProfileMax {
		t.Fatalf("profile weights sum to %d, want %d", sum, CompletionProfileMax)
	}
}

func TestCompletionPhotoIsExistenceChecked(t *testing.T) {
	a := fullAthlete()
	with := ComputeCompletion(a, nil, nil, true)
	without := ComputeCompletion(a, nil, nil, false)
	if with.Breakdown.Profile != 60 || without.Breakdown.Profile != 50 {
		t.Fatalf("photo must be visible on a full profile: with=%d without=%d", with.Breakdown.Profile, without.Breakdown.Profile)
	}

	// A missing path scores 0 for photo even if the fs check were true.
	a.PhotoPath = ""
	if got := ComputeCompletion(a, nil, nil, true).Breakdown.Profile; got != without.Breakdown.Profile {
		t.Fatalf("empty photo path must not score: got %d", got)
	}
}

func TestCompletionMetricsStepFunction(t *testing.T) {
	cases := map[int]int{0: 0, 1: 5, 2: 5, 3: 10, 5: 10, 6: 18, 11: 18, 12: 25, 40: 25}
	for count, want := range cases {
		if got := scoreMetrics(count); got != want {
			t.Errorf("scoreMetrics(%d) = %d, want %d", count, got, want)
		}
	}
}

func TestCompletionMetricsMonotonic(t *testing.T) {
	prev := 0
	for count := 0; count <= 20; count++ {
		got := scoreMetrics(count)
		if got < prev {
			t.Fatalf("metrics score decreased at count %d: %d < %d", count, got, prev)
		}
		prev = got
	}
}

func TestCompletionUploadsMonotonicAndIdempotent(t *testing.T) {
	var uploads []UploadRecord
	prev := 0
	for _, typ := range []UploadType{UploadTypeVideo, UploadTypeMedicalPDF, UploadTypePhoto} {
		uploads = append(uploads, UploadRecord{UploadType: typ})
		got := scoreUploads(uploads)
		if got < prev {
			t.Fatalf("uploads score decreased after adding %s: %d < %d", typ, got, prev)
		}
		prev = got
	}
	if prev != 15 {
		t.Fatalf("all three types should score 15, got %d", prev)
	}

	// Duplicates of an already-present type change nothing.
	uploads = append(uploads, UploadRecord{UploadType: UploadTypePhoto})
	if got := scoreUploads(uploads); got != 15 {
		t.Fatalf("duplicate upload type altered score: %d", got)
	}
	uploads = append(uploads, UploadRecord{UploadType: UploadTypeOther})
	if got := scoreUploads(uploads); got != 15 {
		t.Fatalf("'other' uploads must not score: %d", got)
	}
}

// The clamps must hold even if the weight tables are misconfigured.
func TestCompletionClampsMisconfiguredWeights(t *testing.T) {
	origProfile := profileFieldWeights
	origUploads := uploadTypeWeights
	defer func() {
		profileFieldWeights = origProfile
		uploadTypeWeights = origUploads
	}()

	profileFieldWeights = append([]struct {
		weight  int
		present func(a *Athlete) bool
	}{}, origProfile...)
	profileFieldWeights[0].weight = 500

	uploadTypeWeights = map[UploadType]int{
		UploadTypeMedicalPDF: 50,
		UploadTypePhoto:      50,
		UploadTypeVideo:      50,
	}

	uploads := []UploadRecord{
		{UploadType: UploadTypeMedicalPDF},
		{UploadType: UploadTypePhoto},
		{UploadType: UploadTypeVideo},
	}
	score := ComputeCompletion(fullAthlete(), metricEntries(12), uploads, true)
	if score.Breakdown.Profile > CompletionProfileMax {
		t.Errorf("profile sub-score exceeded bound: %d", score.Breakdown.Profile)
	}
	if score.Breakdown.Uploads > CompletionUploadsMax {
		t.Errorf("uploads sub-score exceeded bound: %d", score.Breakdown.Uploads)
	}
	if score.Total > CompletionTotalMax {
		t.Errorf("total exceeded bound: %d", score.Total)
	}
}

func TestCompletionNilAthlete(t *testing.T) {
	score := ComputeCompletion(nil, nil, nil, false)
	if score.Total != 0 {
		t.Fatalf("nil athlete must score 0, got %d", score.Total)
	}
}
