package ranking

import (
	"testing"

	"reelfinder/internal/candidate"
)

func scored(url string, durationSeconds int, quality int, confidence float64, verified bool, views int64) candidate.Candidate {
	v := views
	return candidate.Candidate{
		URL:      url,
		Duration: durationSeconds,
		Views:    &v,
		Era:      &candidate.EraVerdict{QualityScore: quality, IsPre1965: true},
		Verification: &candidate.VerificationRecord{
			Confidence: confidence,
			Verified:   verified,
		},
	}
}

func TestScoreFullSignals(t *testing.T) {
	// 105 minutes, quality 9, confidence 90, verified, 150k views:
	// 36 + 27 + 10 + 10 + 10 = 93.0.
	cand := scored("a", 6300, 9, 90, true, 150000)
	if got := Score(cand); got != 93.0 {
		t.Fatalf("Score = %v, want 93.0", got)
	}
}

func TestScoreMissingBlocks(t *testing.T) {
	// No verdicts at all: only the duration bonus applies.
	cand := candidate.Candidate{URL: "bare", Duration: 90 * 60}
	if got := Score(cand); got != 10.0 {
		t.Fatalf("Score = %v, want 10.0", got)
	}
}

func TestDurationBands(t *testing.T) {
	tests := []struct {
		minutes int
		want    float64
	}{
		{69, 7}, {70, 10}, {120, 10}, {121, 7},
		{60, 7}, {150, 7}, {59, 4}, {151, 4},
		{45, 4}, {180, 4}, {44, 0}, {181, 0},
	}
	for _, tt := range tests {
		cand := candidate.Candidate{Duration: tt.minutes * 60}
		if got := Score(cand); got != tt.want {
			t.Errorf("Score(%d min) = %v, want %v", tt.minutes, got, tt.want)
		}
	}
}

func TestPopularityBands(t *testing.T) {
	tests := []struct {
		views int64
		want  float64
	}{
		{0, 0}, {999, 0}, {1000, 3}, {9999, 3},
		{10000, 5}, {49999, 5}, {50000, 7}, {99999, 7}, {100000, 10},
	}
	for _, tt := range tests {
		v := tt.views
		cand := candidate.Candidate{Views: &v}
		if got := Score(cand); got != tt.want {
			t.Errorf("Score(%d views) = %v, want %v", tt.views, got, tt.want)
		}
	}
}

func TestScoreRange(t *testing.T) {
	max := scored("max", 100*60, 10, 100, true, 1000000)
	if got := Score(max); got != 100.0 {
		t.Errorf("maximum Score = %v, want 100.0", got)
	}
	min := candidate.Candidate{URL: "min", Duration: 10 * 60}
	if got := Score(min); got != 0.0 {
		t.Errorf("minimum Score = %v, want 0.0", got)
	}
}

func TestRankDescendingAndStable(t *testing.T) {
	// b and c tie exactly; their input order must survive.
	a := scored("a", 6300, 9, 90, true, 150000) // 93.0
	b := scored("b", 90*60, 5, 60, false, 20000)
	c := scored("c", 90*60, 5, 60, false, 20000)
	d := scored("d", 50*60, 3, 20, false, 0)

	ranked := Rank([]candidate.Candidate{d, b, c, a})
	gotOrder := []string{ranked[0].URL, ranked[1].URL, ranked[2].URL, ranked[3].URL}
	wantOrder := []string{"a", "b", "c", "d"}
	for i := range wantOrder {
		if gotOrder[i] != wantOrder[i] {
			t.Fatalf("order = %v, want %v", gotOrder, wantOrder)
		}
	}
	if *ranked[1].FinalScore != *ranked[2].FinalScore {
		t.Fatal("tie candidates scored differently")
	}
}

func TestRankDeterministic(t *testing.T) {
	in := []candidate.Candidate{
		scored("x", 80*60, 7, 75, true, 5000),
		scored("y", 100*60, 8, 50, false, 200000),
		scored("z", 160*60, 6, 95, true, 800),
	}
	first := Rank(in)
	second := Rank(in)
	for i := range first {
		if first[i].URL != second[i].URL || *first[i].FinalScore != *second[i].FinalScore {
			t.Fatalf("rank not deterministic at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	in := []candidate.Candidate{scored("a", 90*60, 5, 50, false, 0)}
	Rank(in)
	if in[0].FinalScore != nil {
		t.Fatal("input slice was mutated")
	}
}
