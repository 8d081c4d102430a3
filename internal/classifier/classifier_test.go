package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"reelfinder/internal/candidate"
)

// scriptedCompleter returns canned responses in order, or an error when the
// response for a call is the empty string.
type scriptedCompleter struct {
	responses []string
	calls     int
	prompts   []string
}

func (s *scriptedCompleter) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	s.prompts = append(s.prompts, userPrompt)
	if s.calls >= len(s.responses) {
		return "", errors.New("no scripted response left")
	}
	resp := s.responses[s.calls]
	s.calls++
	if resp == "" {
		return "", errors.New("transport failure")
	}
	return resp, nil
}

func noSleep(ctx context.Context, d time.Duration) error { return nil }

func newClassifier(t *testing.T, completer Completer, cfg Config) *Classifier {
	t.Helper()
	c, err := New(completer, cfg, nil, WithSleeper(noSleep))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return c
}

func contentVerdicts(verdicts ...candidate.ContentVerdict) string {
	data, _ := json.Marshal(verdicts)
	return string(data)
}

func TestClassifyContentRetainsConfidentMovies(t *testing.T) {
	completer := &scriptedCompleter{responses: []string{contentVerdicts(
		candidate.ContentVerdict{Type: candidate.ContentMovie, Confidence: 0.9, Reasoning: "feature drama"},
		candidate.ContentVerdict{Type: candidate.ContentTrailer, Confidence: 0.95, Reasoning: "two minute teaser"},
		candidate.ContentVerdict{Type: candidate.ContentMovie, Confidence: 0.7, Reasoning: "uncertain"},
	)}}
	c := newClassifier(t, completer, Config{})

	in := []candidate.Candidate{
		{Title: "A", URL: "a", Duration: 5400},
		{Title: "B", URL: "b", Duration: 120},
		{Title: "C", URL: "c", Duration: 5400},
	}
	out, err := c.ClassifyContent(context.Background(), in)
	if err != nil {
		t.Fatalf("ClassifyContent returned error: %v", err)
	}
	if len(out) != 1 || out[0].URL != "a" {
		t.Fatalf("survivors = %+v, want only candidate a", out)
	}
	if out[0].Content == nil || out[0].Content.Confidence != 0.9 {
		t.Errorf("verdict not attached: %+v", out[0].Content)
	}
}

func TestClassifyContentBoundaryExcluded(t *testing.T) {
	// Confidence exactly 0.7 must not survive: the rule is strictly greater.
	completer := &scriptedCompleter{responses: []string{contentVerdicts(
		candidate.ContentVerdict{Type: candidate.ContentMovie, Confidence: 0.70, Reasoning: "borderline"},
	)}}
	c := newClassifier(t, completer, Config{})
	out, err := c.ClassifyContent(context.Background(), []candidate.Candidate{{Title: "X", URL: "x"}})
	if err != nil {
		t.Fatalf("ClassifyContent returned error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("boundary confidence survived: %+v", out)
	}
}

func TestFailedBatchPassesThroughUnmodified(t *testing.T) {
	// First batch fails at transport level; its candidates must come out
	// unannotated and still survive retention. Second batch succeeds.
	good := contentVerdicts(
		candidate.ContentVerdict{Type: candidate.ContentMovie, Confidence: 0.9, Reasoning: "ok"},
	)
	completer := &scriptedCompleter{responses: []string{"", good}}
	c := newClassifier(t, completer, Config{ContentBatchSize: 8})

	var in []candidate.Candidate
	for i := 0; i < 9; i++ {
		in = append(in, candidate.Candidate{Title: fmt.Sprintf("Film %d", i), URL: fmt.Sprintf("u%d", i)})
	}
	out, err := c.ClassifyContent(context.Background(), in)
	if err != nil {
		t.Fatalf("ClassifyContent returned error: %v", err)
	}
	if len(out) != 9 {
		t.Fatalf("got %d survivors, want 9 (8 provisional + 1 classified)", len(out))
	}
	for i := 0; i < 8; i++ {
		if out[i].Content != nil {
			t.Errorf("candidate %d was annotated despite batch failure: %+v", i, out[i].Content)
		}
	}
	if out[8].Content == nil {
		t.Error("second batch candidate missing verdict")
	}
}

func TestVerdictCountMismatchTreatedAsFailure(t *testing.T) {
	// Two inputs, one verdict: the batch must pass through unannotated.
	completer := &scriptedCompleter{responses: []string{contentVerdicts(
		candidate.ContentVerdict{Type: candidate.ContentMovie, Confidence: 0.9, Reasoning: "only one"},
	)}}
	c := newClassifier(t, completer, Config{})
	in := []candidate.Candidate{{Title: "A", URL: "a"}, {Title: "B", URL: "b"}}
	out, err := c.ClassifyContent(context.Background(), in)
	if err != nil {
		t.Fatalf("ClassifyContent returned error: %v", err)
	}
	if len(out) != 2 || out[0].Content != nil || out[1].Content != nil {
		t.Fatalf("mismatched batch not passed through: %+v", out)
	}
}

func TestVerifyNarrativeRetention(t *testing.T) {
	verdicts, _ := json.Marshal([]candidate.NarrativeVerdict{
		{IsFeatureFilm: true, HasNarrative: true, Confidence: 0.9, Reasoning: "noir plot"},
		{IsFeatureFilm: true, HasNarrative: true, Confidence: 0.6, Reasoning: "boundary"},
		{IsFeatureFilm: false, HasNarrative: false, Confidence: 0.9, Reasoning: "documentary"},
	})
	completer := &scriptedCompleter{responses: []string{string(verdicts)}}
	c := newClassifier(t, completer, Config{})

	in := []candidate.Candidate{{URL: "a"}, {URL: "b"}, {URL: "c"}}
	out, err := c.VerifyNarrative(context.Background(), in)
	if err != nil {
		t.Fatalf("VerifyNarrative returned error: %v", err)
	}
	if len(out) != 1 || out[0].URL != "a" {
		t.Fatalf("survivors = %+v, want only candidate a", out)
	}
}

func TestVerifyEraRetention(t *testing.T) {
	year := 1942
	verdicts, _ := json.Marshal([]candidate.EraVerdict{
		{ProductionYear: &year, Era: "1940s", IsPre1965: true, QualityScore: 9, Reasoning: "wartime drama"},
		{Era: "1950s", IsPre1965: true, QualityScore: 5, Reasoning: "low score"},
		{Era: "modern", IsPre1965: false, QualityScore: 9, Reasoning: "recent"},
		{Era: "1930s", IsPre1965: true, QualityScore: 6, Reasoning: "boundary kept"},
	})
	completer := &scriptedCompleter{responses: []string{string(verdicts)}}
	c := newClassifier(t, completer, Config{})

	in := []candidate.Candidate{{URL: "a"}, {URL: "b"}, {URL: "c"}, {URL: "d"}}
	out, err := c.VerifyEra(context.Background(), in)
	if err != nil {
		t.Fatalf("VerifyEra returned error: %v", err)
	}
	if len(out) != 2 || out[0].URL != "a" || out[1].URL != "d" {
		t.Fatalf("survivors = %+v, want a and d", out)
	}
}

func TestClassifyHaltsOnEmptySet(t *testing.T) {
	// Stage one rejects everything; stages two and three must not call the
	// model at all.
	completer := &scriptedCompleter{responses: []string{contentVerdicts(
		candidate.ContentVerdict{Type: candidate.ContentPromo, Confidence: 0.9, Reasoning: "network ident"},
	)}}
	c := newClassifier(t, completer, Config{})

	out, err := c.Classify(context.Background(), []candidate.Candidate{{Title: "A", URL: "a"}})
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("got %d survivors, want 0", len(out))
	}
	if completer.calls != 1 {
		t.Errorf("model called %d times, want 1", completer.calls)
	}
}

func TestClassifyRunsAllStages(t *testing.T) {
	year := 1950
	content := contentVerdicts(candidate.ContentVerdict{Type: candidate.ContentMovie, Confidence: 0.9, Reasoning: "feature"})
	narrative, _ := json.Marshal([]candidate.NarrativeVerdict{{IsFeatureFilm: true, HasNarrative: true, Confidence: 0.85, Reasoning: "plot"}})
	era, _ := json.Marshal([]candidate.EraVerdict{{ProductionYear: &year, Era: "1950s", IsPre1965: true, QualityScore: 8, Reasoning: "classic"}})
	completer := &scriptedCompleter{responses: []string{content, string(narrative), string(era)}}
	c := newClassifier(t, completer, Config{})

	out, err := c.Classify(context.Background(), []candidate.Candidate{{Title: "Film", URL: "a", Duration: 6000}})
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d survivors, want 1", len(out))
	}
	final := out[0]
	if final.Content == nil || final.Narrative == nil || final.Era == nil {
		t.Errorf("verdict blocks missing: content=%v narrative=%v era=%v", final.Content, final.Narrative, final.Era)
	}
	if completer.calls != 3 {
		t.Errorf("model called %d times, want 3", completer.calls)
	}
}

func TestBatchPromptCarriesMetadata(t *testing.T) {
	completer := &scriptedCompleter{responses: []string{contentVerdicts(
		candidate.ContentVerdict{Type: candidate.ContentMovie, Confidence: 0.9, Reasoning: "ok"},
	)}}
	c := newClassifier(t, completer, Config{})

	views := int64(12345)
	in := []candidate.Candidate{{
		Title:       "His Girl Friday",
		URL:         "https://vimeo.com/1",
		Description: "1940 screwball comedy",
		Duration:    5520,
		Views:       &views,
		Author:      "Classic Films",
	}}
	if _, err := c.ClassifyContent(context.Background(), in); err != nil {
		t.Fatalf("ClassifyContent returned error: %v", err)
	}
	prompt := completer.prompts[0]
	for _, want := range []string{"His Girl Friday", "1940 screwball comedy", "92", "12345", "Classic Films"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestNewRequiresCompleter(t *testing.T) {
	if _, err := New(nil, Config{}, nil); err == nil {
		t.Fatal("expected error for nil completer")
	}
}
