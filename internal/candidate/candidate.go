package candidate

import (
	"fmt"
	"strings"
)

// Content types assigned by the first classification sub-stage. The set is
// closed; anything the classifier cannot place lands in ContentOther.
const (
	ContentMovie   = "MOVIE"
	ContentTrailer = "TRAILER"
	ContentReview  = "REVIEW"
	ContentPromo   = "PROMO"
	ContentTest    = "TEST"
	ContentEssay   = "ESSAY"
	ContentOther   = "OTHER"
)

// Candidate is a video record moving through the pipeline. Identity is the
// canonical URL. Fields below the search metadata are attached by later
// stages and stay nil until the producing stage has run, so any stage's
// output can be inspected in isolation.
type Candidate struct {
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Duration    int      `json:"duration"` // seconds, 0 when unknown
	CreatedTime string   `json:"created_time"`
	Views       *int64   `json:"views"`
	Likes       *int64   `json:"likes"`
	Comments    *int64   `json:"comments"`
	Author      string   `json:"author"`
	AuthorURL   string   `json:"author_url"`
	Tags        []string `json:"tags"`
	Categories  []string `json:"categories"`

	Content      *ContentVerdict     `json:"content_verdict,omitempty"`
	Narrative    *NarrativeVerdict   `json:"narrative_verdict,omitempty"`
	Era          *EraVerdict         `json:"era_verdict,omitempty"`
	Verification *VerificationRecord `json:"verification,omitempty"`
	FinalScore   *float64            `json:"final_score,omitempty"`
}

// ContentVerdict is attached by classification sub-stage A.
type ContentVerdict struct {
	Type       string  `json:"content_type"`
	Confidence float64 `json:"content_confidence"`
	Reasoning  string  `json:"content_reasoning"`
}

// NarrativeVerdict is attached by classification sub-stage B.
type NarrativeVerdict struct {
	IsFeatureFilm bool    `json:"is_feature_film"`
	HasNarrative  bool    `json:"has_narrative"`
	Confidence    float64 `json:"narrative_confidence"`
	Reasoning     string  `json:"film_reasoning"`
}

// EraVerdict is attached by classification sub-stage C.
type EraVerdict struct {
	ProductionYear *int   `json:"estimated_production_year"`
	Era            string `json:"estimated_era"`
	IsPre1965      bool   `json:"is_pre_1965"`
	Studio         string `json:"production_company"`
	IsFormalStudio bool   `json:"is_formal_studio"`
	Genre          string `json:"genre"`
	QualityScore   int    `json:"quality_score"`
	Reasoning      string `json:"era_reasoning"`
}

// VerificationRecord is attached by the cross-reference stage. Confidence is
// on a 0-100 scale.
type VerificationRecord struct {
	Verified        bool     `json:"verified"`
	Confidence      float64  `json:"confidence"`
	TMDBID          *int64   `json:"tmdb_id"`
	TMDBTitle       string   `json:"tmdb_title"`
	ReleaseYear     *int     `json:"release_year"`
	IsPre1965       bool     `json:"is_pre_1965"`
	Studios         []string `json:"production_companies"`
	IsClassicStudio bool     `json:"is_classic_studio"`
	RuntimeMinutes  *int     `json:"runtime_minutes"`
	RuntimeMatch    bool     `json:"runtime_match"`
	TitleSimilarity float64  `json:"title_similarity"`
	MatchReason     string   `json:"match_reason"`
}

// DurationMinutes returns the duration in fractional minutes.
func (c *Candidate) DurationMinutes() float64 {
	return float64(c.Duration) / 60.0
}

// ViewCount returns the popularity signal, treating unknown as 0.
func (c *Candidate) ViewCount() int64 {
	if c.Views == nil {
		return 0
	}
	return *c.Views
}

// FormatDuration renders the duration as HH:MM:SS, or MM:SS under an hour.
func (c *Candidate) FormatDuration() string {
	hours := c.Duration / 3600
	minutes := (c.Duration % 3600) / 60
	seconds := c.Duration % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// JoinedTags returns the tag list as one space-joined lowercase string for
// keyword scanning.
func (c *Candidate) JoinedTags() string {
	return strings.ToLower(strings.Join(c.Tags, " "))
}
