package classifier

import (
	"reelfinder/internal/candidate"
)

// Request item shapes sent to the classification model, one array element
// per candidate in the batch.

type contentRequestItem struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	DurationMinutes float64  `json:"duration_minutes"`
	Tags            []string `json:"tags"`
	User            string   `json:"user"`
	Views           int64    `json:"views"`
}

type narrativeRequestItem struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	DurationMinutes  float64  `json:"duration_minutes"`
	ContentReasoning string   `json:"content_reasoning"`
	Tags             []string `json:"tags"`
	User             string   `json:"user"`
}

type eraRequestItem struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	DurationMinutes float64 `json:"duration_minutes"`
	CreatedDate     string  `json:"created_date"`
	User            string  `json:"user"`
	FilmReasoning   string  `json:"film_reasoning"`
}

func contentItem(cand candidate.Candidate) contentRequestItem {
	return contentRequestItem{
		Title:           cand.Title,
		Description:     truncate(cand.Description, 500),
		DurationMinutes: roundedMinutes(cand),
		Tags:            cand.Tags,
		User:            cand.Author,
		Views:           cand.ViewCount(),
	}
}

func narrativeItem(cand candidate.Candidate) narrativeRequestItem {
	reasoning := ""
	if cand.Content != nil {
		reasoning = cand.Content.Reasoning
	}
	tags := cand.Tags
	if len(tags) > 10 {
		tags = tags[:10]
	}
	return narrativeRequestItem{
		Title:            cand.Title,
		Description:      truncate(cand.Description, 800),
		DurationMinutes:  roundedMinutes(cand),
		ContentReasoning: reasoning,
		Tags:             tags,
		User:             cand.Author,
	}
}

func eraItem(cand candidate.Candidate) eraRequestItem {
	reasoning := ""
	if cand.Narrative != nil {
		reasoning = cand.Narrative.Reasoning
	}
	return eraRequestItem{
		Title:           cand.Title,
		Description:     truncate(cand.Description, 800),
		DurationMinutes: roundedMinutes(cand),
		CreatedDate:     truncate(cand.CreatedTime, 10),
		User:            cand.Author,
		FilmReasoning:   reasoning,
	}
}

// truncate caps s at max runes, never splitting a multibyte rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func roundedMinutes(cand candidate.Candidate) float64 {
	minutes := cand.DurationMinutes()
	return float64(int(minutes*10+0.5)) / 10
}
