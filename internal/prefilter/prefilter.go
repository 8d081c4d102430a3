package prefilter

import (
	"strings"

	"reelfinder/internal/candidate"
)

// denylist holds terms strongly correlated with non-feature content. Order
// matters only for which keyword gets reported when several match.
var denylist = []string{
	"trailer", "teaser", "promo", "preview", "clip",
	"behind the scenes", "making of", "breakdown", "vfx",
	"test", "demo", "reel", "showreel", "recap",
	"review", "analysis", "essay", "critique",
	"supercut", "compilation", "montage", "tribute",
	"how to", "tutorial", "lesson", "workshop",
	"interview", "q&a", "panel", "discussion",
	"opener", "bumper", "ident", "logo", "intro",
	"campaign", "ad", "commercial", "spot",
}

// Dropped records one rejected candidate and the keyword that caused it.
type Dropped struct {
	Candidate candidate.Candidate
	Keyword   string
}

// Filter partitions candidates into survivors and denylist rejections. A
// lower-cased substring hit in the title, description, or space-joined tag
// text drops the candidate.
func Filter(candidates []candidate.Candidate) ([]candidate.Candidate, []Dropped) {
	kept := make([]candidate.Candidate, 0, len(candidates))
	var dropped []Dropped
	for _, cand := range candidates {
		if keyword, hit := match(cand); hit {
			dropped = append(dropped, Dropped{Candidate: cand, Keyword: keyword})
			continue
		}
		kept = append(kept, cand)
	}
	return kept, dropped
}

func match(cand candidate.Candidate) (string, bool) {
	title := strings.ToLower(cand.Title)
	description := strings.ToLower(cand.Description)
	tags := cand.JoinedTags()
	for _, keyword := range denylist {
		if strings.Contains(title, keyword) ||
			strings.Contains(description, keyword) ||
			strings.Contains(tags, keyword) {
			return keyword, true
		}
	}
	return "", false
}
