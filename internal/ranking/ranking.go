package ranking

import (
	"math"
	"sort"

	"reelfinder/internal/candidate"
)

// Score fuses the per-candidate signals into one value on a 0-100 scale:
// 40 points from the classifier quality score, 30 from cross-reference
// confidence, banded bonuses for duration and popularity, and 10 for a
// verified cross-reference. Scores are rounded to one decimal.
func Score(cand candidate.Candidate) float64 {
	quality := 0
	if cand.Era != nil {
		quality = cand.Era.QualityScore
	}
	confidence := 0.0
	verified := false
	if cand.Verification != nil {
		confidence = cand.Verification.Confidence
		verified = cand.Verification.Verified
	}

	score := 40*(float64(quality)/10) +
		30*(confidence/100) +
		durationBonus(cand.DurationMinutes()) +
		popularityBonus(cand.ViewCount())
	if verified {
		score += 10
	}
	return math.Round(score*10) / 10
}

// Rank computes every candidate's final score and orders them descending.
// Equal scores keep their input order.
func Rank(candidates []candidate.Candidate) []candidate.Candidate {
	ranked := make([]candidate.Candidate, len(candidates))
	copy(ranked, candidates)
	for i := range ranked {
		score := Score(ranked[i])
		ranked[i].FinalScore = &score
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].FinalScore > *ranked[j].FinalScore
	})
	return ranked
}

// durationBonus rewards runtimes in the classic feature sweet spot. The
// bands are contractual constants, not tunables.
func durationBonus(minutes float64) float64 {
	switch {
	case minutes >= 70 && minutes <= 120:
		return 10
	case minutes >= 60 && minutes <= 150:
		return 7
	case minutes >= 45 && minutes <= 180:
		return 4
	default:
		return 0
	}
}

// popularityBonus maps view count to a stepped bonus. Unknown counts score
// zero.
func popularityBonus(views int64) float64 {
	switch {
	case views >= 100000:
		return 10
	case views >= 50000:
		return 7
	case views >= 10000:
		return 5
	case views >= 1000:
		return 3
	default:
		return 0
	}
}
