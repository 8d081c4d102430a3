package crossref

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"reelfinder/internal/candidate"
	"reelfinder/internal/logging"
	"reelfinder/internal/services/tmdb"
	"reelfinder/internal/textutil"
)

const (
	// minSimilarity gates match acceptance; strongSimilarity lets a title
	// match substitute for studio provenance.
	minSimilarity    = 0.6
	strongSimilarity = 0.85

	cutoffYear = 1965

	runtimeToleranceMinutes = 10.0
)

// Verifier cross-references candidates against the movie database and
// attaches a verification record to each. Candidates are never dropped
// here; an unverifiable candidate carries an unverified record forward.
type Verifier struct {
	api    tmdb.API
	delay  time.Duration
	logger *slog.Logger
	sleep  func(context.Context, time.Duration) error
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithSleeper replaces the inter-candidate sleep, for tests.
func WithSleeper(sleep func(context.Context, time.Duration) error) Option {
	return func(v *Verifier) {
		if sleep != nil {
			v.sleep = sleep
		}
	}
}

// New creates a Verifier. delay paces the per-candidate database calls.
func New(api tmdb.API, delay time.Duration, logger *slog.Logger, opts ...Option) (*Verifier, error) {
	if api == nil {
		return nil, errors.New("tmdb api is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	v := &Verifier{
		api:    api,
		delay:  delay,
		logger: logger,
		sleep:  sleepContext,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// VerifyAll attaches a verification record to every candidate, in order. A
// failure for one candidate leaves it unverified and does not abort the
// rest.
func (v *Verifier) VerifyAll(ctx context.Context, candidates []candidate.Candidate) ([]candidate.Candidate, error) {
	out := make([]candidate.Candidate, 0, len(candidates))
	verified := 0
	for i, cand := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record := v.Verify(ctx, cand)
		cand.Verification = record
		out = append(out, cand)
		if record.Verified {
			verified++
		}

		if v.delay > 0 && i < len(candidates)-1 {
			if err := v.sleep(ctx, v.delay); err != nil {
				return nil, err
			}
		}
	}
	v.logger.Info("cross-reference complete",
		logging.Int("candidates", len(candidates)),
		logging.Int("verified", verified))
	return out, nil
}

// Verify builds the verification record for one candidate.
func (v *Verifier) Verify(ctx context.Context, cand candidate.Candidate) *candidate.VerificationRecord {
	record := &candidate.VerificationRecord{
		MatchReason: "No TMDb match found",
	}

	var opts tmdb.SearchOptions
	if cand.Era != nil && cand.Era.ProductionYear != nil {
		opts.Year = *cand.Era.ProductionYear
	}
	search, err := v.api.SearchMovie(ctx, cand.Title, opts)
	if err != nil {
		v.logger.Warn("tmdb search failed",
			logging.String("title", cand.Title),
			logging.Error(err))
		return record
	}
	if len(search.Results) == 0 {
		return record
	}

	var best *tmdb.Result
	bestSimilarity := 0.0
	for i := range search.Results {
		similarity := textutil.TitleSimilarity(cand.Title, search.Results[i].Title)
		if similarity > bestSimilarity {
			bestSimilarity = similarity
			best = &search.Results[i]
		}
	}
	if best == nil || bestSimilarity < minSimilarity {
		record.MatchReason = fmt.Sprintf("Best title match only %.0f%% similar", bestSimilarity*100)
		return record
	}

	details, err := v.api.GetMovieDetails(ctx, best.ID)
	if err != nil {
		v.logger.Warn("tmdb details fetch failed",
			logging.String("title", cand.Title),
			logging.Int64("tmdb_id", best.ID),
			logging.Error(err))
		record.MatchReason = "Could not fetch movie details from TMDb"
		return record
	}

	id := best.ID
	record.TMDBID = &id
	record.TMDBTitle = details.Title
	record.TitleSimilarity = bestSimilarity

	if year, ok := details.ReleaseYear(); ok {
		record.ReleaseYear = &year
		record.IsPre1965 = year < cutoffYear
	}

	companyNames := make([]string, 0, len(details.ProductionCompanies))
	for _, company := range details.ProductionCompanies {
		companyNames = append(companyNames, company.Name)
	}
	isClassic, matching := classicStudios(companyNames)
	record.IsClassicStudio = isClassic
	if len(matching) > 0 {
		record.Studios = matching
	} else if len(companyNames) > 3 {
		record.Studios = companyNames[:3]
	} else {
		record.Studios = companyNames
	}

	if details.Runtime > 0 {
		runtime := details.Runtime
		record.RuntimeMinutes = &runtime
		record.RuntimeMatch = math.Abs(float64(runtime)-cand.DurationMinutes()) <= runtimeToleranceMinutes
	}

	confidence := bestSimilarity * 40
	if record.IsPre1965 {
		confidence += 30
	}
	if record.IsClassicStudio {
		confidence += 20
	}
	if record.RuntimeMatch {
		confidence += 10
	}
	record.Confidence = math.Min(confidence, 100)

	switch {
	case record.IsPre1965 && (record.IsClassicStudio || bestSimilarity >= strongSimilarity):
		record.Verified = true
		record.MatchReason = "Verified classic movie: pre-1965"
		if record.IsClassicStudio {
			record.MatchReason += " from " + joinFirst(record.Studios, 2)
		}
	case record.IsPre1965:
		record.MatchReason = "Pre-1965 but uncertain studio/title match"
	case record.ReleaseYear != nil:
		record.MatchReason = fmt.Sprintf("Released in %d (after 1965 cutoff)", *record.ReleaseYear)
	default:
		record.MatchReason = "Release year unknown"
	}
	return record
}

func joinFirst(values []string, n int) string {
	if len(values) > n {
		values = values[:n]
	}
	return strings.Join(values, ", ")
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
