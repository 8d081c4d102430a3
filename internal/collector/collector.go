package collector

import (
	"context"
	"errors"
	"log/slog"

	"reelfinder/internal/candidate"
	"reelfinder/internal/logging"
	"reelfinder/internal/services/vimeo"
)

// Options bound the collection pass.
type Options struct {
	// ResultsPerQuery caps how many videos one query may contribute,
	// before duration filtering.
	ResultsPerQuery int
	// PageSize is the per-request page size passed to the searcher.
	PageSize int
	// MinDurationMinutes and MaxDurationMinutes bound the feature-length
	// window, inclusive on both ends.
	MinDurationMinutes int
	MaxDurationMinutes int
}

// Collector gathers candidates across a query set, deduplicating by URL and
// keeping only feature-length videos.
type Collector struct {
	searcher vimeo.Searcher
	opts     Options
	logger   *slog.Logger
}

// New creates a Collector. A nil logger discards log output.
func New(searcher vimeo.Searcher, opts Options, logger *slog.Logger) (*Collector, error) {
	if searcher == nil {
		return nil, errors.New("searcher is required")
	}
	if opts.ResultsPerQuery <= 0 {
		opts.ResultsPerQuery = 50
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 25
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Collector{searcher: searcher, opts: opts, logger: logger}, nil
}

// Collect runs every query, paginating each until its cap, an empty page, or
// the final page. A failed page ends only that query; videos already
// gathered for it are kept and remaining queries still run. Videos whose
// duration is unknown or outside the feature-length window are dropped, and
// the first query to surface a URL owns it.
func (c *Collector) Collect(ctx context.Context, queries []string) ([]candidate.Candidate, error) {
	if len(queries) == 0 {
		return nil, errors.New("at least one query is required")
	}

	seen := make(map[string]bool)
	var collected []candidate.Candidate

	for _, query := range queries {
		if err := ctx.Err(); err != nil {
			return collected, err
		}
		gathered := 0
		kept := 0
		for page := 1; gathered < c.opts.ResultsPerQuery; page++ {
			result, err := c.searcher.Search(ctx, query, c.opts.PageSize, page)
			if err != nil {
				c.logger.Warn("search page failed, keeping partial results",
					logging.String("query", query),
					logging.Int("page", page),
					logging.Error(err))
				break
			}
			if len(result.Videos) == 0 {
				break
			}
			for _, video := range result.Videos {
				if gathered >= c.opts.ResultsPerQuery {
					break
				}
				gathered++
				if video.URL == "" || seen[video.URL] {
					continue
				}
				if !c.featureLength(video.Duration) {
					continue
				}
				seen[video.URL] = true
				collected = append(collected, toCandidate(video))
				kept++
			}
			if !result.HasNext {
				break
			}
		}
		c.logger.Info("query collected",
			logging.String("query", query),
			logging.Int("fetched", gathered),
			logging.Int("kept", kept))
	}

	c.logger.Info("collection complete",
		logging.Int("queries", len(queries)),
		logging.Int("candidates", len(collected)))
	return collected, nil
}

// featureLength reports whether the duration in seconds falls inside the
// configured window. Unknown durations fail the check.
func (c *Collector) featureLength(durationSeconds int) bool {
	if durationSeconds <= 0 {
		return false
	}
	minutes := float64(durationSeconds) / 60.0
	return minutes >= float64(c.opts.MinDurationMinutes) &&
		minutes <= float64(c.opts.MaxDurationMinutes)
}

func toCandidate(video vimeo.Video) candidate.Candidate {
	return candidate.Candidate{
		Title:       video.Title,
		URL:         video.URL,
		Description: video.Description,
		Duration:    video.Duration,
		CreatedTime: video.CreatedTime,
		Views:       video.Plays,
		Likes:       video.Likes,
		Comments:    video.Comments,
		Author:      video.AuthorName,
		AuthorURL:   video.AuthorURL,
		Tags:        video.Tags,
		Categories:  video.Categories,
	}
}
