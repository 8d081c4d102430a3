package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"reelfinder/internal/candidate"
	"reelfinder/internal/logging"
	"reelfinder/internal/services/llm"
)

// Completer is the language-model surface the classifier depends on.
type Completer interface {
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Config tunes batch sizes and the courtesy delay between batch calls.
type Config struct {
	ContentBatchSize   int
	NarrativeBatchSize int
	EraBatchSize       int
	BatchDelay         time.Duration
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithSleeper replaces the inter-batch sleep, for tests.
func WithSleeper(sleep func(context.Context, time.Duration) error) Option {
	return func(c *Classifier) {
		if sleep != nil {
			c.sleep = sleep
		}
	}
}

// Classifier narrows a candidate set through three dependent passes:
// content type, narrative-feature verification, then era and studio. Each
// pass annotates candidates in batches and keeps only those meeting its
// retention rule. A failed batch passes its candidates through unannotated
// as provisional survivors so a transient outage costs precision, not
// recall.
type Classifier struct {
	completer Completer
	cfg       Config
	logger    *slog.Logger
	sleep     func(context.Context, time.Duration) error
}

// New creates a Classifier. Batch sizes <= 0 fall back to 10/8/8.
func New(completer Completer, cfg Config, logger *slog.Logger, opts ...Option) (*Classifier, error) {
	if completer == nil {
		return nil, errors.New("completer is required")
	}
	if cfg.ContentBatchSize <= 0 {
		cfg.ContentBatchSize = 10
	}
	if cfg.NarrativeBatchSize <= 0 {
		cfg.NarrativeBatchSize = 8
	}
	if cfg.EraBatchSize <= 0 {
		cfg.EraBatchSize = 8
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	c := &Classifier{
		completer: completer,
		cfg:       cfg,
		logger:    logger,
		sleep:     sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Classify runs all three passes in order. If any pass retains nothing the
// remaining passes are skipped and the empty set is returned.
func (c *Classifier) Classify(ctx context.Context, candidates []candidate.Candidate) ([]candidate.Candidate, error) {
	stages := []struct {
		name string
		run  func(context.Context, []candidate.Candidate) ([]candidate.Candidate, error)
	}{
		{"content", c.ClassifyContent},
		{"narrative", c.VerifyNarrative},
		{"era", c.VerifyEra},
	}
	current := candidates
	for _, stage := range stages {
		if len(current) == 0 {
			c.logger.Info("classifier halted on empty set", logging.String("before_stage", stage.name))
			return nil, nil
		}
		survivors, err := stage.run(ctx, current)
		if err != nil {
			return nil, err
		}
		c.logger.Info("classifier stage complete",
			logging.String("stage", stage.name),
			logging.Int("in", len(current)),
			logging.Int("out", len(survivors)))
		current = survivors
	}
	return current, nil
}

// ClassifyContent annotates candidates with a content-type verdict and
// retains MOVIE verdicts with confidence above 0.7.
func (c *Classifier) ClassifyContent(ctx context.Context, candidates []candidate.Candidate) ([]candidate.Candidate, error) {
	annotated, err := annotateBatches(ctx, c, candidates, c.cfg.ContentBatchSize, contentSystemPrompt,
		func(cand candidate.Candidate) any { return contentItem(cand) },
		func(cand *candidate.Candidate, verdict candidate.ContentVerdict) { cand.Content = &verdict })
	if err != nil {
		return nil, err
	}
	return retain(annotated, func(cand candidate.Candidate) bool {
		if cand.Content == nil {
			return true
		}
		return cand.Content.Type == candidate.ContentMovie && cand.Content.Confidence > 0.7
	}), nil
}

// VerifyNarrative annotates candidates with a feature-film verdict and
// retains confirmed features with narrative confidence above 0.6.
func (c *Classifier) VerifyNarrative(ctx context.Context, candidates []candidate.Candidate) ([]candidate.Candidate, error) {
	annotated, err := annotateBatches(ctx, c, candidates, c.cfg.NarrativeBatchSize, narrativeSystemPrompt,
		func(cand candidate.Candidate) any { return narrativeItem(cand) },
		func(cand *candidate.Candidate, verdict candidate.NarrativeVerdict) { cand.Narrative = &verdict })
	if err != nil {
		return nil, err
	}
	return retain(annotated, func(cand candidate.Candidate) bool {
		if cand.Narrative == nil {
			return true
		}
		return cand.Narrative.IsFeatureFilm && cand.Narrative.Confidence > 0.6
	}), nil
}

// VerifyEra annotates candidates with an era/studio verdict and retains
// pre-1965 verdicts with quality score of at least 6.
func (c *Classifier) VerifyEra(ctx context.Context, candidates []candidate.Candidate) ([]candidate.Candidate, error) {
	annotated, err := annotateBatches(ctx, c, candidates, c.cfg.EraBatchSize, eraSystemPrompt,
		func(cand candidate.Candidate) any { return eraItem(cand) },
		func(cand *candidate.Candidate, verdict candidate.EraVerdict) { cand.Era = &verdict })
	if err != nil {
		return nil, err
	}
	return retain(annotated, func(cand candidate.Candidate) bool {
		if cand.Era == nil {
			return true
		}
		return cand.Era.IsPre1965 && cand.Era.QualityScore >= 6
	}), nil
}

// annotateBatches walks candidates in fixed-size batches, asks the model for
// one verdict per item, and attaches verdicts in order. On any per-batch
// error the batch is appended unmodified.
func annotateBatches[V any](
	ctx context.Context,
	c *Classifier,
	candidates []candidate.Candidate,
	batchSize int,
	systemPrompt string,
	item func(candidate.Candidate) any,
	attach func(*candidate.Candidate, V),
) ([]candidate.Candidate, error) {
	out := make([]candidate.Candidate, 0, len(candidates))
	for start := 0; start < len(candidates); start += batchSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := min(start+batchSize, len(candidates))
		batch := candidates[start:end]

		verdicts, err := classifyBatch[V](ctx, c.completer, batch, systemPrompt, item)
		if err != nil {
			c.logger.Warn("batch classification failed, passing candidates through",
				logging.Int("batch_start", start),
				logging.Int("batch_size", len(batch)),
				logging.Error(err))
			out = append(out, batch...)
		} else {
			for i := range batch {
				annotated := batch[i]
				attach(&annotated, verdicts[i])
				out = append(out, annotated)
			}
		}

		if c.cfg.BatchDelay > 0 && end < len(candidates) {
			if err := c.sleep(ctx, c.cfg.BatchDelay); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// classifyBatch sends one batch and decodes exactly one verdict per input.
// A length mismatch is treated the same as a transport failure.
func classifyBatch[V any](
	ctx context.Context,
	completer Completer,
	batch []candidate.Candidate,
	systemPrompt string,
	item func(candidate.Candidate) any,
) ([]V, error) {
	items := make([]any, 0, len(batch))
	for _, cand := range batch {
		items = append(items, item(cand))
	}
	payload, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode batch: %w", err)
	}

	content, err := completer.CompleteJSON(ctx, systemPrompt, "Videos:\n"+string(payload))
	if err != nil {
		return nil, err
	}

	var verdicts []V
	if err := llm.DecodeJSON(content, &verdicts); err != nil {
		return nil, err
	}
	if len(verdicts) != len(batch) {
		return nil, fmt.Errorf("verdict count %d does not match batch size %d", len(verdicts), len(batch))
	}
	return verdicts, nil
}

func retain(candidates []candidate.Candidate, keep func(candidate.Candidate) bool) []candidate.Candidate {
	survivors := make([]candidate.Candidate, 0, len(candidates))
	for _, cand := range candidates {
		if keep(cand) {
			survivors = append(survivors, cand)
		}
	}
	return survivors
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
