package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"reelfinder/internal/candidate"
	"reelfinder/internal/collector"
	"reelfinder/internal/config"
	"reelfinder/internal/export"
	"reelfinder/internal/logging"
	"reelfinder/internal/ranking"
)

// ErrRunInProgress is returned when another process holds the run lock for
// the same output directory.
var ErrRunInProgress = errors.New("another run is already in progress for this output directory")

// Classifier narrows candidates through the staged language-model passes.
type Classifier interface {
	Classify(ctx context.Context, candidates []candidate.Candidate) ([]candidate.Candidate, error)
}

// Verifier attaches cross-reference verification records.
type Verifier interface {
	VerifyAll(ctx context.Context, candidates []candidate.Candidate) ([]candidate.Candidate, error)
}

// Prefilter partitions candidates into survivors and keyword rejections.
type Prefilter func(candidates []candidate.Candidate) (kept []candidate.Candidate, droppedCount int)

// Result summarizes one pipeline run.
type Result struct {
	RunID       string
	Collected   int
	Prefiltered int
	Classified  int
	Verified    int
	Final       int
	Ranked      []candidate.Candidate
	Export      export.Paths
}

// Pipeline sequences collection, lexical prefiltering, staged
// classification, cross-reference verification, confidence gating, ranking,
// and export. Stages run strictly one after another; an empty surviving set
// at any boundary ends the run early with an empty result.
type Pipeline struct {
	cfg        *config.Config
	collector  *collector.Collector
	prefilter  Prefilter
	classifier Classifier
	verifier   Verifier
	logger     *slog.Logger
	now        func() time.Time
}

// New assembles a Pipeline from already-constructed stages.
func New(
	cfg *config.Config,
	coll *collector.Collector,
	prefilter Prefilter,
	clf Classifier,
	verifier Verifier,
	logger *slog.Logger,
) (*Pipeline, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if coll == nil || prefilter == nil || clf == nil || verifier == nil {
		return nil, errors.New("all pipeline stages are required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Pipeline{
		cfg:        cfg,
		collector:  coll,
		prefilter:  prefilter,
		classifier: clf,
		verifier:   verifier,
		logger:     logger,
		now:        time.Now,
	}, nil
}

// Run executes the full pipeline once. Only one run may operate on an
// output directory at a time; concurrent runs fail fast with
// ErrRunInProgress.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	if err := os.MkdirAll(p.cfg.Paths.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	lock := flock.New(filepath.Join(p.cfg.Paths.OutputDir, "reelfinder.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return nil, ErrRunInProgress
	}
	defer lock.Unlock()

	result := &Result{RunID: uuid.NewString()}
	logger := p.logger.With(logging.String("run_id", result.RunID))
	started := p.now()
	logger.Info("pipeline started", logging.Int("queries", len(p.cfg.Search.Queries)))

	collected, err := p.collector.Collect(ctx, p.cfg.Search.Queries)
	if err != nil {
		return nil, fmt.Errorf("collect candidates: %w", err)
	}
	result.Collected = len(collected)
	logger.Info("stage complete", logging.String("stage", "collect"), logging.Int("out", result.Collected))
	if len(collected) == 0 {
		return p.finish(logger, result, started)
	}

	kept, droppedCount := p.prefilter(collected)
	result.Prefiltered = len(kept)
	logger.Info("stage complete",
		logging.String("stage", "prefilter"),
		logging.Int("out", result.Prefiltered),
		logging.Int("dropped", droppedCount))
	if len(kept) == 0 {
		return p.finish(logger, result, started)
	}

	classified, err := p.classifier.Classify(ctx, kept)
	if err != nil {
		return nil, fmt.Errorf("classify candidates: %w", err)
	}
	result.Classified = len(classified)
	logger.Info("stage complete", logging.String("stage", "classify"), logging.Int("out", result.Classified))
	if len(classified) == 0 {
		return p.finish(logger, result, started)
	}

	verified, err := p.verifier.VerifyAll(ctx, classified)
	if err != nil {
		return nil, fmt.Errorf("cross-reference candidates: %w", err)
	}
	result.Verified = len(verified)

	gated := p.gate(verified)
	result.Final = len(gated)
	logger.Info("stage complete",
		logging.String("stage", "verify"),
		logging.Int("out", result.Verified),
		logging.Int("passed_gate", result.Final))
	if len(gated) == 0 {
		return p.finish(logger, result, started)
	}

	result.Ranked = ranking.Rank(gated)

	paths, err := export.Write(p.cfg.Paths.OutputDir, result.Ranked, p.now())
	if err != nil {
		return nil, fmt.Errorf("export results: %w", err)
	}
	result.Export = paths
	logger.Info("results exported",
		logging.String("csv", paths.CSV),
		logging.String("json", paths.JSON))

	return p.finish(logger, result, started)
}

// gate keeps only candidates whose verification record meets the configured
// minimum confidence. Verified status is not required here; confidence alone
// decides, so strong unverified matches can still surface in the output.
func (p *Pipeline) gate(candidates []candidate.Candidate) []candidate.Candidate {
	minimum := float64(p.cfg.TMDB.MinConfidence)
	kept := make([]candidate.Candidate, 0, len(candidates))
	for _, cand := range candidates {
		if cand.Verification != nil && cand.Verification.Confidence >= minimum {
			kept = append(kept, cand)
		}
	}
	return kept
}

func (p *Pipeline) finish(logger *slog.Logger, result *Result, started time.Time) (*Result, error) {
	logger.Info("pipeline finished",
		logging.Int("final", result.Final),
		logging.Duration("elapsed", p.now().Sub(started)))
	return result, nil
}
