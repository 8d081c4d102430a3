package main

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"reelfinder/internal/candidate"
	"reelfinder/internal/classifier"
	"reelfinder/internal/collector"
	"reelfinder/internal/config"
	"reelfinder/internal/crossref"
	"reelfinder/internal/logging"
	"reelfinder/internal/pipeline"
	"reelfinder/internal/prefilter"
	"reelfinder/internal/services/llm"
	"reelfinder/internal/services/tmdb"
	"reelfinder/internal/services/vimeo"
)

const vimeoSiteURL = "https://vimeo.com"

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	c.loggerOnce.Do(func() {
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

// searcher picks the API client when a token is configured, the scrape
// fallback otherwise.
func (c *commandContext) searcher(cfg *config.Config) (vimeo.Searcher, error) {
	if strings.TrimSpace(cfg.Vimeo.AccessToken) != "" {
		return vimeo.NewClient(cfg.Vimeo.AccessToken, cfg.Vimeo.BaseURL, cfg.Vimeo.RequestsPerSecond)
	}
	return vimeo.NewScraper(vimeoSiteURL, cfg.Vimeo.RequestsPerSecond)
}

func (c *commandContext) buildCollector(cfg *config.Config, logger *slog.Logger) (*collector.Collector, error) {
	searcher, err := c.searcher(cfg)
	if err != nil {
		return nil, err
	}
	return collector.New(searcher, collector.Options{
		ResultsPerQuery:    cfg.Search.ResultsPerQuery,
		PageSize:           cfg.Search.PageSize,
		MinDurationMinutes: cfg.Search.MinDurationMinutes,
		MaxDurationMinutes: cfg.Search.MaxDurationMinutes,
	}, logger)
}

func (c *commandContext) buildVerifier(cfg *config.Config, logger *slog.Logger) (*crossref.Verifier, error) {
	api, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language)
	if err != nil {
		return nil, err
	}
	delay := time.Duration(cfg.TMDB.RequestDelayMillis) * time.Millisecond
	return crossref.New(api, delay, logger)
}

func (c *commandContext) buildPipeline() (*pipeline.Pipeline, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}

	coll, err := c.buildCollector(cfg, logger)
	if err != nil {
		return nil, err
	}

	completer := llm.NewClient(llm.Config{
		APIKey:         cfg.LLM.APIKey,
		BaseURL:        cfg.LLM.BaseURL,
		Model:          cfg.LLM.Model,
		Referer:        cfg.LLM.Referer,
		Title:          cfg.LLM.Title,
		TimeoutSeconds: cfg.LLM.TimeoutSeconds,
	})
	clf, err := classifier.New(completer, classifier.Config{
		ContentBatchSize:   cfg.LLM.ContentBatchSize,
		NarrativeBatchSize: cfg.LLM.NarrativeBatchSize,
		EraBatchSize:       cfg.LLM.EraBatchSize,
		BatchDelay:         time.Duration(cfg.LLM.BatchDelaySeconds) * time.Second,
	}, logger)
	if err != nil {
		return nil, err
	}

	verifier, err := c.buildVerifier(cfg, logger)
	if err != nil {
		return nil, err
	}

	prefilterStage := func(candidates []candidate.Candidate) ([]candidate.Candidate, int) {
		kept, dropped := prefilter.Filter(candidates)
		return kept, len(dropped)
	}

	return pipeline.New(cfg, coll, prefilterStage, clf, verifier, logger)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
