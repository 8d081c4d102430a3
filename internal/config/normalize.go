package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSearch()
	c.normalizeVimeo()
	c.normalizeLLM()
	c.normalizeTMDB()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSearch() {
	if len(c.Search.Queries) == 0 {
		c.Search.Queries = make([]string, len(defaultQueries))
		copy(c.Search.Queries, defaultQueries)
	}
	if c.Search.ResultsPerQuery <= 0 {
		c.Search.ResultsPerQuery = defaultResultsPerQuery
	}
	if c.Search.PageSize <= 0 {
		c.Search.PageSize = defaultPageSize
	}
	if c.Search.MinDurationMinutes <= 0 {
		c.Search.MinDurationMinutes = defaultMinDurationMinutes
	}
	if c.Search.MaxDurationMinutes <= 0 {
		c.Search.MaxDurationMinutes = defaultMaxDurationMinutes
	}
}

func (c *Config) normalizeVimeo() {
	c.Vimeo.AccessToken = strings.TrimSpace(c.Vimeo.AccessToken)
	if c.Vimeo.AccessToken == "" {
		c.Vimeo.AccessToken = strings.TrimSpace(os.Getenv("VIMEO_API_TOKEN"))
	}
	if strings.TrimSpace(c.Vimeo.BaseURL) == "" {
		c.Vimeo.BaseURL = defaultVimeoBaseURL
	}
	if c.Vimeo.RequestsPerSecond <= 0 {
		c.Vimeo.RequestsPerSecond = defaultVimeoRate
	}
}

func (c *Config) normalizeLLM() {
	c.LLM.APIKey = strings.TrimSpace(c.LLM.APIKey)
	if c.LLM.APIKey == "" {
		c.LLM.APIKey = strings.TrimSpace(os.Getenv("OPENROUTER_API_KEY"))
	}
	if strings.TrimSpace(c.LLM.BaseURL) == "" {
		c.LLM.BaseURL = defaultLLMBaseURL
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		c.LLM.Model = defaultLLMModel
	}
	if c.LLM.TimeoutSeconds <= 0 {
		c.LLM.TimeoutSeconds = defaultLLMTimeoutSeconds
	}
	if c.LLM.ContentBatchSize <= 0 {
		c.LLM.ContentBatchSize = defaultContentBatchSize
	}
	if c.LLM.NarrativeBatchSize <= 0 {
		c.LLM.NarrativeBatchSize = defaultNarrativeBatchSize
	}
	if c.LLM.EraBatchSize <= 0 {
		c.LLM.EraBatchSize = defaultEraBatchSize
	}
	if c.LLM.BatchDelaySeconds < 0 {
		c.LLM.BatchDelaySeconds = defaultBatchDelaySeconds
	}
}

func (c *Config) normalizeTMDB() {
	c.TMDB.APIKey = strings.TrimSpace(c.TMDB.APIKey)
	if c.TMDB.APIKey == "" {
		c.TMDB.APIKey = strings.TrimSpace(os.Getenv("TMDB_API_KEY"))
	}
	if strings.TrimSpace(c.TMDB.BaseURL) == "" {
		c.TMDB.BaseURL = defaultTMDBBaseURL
	}
	if strings.TrimSpace(c.TMDB.Language) == "" {
		c.TMDB.Language = defaultTMDBLanguage
	}
	if c.TMDB.RequestDelayMillis < 0 {
		c.TMDB.RequestDelayMillis = defaultTMDBDelayMillis
	}
	// Zero is a valid setting that disables the post-verification gate, so
	// only negative values fall back to the default.
	if c.TMDB.MinConfidence < 0 {
		c.TMDB.MinConfidence = defaultTMDBMinConfidence
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
