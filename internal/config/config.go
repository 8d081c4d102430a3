package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains output and log directory configuration.
type Paths struct {
	OutputDir string `toml:"output_dir"`
	LogDir    string `toml:"log_dir"`
}

// Search contains candidate collection settings.
type Search struct {
	Queries            []string `toml:"queries"`
	ResultsPerQuery    int      `toml:"results_per_query"`
	PageSize           int      `toml:"page_size"`
	MinDurationMinutes int      `toml:"min_duration_minutes"`
	MaxDurationMinutes int      `toml:"max_duration_minutes"`
}

// Vimeo contains configuration for the Vimeo API.
type Vimeo struct {
	AccessToken       string  `toml:"access_token"`
	BaseURL           string  `toml:"base_url"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// LLM contains connection and batching settings for the classification
// service.
type LLM struct {
	APIKey             string `toml:"api_key"`
	BaseURL            string `toml:"base_url"`
	Model              string `toml:"model"`
	Referer            string `toml:"referer"`
	Title              string `toml:"title"`
	TimeoutSeconds     int    `toml:"timeout_seconds"`
	ContentBatchSize   int    `toml:"content_batch_size"`
	NarrativeBatchSize int    `toml:"narrative_batch_size"`
	EraBatchSize       int    `toml:"era_batch_size"`
	BatchDelaySeconds  int    `toml:"batch_delay_seconds"`
}

// TMDB contains configuration for The Movie Database API.
type TMDB struct {
	APIKey             string `toml:"api_key"`
	BaseURL            string `toml:"base_url"`
	Language           string `toml:"language"`
	RequestDelayMillis int    `toml:"request_delay_ms"`
	MinConfidence      int    `toml:"min_confidence"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for reelfinder.
//
// Configuration sections by subsystem:
//   - Paths: export output and log directories
//   - Search: query set, per-query caps, duration bounds
//   - Vimeo: search API credentials; when the token is missing the collector
//     falls back to scraping public search pages
//   - LLM: classification service connection and per-sub-stage batch sizes
//   - TMDB: cross-reference verification credentials and thresholds
//   - Logging: log format and level
type Config struct {
	Paths   Paths   `toml:"paths"`
	Search  Search  `toml:"search"`
	Vimeo   Vimeo   `toml:"vimeo"`
	LLM     LLM     `toml:"llm"`
	TMDB    TMDB    `toml:"tmdb"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/reelfinder/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and credentials resolved from the
// environment when the file leaves them blank.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("reelfinder.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

// WriteSample writes the embedded sample configuration to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(expanded); err == nil {
		return fmt.Errorf("config already exists at %s", expanded)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("ensure config directory: %w", err)
	}
	if err := os.WriteFile(expanded, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if trimmed == "~" {
			return home, nil
		}
		return filepath.Join(home, trimmed[2:]), nil
	}
	return filepath.Abs(trimmed)
}
