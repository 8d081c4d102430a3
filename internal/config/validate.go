package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable. Credential errors are
// reported here, before any pipeline stage executes.
func (c *Config) Validate() error {
	if err := c.validateSearch(); err != nil {
		return err
	}
	if err := c.validateLLM(); err != nil {
		return err
	}
	if err := c.validateTMDB(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSearch() error {
	if c.Search.MinDurationMinutes >= c.Search.MaxDurationMinutes {
		return fmt.Errorf("search.min_duration_minutes (%d) must be below search.max_duration_minutes (%d)",
			c.Search.MinDurationMinutes, c.Search.MaxDurationMinutes)
	}
	if c.Search.PageSize > 100 {
		return errors.New("search.page_size must be at most 100")
	}
	return nil
}

func (c *Config) validateLLM() error {
	if c.LLM.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/reelfinder/config.toml"
		}
		return fmt.Errorf("llm.api_key is required. Set OPENROUTER_API_KEY env var or edit %s (create with 'reelfinder config init')", defaultPath)
	}
	return nil
}

func (c *Config) validateTMDB() error {
	if c.TMDB.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/reelfinder/config.toml"
		}
		return fmt.Errorf("tmdb.api_key is required. Set TMDB_API_KEY env var or edit %s (create with 'reelfinder config init')", defaultPath)
	}
	if c.TMDB.MinConfidence < 0 || c.TMDB.MinConfidence > 100 {
		return errors.New("tmdb.min_confidence must be between 0 and 100")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
}
