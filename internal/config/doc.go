// Package config loads, normalizes, and validates reelfinder configuration.
//
// It supplies repository defaults, expands tilde paths, reads TOML files, and
// honours environment fallbacks such as TMDB_API_KEY and OPENROUTER_API_KEY.
// Validation runs before any pipeline stage so a missing credential fails the
// run up front rather than mid-pipeline.
package config
