// Package logging assembles the structured slog loggers used across
// reelfinder.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes attr helper aliases plus a no-op logger for tests.
// Prefer these constructors over hand-rolled slog setup so every component
// emits the same line shape.
package logging
