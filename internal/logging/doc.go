// Package logging builds the structured slog loggers used by subalch.
//
// It owns the console and JSON handlers, level parsing and output routing,
// the standard field keys every component logs with, and context helpers
// that tag log lines with the per-run correlation ID. A no-op logger is
// provided for tests and for wiring code that must not fail.
package logging
