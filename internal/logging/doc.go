// Package logging assembles the structured slog loggers used across the
// reelscore pipeline.
//
// It owns console/JSON handler selection, level parsing, and output plumbing,
// and exposes context helpers so stage code can automatically tag log lines
// with run identifiers and stage names. The package also provides a no-op
// logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape and routing.
package logging
