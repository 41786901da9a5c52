// Package logging assembles the structured slog loggers used by the
// launcher.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes typed attr helpers plus a no-op logger for tests
// and wiring code that cannot fail. Output defaults to stderr: stdout is
// reserved for the supervised processes, which inherit the launcher's
// file descriptors during startup and after the interface handoff.
//
// Prefer these constructors over hand-rolled slog setup so every line a
// user sees during startup has the same shape.
package logging
