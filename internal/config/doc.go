// Package config resolves the per-user lgtd paths and loads the
// launcher's own optional configuration file.
//
// The configuration directory is fixed (XDG config home under an lgtd
// subdirectory) and shared with the rest of the suite: the two sync
// marker files that gate the sync daemon live there, next to the
// launcher's launcher.toml. The launcher never reads the markers'
// content; only this package knows their names and where they live.
//
// launcher.toml tunes diagnostics only. Supervision behavior (which
// executables run, how they are detected, the start order, how failures
// are classified) is fixed and cannot be configured.
package config
