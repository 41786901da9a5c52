// Command lgtd starts the task management suite.
//
// Invoked without arguments it brings the suite up in a fixed order:
// the sync daemon first, when sync is configured, then the core daemon,
// and finally the process replaces itself with the interface. Daemons
// that are already running for the invoking user are left untouched, so
// running lgtd twice is harmless.
//
// The status subcommand reports how the suite looks from the launcher's
// point of view without starting anything, and the config subcommands
// manage the optional launcher.toml that controls logging.
package main
