// Package launcher implements the start sequence for the lgtd suite:
// ensure the optional sync daemon is running when its configuration
// markers are present, ensure the mandatory core daemon is running, and
// hand the process over to the interface executable.
//
// The sequence is a single pass in fixed order, sync before core and
// core before the handoff, with no retries, timeouts, or internal
// concurrency. Presence checks are point-in-time process-table
// snapshots; a daemon found running is never started twice. Sync
// problems (markers absent, start failure) never block the core daemon
// or the interface. A core daemon start failure is fatal and the
// interface is never reached.
//
// All operating-system access goes through the System interface so the
// sequencing can be exercised against fakes. Run returns a Handoff
// value describing the process-image replacement instead of performing
// it; performing the exec is the caller's final, non-returning act.
//
// Known gap: two launchers racing each other can both observe a daemon
// as absent and both attempt a start. The check-then-act window is not
// synchronized; the daemons guard themselves against double instances.
package launcher
