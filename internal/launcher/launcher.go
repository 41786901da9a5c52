package launcher

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pb-/lgtd-suite/internal/logging"
)

// Executable names of the suite components. Process-table identity is
// the exact base name; siblings are invoked by relative path from the
// launcher's install directory.
const (
	CoreDaemonExecutable = "lgtd_d"
	SyncDaemonExecutable = "lgtd_sync"
	UIExecutable         = "lgtd_ui"
)

// daemonFlag asks a daemon executable to detach once its foreground
// phase (passphrase prompt, listen setup) completes.
const daemonFlag = "--daemon"

// System is the launcher's view of the operating system. The real
// implementation lives in internal/probe; tests substitute fakes to
// drive every branch of the start sequence deterministically.
type System interface {
	// InstallDir resolves the canonical directory containing the
	// running executable, with symlinks resolved.
	InstallDir() (string, error)
	// Chdir makes dir the working directory for subsequent relative
	// invocations.
	Chdir(dir string) error
	// FileExists reports whether path exists.
	FileExists(path string) bool
	// ExecutableFile reports whether path is an executable regular file.
	ExecutableFile(path string) bool
	// ProcessRunning reports whether a process with exactly this name
	// is running for the current user. Query failures read as false.
	ProcessRunning(name string) bool
	// StartDaemon runs path with args and waits for its foreground
	// phase to finish; a non-zero exit is returned as an error.
	StartDaemon(ctx context.Context, path string, args ...string) error
	// Exec replaces the current process image. It returns only on
	// failure.
	Exec(handoff Handoff) error
}

// Handoff describes the terminal control transfer to the interface
// process. Run returns it instead of performing the exec, so no
// supervision code can follow a successful handoff; the caller passes
// it to System.Exec as its last act.
type Handoff struct {
	Path string
	Args []string
}

// StepState classifies the outcome of one ensure-running step.
type StepState string

const (
	StepSkipped        StepState = "skipped"
	StepAlreadyRunning StepState = "already_running"
	StepStarted        StepState = "started"
	StepFailed         StepState = "failed"
)

// StepResult is the outcome of a single daemon step.
type StepResult struct {
	State StepState
	Err   error
}

// Launcher drives the fixed start sequence: sync daemon (optional),
// core daemon (mandatory), then interface handoff.
type Launcher struct {
	System System
	Logger *slog.Logger

	// SyncConfigPath and SyncCertPath are the sync marker files. Both
	// must exist for the sync step to run; empty paths mean sync is
	// not configured at all.
	SyncConfigPath string
	SyncCertPath   string
}

// Result captures a full launch run.
type Result struct {
	Sync    StepResult
	Core    StepResult
	Handoff Handoff
}

// Run executes the start sequence and returns the interface handoff.
// The sequence is strictly ordered and visits each step at most once;
// there are no retries and no timeouts. A sync failure is recoverable
// and only logged. A core failure aborts the run with an error and the
// handoff never happens, since the interface is useless without a live
// core daemon.
func (l *Launcher) Run(ctx context.Context) (Result, error) {
	var res Result
	logger := logging.NewComponentLogger(l.Logger, "launcher")

	dir, err := l.System.InstallDir()
	if err != nil {
		return res, fmt.Errorf("locate install directory: %w", err)
	}
	if err := l.System.Chdir(dir); err != nil {
		return res, fmt.Errorf("enter install directory %s: %w", dir, err)
	}

	res.Sync = l.syncStep(ctx, logger)
	if res.Sync.Err != nil {
		logger.Warn("sync daemon could not be started; continuing without sync",
			logging.Error(res.Sync.Err))
	}

	res.Core = l.ensureRunning(ctx, CoreDaemonExecutable)
	if res.Core.State == StepFailed {
		return res, fmt.Errorf("core daemon not started: %w", res.Core.Err)
	}
	logStepState(logger, "core daemon", CoreDaemonExecutable, res.Core.State)

	res.Handoff = Handoff{
		Path: "./" + UIExecutable,
		Args: []string{"./" + UIExecutable},
	}
	return res, nil
}

func (l *Launcher) syncStep(ctx context.Context, logger *slog.Logger) StepResult {
	if !l.syncConfigured() {
		logger.Debug("sync not configured; skipping sync daemon")
		return StepResult{State: StepSkipped}
	}
	res := l.ensureRunning(ctx, SyncDaemonExecutable)
	logStepState(logger, "sync daemon", SyncDaemonExecutable, res.State)
	return res
}

// syncConfigured checks both marker files; the certificate is only
// consulted when the configuration file is present.
func (l *Launcher) syncConfigured() bool {
	if l.SyncConfigPath == "" || l.SyncCertPath == "" {
		return false
	}
	return l.System.FileExists(l.SyncConfigPath) && l.System.FileExists(l.SyncCertPath)
}

func (l *Launcher) ensureRunning(ctx context.Context, name string) StepResult {
	if l.System.ProcessRunning(name) {
		return StepResult{State: StepAlreadyRunning}
	}
	if err := l.System.StartDaemon(ctx, "./"+name, daemonFlag); err != nil {
		return StepResult{State: StepFailed, Err: fmt.Errorf("start %s: %w", name, err)}
	}
	return StepResult{State: StepStarted}
}

func logStepState(logger *slog.Logger, role, name string, state StepState) {
	switch state {
	case StepAlreadyRunning:
		logger.Debug(role+" already running", logging.String("name", name))
	case StepStarted:
		logger.Debug(role+" started", logging.String("name", name))
	}
}
