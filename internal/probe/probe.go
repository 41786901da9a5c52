// Package probe is the real launcher.System: process-table queries,
// filesystem checks, daemon starts, and the final process-image
// replacement.
package probe

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/shirou/gopsutil/v3/process"
	"golang.org/x/sys/unix"

	"github.com/pb-/lgtd-suite/internal/launcher"
)

// Probe implements launcher.System against the host OS.
type Probe struct {
	// execFn performs the process-image replacement; tests substitute
	// it to observe the call without losing the test process.
	execFn func(argv0 string, argv []string, envv []string) error
}

// New returns a Probe backed by the host OS.
func New() *Probe {
	return &Probe{}
}

// InstallDir resolves the canonical directory containing the running
// executable. Symlinks are resolved so a launcher invoked through one
// still finds its real siblings.
func (p *Probe) InstallDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	return installDirFor(exe)
}

func installDirFor(exe string) (string, error) {
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve executable path %s: %w", exe, err)
	}
	return filepath.Dir(resolved), nil
}

// Chdir makes dir the working directory.
func (p *Probe) Chdir(dir string) error {
	return os.Chdir(dir)
}

// FileExists reports whether path exists.
func (p *Probe) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ExecutableFile reports whether path is a regular file the current
// user may execute.
func (p *Probe) ExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return unix.Access(path, unix.X_OK) == nil
}

// ProcessRunning scans the process table for a process whose command
// name matches exactly and whose real UID is the current user's. Any
// failure, for the whole table or a single entry, reads as absence: a
// missed match at worst causes one redundant start attempt, which the
// daemons tolerate.
func (p *Probe) ProcessRunning(name string) bool {
	procs, err := process.Processes()
	if err != nil {
		return false
	}
	uid := int32(os.Getuid())
	for _, proc := range procs {
		procName, err := proc.Name()
		if err != nil || procName != name {
			continue
		}
		uids, err := proc.Uids()
		if err != nil || len(uids) == 0 {
			continue
		}
		if uids[0] == uid {
			return true
		}
	}
	return false
}

// StartDaemon runs the executable at path and waits for it to exit.
// The child inherits the launcher's stdio: daemons stay attached to
// the terminal during their foreground phase (the core daemon prompts
// for its passphrase there) and detach on their own.
func (p *Probe) StartDaemon(ctx context.Context, path string, args ...string) error {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Exec replaces the current process image with the handoff target. On
// success it never returns.
func (p *Probe) Exec(h launcher.Handoff) error {
	argv := h.Args
	if len(argv) == 0 {
		argv = []string{h.Path}
	}
	execFn := p.execFn
	if execFn == nil {
		execFn = unix.Exec
	}
	if err := execFn(h.Path, argv, os.Environ()); err != nil {
		return fmt.Errorf("exec %s: %w", h.Path, err)
	}
	return nil
}
