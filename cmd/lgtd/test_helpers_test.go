package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pb-/lgtd-suite/internal/config"
	"github.com/pb-/lgtd-suite/internal/launcher"
)

// fakeSystem answers launcher probes from canned state and records the
// operations it sees, so tests can assert on what a command did without
// touching the real process table.
type fakeSystem struct {
	dir      string
	dirErr   error
	files    map[string]bool
	running  map[string]bool
	startErr map[string]error
	execErr  error

	ops []string
}

func newFakeSystem() *fakeSystem {
	return &fakeSystem{
		dir:      "/opt/lgtd",
		files:    map[string]bool{},
		running:  map[string]bool{},
		startErr: map[string]error{},
	}
}

func (f *fakeSystem) InstallDir() (string, error) {
	f.ops = append(f.ops, "install-dir")
	return f.dir, f.dirErr
}

func (f *fakeSystem) Chdir(dir string) error {
	f.ops = append(f.ops, "chdir "+dir)
	return nil
}

func (f *fakeSystem) FileExists(path string) bool {
	f.ops = append(f.ops, "stat "+path)
	return f.files[path]
}

func (f *fakeSystem) ExecutableFile(path string) bool {
	f.ops = append(f.ops, "access "+path)
	return f.files[path]
}

func (f *fakeSystem) ProcessRunning(name string) bool {
	f.ops = append(f.ops, "query "+name)
	return f.running[name]
}

func (f *fakeSystem) StartDaemon(_ context.Context, path string, args ...string) error {
	f.ops = append(f.ops, "start "+path+" "+strings.Join(args, " "))
	return f.startErr[path]
}

func (f *fakeSystem) Exec(handoff launcher.Handoff) error {
	f.ops = append(f.ops, "exec "+handoff.Path)
	return f.execErr
}

func (f *fakeSystem) hasOp(op string) bool {
	for _, seen := range f.ops {
		if seen == op {
			return true
		}
	}
	return false
}

func (f *fakeSystem) hasOpPrefix(prefix string) bool {
	for _, seen := range f.ops {
		if strings.HasPrefix(seen, prefix) {
			return true
		}
	}
	return false
}

// setupTestHome points the user config machinery at a throwaway home
// directory so tests never read or write real launcher state.
func setupTestHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	return home
}

// markSyncConfigured flags both sync marker files as present in the
// fake, at the paths the launcher will actually look at.
func markSyncConfigured(t *testing.T, sys *fakeSystem) {
	t.Helper()
	confPath, certPath, err := config.SyncMarkerPaths()
	if err != nil {
		t.Fatalf("resolve sync marker paths: %v", err)
	}
	sys.files[confPath] = true
	sys.files[certPath] = true
}

func runCLI(t *testing.T, sys launcher.System, args ...string) (string, string, error) {
	t.Helper()

	cctx := newCommandContext()
	cctx.system = sys

	cmd := newRootCommandWithContext(cctx)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if args == nil {
		// A nil argument list would make cobra fall back to os.Args.
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("expected output to contain %q, got:\n%s", want, output)
	}
}

func requireOp(t *testing.T, sys *fakeSystem, op string) {
	t.Helper()
	if !sys.hasOp(op) {
		t.Fatalf("expected operation %q, saw: %v", op, sys.ops)
	}
}
