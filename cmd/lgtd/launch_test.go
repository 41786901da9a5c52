package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pb-/lgtd-suite/internal/config"
)

func TestLaunchStartsDaemonsAndBecomesInterface(t *testing.T) {
	setupTestHome(t)
	sys := newFakeSystem()
	markSyncConfigured(t, sys)

	_, _, err := runCLI(t, sys)
	if err != nil {
		t.Fatalf("launch failed: %v", err)
	}

	requireOp(t, sys, "chdir /opt/lgtd")
	requireOp(t, sys, "start ./lgtd_sync --daemon")
	requireOp(t, sys, "start ./lgtd_d --daemon")
	requireOp(t, sys, "exec ./lgtd_ui")
}

func TestLaunchSkipsSyncWhenUnconfigured(t *testing.T) {
	setupTestHome(t)
	sys := newFakeSystem()

	_, _, err := runCLI(t, sys)
	if err != nil {
		t.Fatalf("launch failed: %v", err)
	}

	if sys.hasOpPrefix("start ./lgtd_sync") {
		t.Fatalf("sync daemon must not be started without markers, saw: %v", sys.ops)
	}
	requireOp(t, sys, "start ./lgtd_d --daemon")
	requireOp(t, sys, "exec ./lgtd_ui")
}

func TestLaunchFailsWhenCoreCannotStart(t *testing.T) {
	setupTestHome(t)
	sys := newFakeSystem()
	sys.startErr["./lgtd_d"] = errors.New("exit status 1")

	_, _, err := runCLI(t, sys)
	if err == nil {
		t.Fatal("expected launch to fail when the core daemon cannot start")
	}
	requireContains(t, err.Error(), "lgtd_d")

	if sys.hasOpPrefix("exec") {
		t.Fatalf("interface must not start after a core failure, saw: %v", sys.ops)
	}
}

func TestLaunchContinuesWhenSyncFails(t *testing.T) {
	home := setupTestHome(t)
	logPath := filepath.Join(home, "launcher.log")
	writeLauncherConfig(t, fmt.Sprintf("[logging]\nlevel = \"debug\"\nfile = %q\n", logPath))

	sys := newFakeSystem()
	markSyncConfigured(t, sys)
	sys.startErr["./lgtd_sync"] = errors.New("exit status 1")

	_, _, err := runCLI(t, sys)
	if err != nil {
		t.Fatalf("a sync failure must not block the launch: %v", err)
	}
	requireOp(t, sys, "start ./lgtd_d --daemon")
	requireOp(t, sys, "exec ./lgtd_ui")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read launcher log: %v", err)
	}
	requireContains(t, string(data), "sync daemon could not be started")
}

func TestLaunchIgnoresBrokenLauncherConfig(t *testing.T) {
	setupTestHome(t)
	writeLauncherConfig(t, "[logging]\nlevel = \"chatty\"\n")

	sys := newFakeSystem()
	_, stderr, err := runCLI(t, sys)
	if err != nil {
		t.Fatalf("a broken launcher config must not block the launch: %v", err)
	}
	requireContains(t, stderr, "launcher config ignored")
	requireOp(t, sys, "exec ./lgtd_ui")
}

func TestLaunchRejectsArguments(t *testing.T) {
	setupTestHome(t)
	sys := newFakeSystem()

	_, _, err := runCLI(t, sys, "up")
	if err == nil {
		t.Fatal("expected an unknown command error")
	}
	if sys.hasOpPrefix("start") || sys.hasOpPrefix("exec") {
		t.Fatalf("nothing may start on a bad invocation, saw: %v", sys.ops)
	}
}

func writeLauncherConfig(t *testing.T, content string) {
	t.Helper()
	path, err := config.DefaultConfigPath()
	if err != nil {
		t.Fatalf("resolve launcher config path: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write launcher config: %v", err)
	}
}
