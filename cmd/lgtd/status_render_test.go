package main

import (
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("Sync", statusInfo, "not configured", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "Sync:", "[INFO] not configured")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("Install dir", statusOK, "/opt/lgtd", true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestRenderSectionHeader(t *testing.T) {
	lines := renderSectionHeader("lgtd suite", false)
	if len(lines) != 2 {
		t.Fatalf("expected header and rule, got %v", lines)
	}
	if lines[0] != "== lgtd suite ==" {
		t.Fatalf("unexpected header line %q", lines[0])
	}
	if lines[1] != strings.Repeat("-", len(lines[0])) {
		t.Fatalf("rule does not match header width: %q", lines[1])
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatalf("expected non-file writer to disable color")
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable(
		[]string{"COMPONENT", "RUNNING"},
		[][]string{{"lgtd_d", "yes"}, {"lgtd_sync"}},
	)
	if !strings.Contains(out, "COMPONENT") {
		t.Fatalf("missing header in table output:\n%s", out)
	}
	if !strings.Contains(out, "lgtd_sync") {
		t.Fatalf("missing padded row in table output:\n%s", out)
	}
}
