package launcher

import "path/filepath"

// ComponentStatus describes one suite executable for diagnostics.
type ComponentStatus struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Installed  bool   `json:"installed"`
	Executable bool   `json:"executable"`
	Running    bool   `json:"running"`
}

// MarkerStatus reports the presence of one sync marker file.
type MarkerStatus struct {
	Path    string `json:"path"`
	Present bool   `json:"present"`
}

// Report is a read-only snapshot of the suite as the launcher sees it.
type Report struct {
	InstallDir     string            `json:"install_dir,omitempty"`
	ConfigDir      string            `json:"config_dir,omitempty"`
	SyncConfigured bool              `json:"sync_configured"`
	SyncMarkers    []MarkerStatus    `json:"sync_markers,omitempty"`
	Components     []ComponentStatus `json:"components"`
}

// Inspect gathers a report through the same probes Run relies on. It
// never starts anything, never changes directory, and never execs, so
// it is safe to call while the suite is in any state.
func (l *Launcher) Inspect() Report {
	var report Report

	if dir, err := l.System.InstallDir(); err == nil {
		report.InstallDir = dir
	}

	if l.SyncConfigPath != "" && l.SyncCertPath != "" {
		report.ConfigDir = filepath.Dir(l.SyncConfigPath)
		report.SyncMarkers = []MarkerStatus{
			{Path: l.SyncConfigPath, Present: l.System.FileExists(l.SyncConfigPath)},
			{Path: l.SyncCertPath, Present: l.System.FileExists(l.SyncCertPath)},
		}
		report.SyncConfigured = report.SyncMarkers[0].Present && report.SyncMarkers[1].Present
	}

	for _, c := range []struct {
		name string
		role string
	}{
		{CoreDaemonExecutable, "core daemon"},
		{SyncDaemonExecutable, "sync daemon"},
		{UIExecutable, "interface"},
	} {
		status := ComponentStatus{Name: c.name, Role: c.role}
		if report.InstallDir != "" {
			path := filepath.Join(report.InstallDir, c.name)
			status.Installed = l.System.FileExists(path)
			status.Executable = l.System.ExecutableFile(path)
		}
		status.Running = l.System.ProcessRunning(c.name)
		report.Components = append(report.Components, status)
	}
	return report
}

// Component returns the status row for the named executable, if present.
func (r Report) Component(name string) (ComponentStatus, bool) {
	for _, c := range r.Components {
		if c.Name == name {
			return c, true
		}
	}
	return ComponentStatus{}, false
}
