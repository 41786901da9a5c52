package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Fixed file names inside the per-user configuration directory. The two
// sync markers gate the sync daemon: their presence, not their content,
// is what the launcher checks.
const (
	syncConfigFile = "sync.conf.json"
	syncCertFile   = "server.crt"
	launcherConfig = "launcher.toml"
)

// Dir returns the per-user lgtd configuration directory. It honours
// XDG_CONFIG_HOME through os.UserConfigDir.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "lgtd"), nil
}

// SyncMarkerPaths returns the paths of the sync configuration file and
// the server certificate. Both must exist for sync to be considered
// configured.
func SyncMarkerPaths() (confPath, certPath string, err error) {
	dir, err := Dir()
	if err != nil {
		return "", "", err
	}
	return filepath.Join(dir, syncConfigFile), filepath.Join(dir, syncCertFile), nil
}

// DefaultConfigPath returns the default location of the launcher's own
// configuration file.
func DefaultConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, launcherConfig), nil
}

// ExpandPath expands a leading tilde to the current user's home
// directory. Empty input stays empty.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		if path == "~" {
			return home, nil
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
