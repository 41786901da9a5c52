package main

import (
	"log/slog"
	"sync"

	"github.com/pb-/lgtd-suite/internal/config"
	"github.com/pb-/lgtd-suite/internal/launcher"
	"github.com/pb-/lgtd-suite/internal/logging"
	"github.com/pb-/lgtd-suite/internal/probe"
)

// commandContext carries lazily-built dependencies shared by the
// commands. Tests pre-populate system so command runs stay off the
// real process table.
type commandContext struct {
	configOnce sync.Once
	config     *config.Config
	configErr  error

	system launcher.System
}

func newCommandContext() *commandContext {
	return &commandContext{}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load("")
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) systemProbe() launcher.System {
	if c.system == nil {
		c.system = probe.New()
	}
	return c.system
}

// newLauncher assembles a Launcher over the shared system probe. When
// the user config directory cannot be resolved the sync marker paths
// stay empty and the sync step is skipped; the core daemon and the
// interface are not affected.
func (c *commandContext) newLauncher(logger *slog.Logger) *launcher.Launcher {
	l := &launcher.Launcher{
		System: c.systemProbe(),
		Logger: logger,
	}
	confPath, certPath, err := config.SyncMarkerPaths()
	if err != nil {
		logging.NewComponentLogger(logger, "launcher").Debug("user config directory unavailable", logging.Error(err))
		return l
	}
	l.SyncConfigPath = confPath
	l.SyncCertPath = certPath
	return l
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
