package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pb-/lgtd-suite/internal/logging"
)

// runLaunch handles the bare lgtd invocation: bring the daemons up,
// then become the interface process. On success it does not return to
// the caller.
func runLaunch(cmd *cobra.Command, cctx *commandContext) error {
	cfg, err := cctx.ensureConfig()
	if err != nil {
		// A broken launcher.toml must not keep the suite from starting.
		fmt.Fprintf(cmd.ErrOrStderr(), "launcher config ignored: %v\n", err)
		cfg = nil
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "launcher logging config ignored: %v\n", err)
		logger, _ = logging.NewFromConfig(nil)
	}

	result, err := cctx.newLauncher(logger).Run(cmd.Context())
	if err != nil {
		return err
	}
	return cctx.systemProbe().Exec(result.Handoff)
}
