package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	return newRootCommandWithContext(newCommandContext())
}

func newRootCommandWithContext(cctx *commandContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lgtd",
		Short: "Start the lgtd task management suite",
		Long: "lgtd brings the task management suite up and hands over to the\n" +
			"interface. When sync is configured it starts the sync daemon, then it\n" +
			"starts the core daemon, and finally it becomes the interface process.\n" +
			"Daemons that are already running are left alone.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaunch(cmd, cctx)
		},
	}

	rootCmd.AddCommand(newStatusCommand(cctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
