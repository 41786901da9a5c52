package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pb-/lgtd-suite/internal/launcher"
	"github.com/pb-/lgtd-suite/internal/logging"
)

func newStatusCommand(cctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the state of the suite components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := cctx.newLauncher(logging.NewNop()).Inspect()
			if asJSON {
				return writeJSON(cmd, report)
			}
			renderReport(cmd, report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the report as JSON")
	return cmd
}

func renderReport(cmd *cobra.Command, report launcher.Report) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	for _, line := range renderSectionHeader("lgtd suite", colorize) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, installDirLine(report, colorize))
	fmt.Fprintln(out, configDirLine(report, colorize))
	fmt.Fprintln(out, syncLine(report, colorize))
	fmt.Fprintln(out)

	headers := []string{"COMPONENT", "ROLE", "INSTALLED", "RUNNING"}
	rows := make([][]string, 0, len(report.Components))
	for _, component := range report.Components {
		rows = append(rows, []string{
			component.Name,
			component.Role,
			installedCell(component),
			yesNo(component.Running),
		})
	}
	fmt.Fprintln(out, renderTable(headers, rows))
}

func installDirLine(report launcher.Report, colorize bool) string {
	if report.InstallDir == "" {
		return renderStatusLine("Install dir", statusError, "unresolvable", colorize)
	}
	return renderStatusLine("Install dir", statusOK, report.InstallDir, colorize)
}

func configDirLine(report launcher.Report, colorize bool) string {
	if report.ConfigDir == "" {
		return renderStatusLine("Config dir", statusWarn, "unresolvable", colorize)
	}
	return renderStatusLine("Config dir", statusOK, report.ConfigDir, colorize)
}

func syncLine(report launcher.Report, colorize bool) string {
	if report.SyncConfigured {
		return renderStatusLine("Sync", statusOK, "configured", colorize)
	}
	missing := missingMarkers(report)
	if len(missing) == 0 {
		return renderStatusLine("Sync", statusInfo, "not configured", colorize)
	}
	return renderStatusLine("Sync", statusInfo, "not configured (missing "+strings.Join(missing, ", ")+")", colorize)
}

func missingMarkers(report launcher.Report) []string {
	var missing []string
	for _, marker := range report.SyncMarkers {
		if !marker.Present {
			missing = append(missing, filepath.Base(marker.Path))
		}
	}
	return missing
}

func installedCell(component launcher.ComponentStatus) string {
	switch {
	case !component.Installed:
		return "no"
	case !component.Executable:
		return "not executable"
	default:
		return "yes"
	}
}
