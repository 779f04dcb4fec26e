package main

import (
	"fmt"

	"github.com/justinpbarnett/buildwall/internal/ui/panels"
	"github.com/justinpbarnett/buildwall/internal/update"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and check for a newer release",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "buildwall version %s\n", panels.Version)

		if panels.Version == "dev" {
			fmt.Fprintln(out, "Development build, update check skipped.")
			return
		}

		rel, err := update.Check(cmd.Context(), panels.Version, update.Repo)
		if err != nil {
			fmt.Fprintf(out, "Update check failed: %v\n", err)
			return
		}
		if rel != nil {
			fmt.Fprintf(out, "Update available: v%s. Run \"buildwall update\" to install.\n", rel.Version)
		} else {
			fmt.Fprintln(out, "You are up to date.")
		}
	},
}
