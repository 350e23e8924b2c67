// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"

	"github.com/Work-Fort/GpgAssist/pkg/config"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all configuration values",
		Long: `List all configuration values with their sources.

Shows all configuration keys currently set, along with their values
and where they come from (ENV, local config, user config, or default).

Output format: key = value (source)`,
		Example: `  # List all configuration
  gpgassist config list

  # Example output:
  # log-level = debug (default)
  # synth.gnupg-version = 2.0.22 (from ./gpgassist.yaml)
  # synth.quote = shell (from ~/.config/gpgassist/config.yaml)
  # use-tui = false (from ENV: GPGASSIST_USE_TUI)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			// Call business logic
			values, err := config.ListConfigValues()
			if err != nil {
				return err
			}

			if len(values) == 0 {
				fmt.Fprintln(out, "No configuration set")
				return nil
			}

			// Display each key with its source
			for _, cv := range values {
				fmt.Fprintf(out, "%s = %v (%s)\n", cv.Key, cv.Value, cv.Source)
			}

			// Show configuration precedence info
			fmt.Fprintln(out, "\n"+config.CurrentTheme.SubtleStyle().Render("Configuration precedence: ENV > local config > user config > defaults"))

			return nil
		},
	}

	return cmd
}
