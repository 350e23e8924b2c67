// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"

	"github.com/Work-Fort/GpgAssist/pkg/config"
	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [key]",
		Short: "Get configuration value",
		Long: `Get a configuration value and show its source.

The source indicates where the value comes from in precedence order:
  - ENV: Environment variable (GPGASSIST_*)
  - Local: Local config file (./gpgassist.yaml)
  - User: User config file (~/.config/gpgassist/config.yaml)
  - Default: Built-in default value`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeKeys,
		Example: `  # Get a configuration value
  gpgassist config get synth.quote

  # Output shows value and source:
  # use-tui = false (from ENV: GPGASSIST_USE_TUI)
  # synth.quote = shell (from ./gpgassist.yaml)
  # log-level = info (from ~/.config/gpgassist/config.yaml)
  # synth.gnupg-version =  (default)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			// Call business logic
			configValue, err := config.GetConfigValue(key)
			if err != nil {
				return err
			}

			// Display value with source
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %v (%s)\n", configValue.Key, configValue.Value, configValue.Source)

			return nil
		},
	}

	return cmd
}
