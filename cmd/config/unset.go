// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"

	"github.com/Work-Fort/GpgAssist/pkg/config"
	"github.com/spf13/cobra"
)

func newUnsetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unset [key]",
		Short: "Remove configuration value",
		Long: `Remove a configuration key from a config file.

Keys use dot notation for nested values (e.g., synth.quote).

**Note:**
  - Removing a parent key removes all nested values (e.g., unsetting 'synth' removes 'synth.quote' and 'synth.gnupg-version')
  - Environment variables and defaults will still apply after removal`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeKeys,
		Example: `  # Remove from local config
  gpgassist config unset synth.quote

  # Remove from user config
  gpgassist config unset --global use-tui

  # Remove parent (removes all children)
  gpgassist config unset synth`,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			scope, scopeName, configFile := targetScope()

			// Call business logic
			if err := config.UnsetConfigValue(key, scope); err != nil {
				return err
			}

			// Show success message
			fmt.Fprintln(cmd.OutOrStdout(), config.CurrentTheme.SuccessMessage(fmt.Sprintf("Removed %s from %s config (%s)", key, scopeName, configFile)))

			return nil
		},
	}

	addGlobalFlag(cmd)
	return cmd
}
