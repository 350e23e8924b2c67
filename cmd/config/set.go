// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"

	"github.com/Work-Fort/GpgAssist/pkg/config"
	"github.com/spf13/cobra"
)

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Set configuration value",
		Long: `Set a configuration key to a value.

Keys use dot notation for nested values (e.g., synth.quote).

Boolean values support natural language:
  - true:  true, yes, on, enable, enabled
  - false: false, no, off, disable, disabled

Values are checked against the key's type before anything is written.`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeKeys,
		Example: `  # Set boolean values (multiple formats supported)
  gpgassist config set --global use-tui false
  gpgassist config set --global use-tui off

  # Set enum values
  gpgassist config set log-level info
  gpgassist config set synth.quote shell

  # Target an older GnuPG
  gpgassist config set synth.gnupg-version 2.0.22`,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			scope, scopeName, configFile := targetScope()

			// Call business logic
			if err := config.SetConfigValue(key, value, scope); err != nil {
				return err
			}

			// Show success message
			fmt.Fprintln(cmd.OutOrStdout(), config.CurrentTheme.SuccessMessage(fmt.Sprintf("Set %s = %s (%s: %s)", key, value, scopeName, configFile)))

			return nil
		},
	}

	addGlobalFlag(cmd)
	return cmd
}
