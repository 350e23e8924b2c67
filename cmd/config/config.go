// SPDX-License-Identifier: Apache-2.0
package config

import (
	"sort"
	"strings"

	"github.com/Work-Fort/GpgAssist/pkg/config"
	"github.com/spf13/cobra"
)

var (
	// globalFlag determines whether to operate on user config vs local config
	globalFlag bool
)

// NewConfigCmd creates the config command and its subcommands
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage gpgassist configuration",
		Long: `Manage gpgassist configuration settings.

Configuration precedence (highest to lowest):
  1. Environment variables (GPGASSIST_*)
  2. Local config (./gpgassist.yaml)
  3. User config (~/.config/gpgassist/config.yaml)
  4. Defaults

By default, config commands operate on local config (./gpgassist.yaml).
Use --global to operate on user config instead.`,
		Example: `  # Set local config (this directory)
  gpgassist config set synth.quote shell
  gpgassist config set synth.gnupg-version 2.0.22

  # Set global config (user preferences)
  gpgassist config set --global use-tui false

  # Get configuration value
  gpgassist config get synth.quote

  # Remove configuration value
  gpgassist config unset synth.gnupg-version
  gpgassist config unset --global use-tui

  # List all configuration
  gpgassist config list`,
	}

	// Add subcommands
	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newUnsetCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newSchemaCmd())

	return cmd
}

// addGlobalFlag adds the --global flag to a command
func addGlobalFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&globalFlag, "global", false, "Operate on user config instead of local config")
}

// targetScope returns the scope selected by --global, with a display name and file
func targetScope() (config.ConfigScope, string, string) {
	if globalFlag {
		return config.ScopeUser, "global", "~/.config/gpgassist/" + config.ConfigFileName + config.DefaultConfigExt
	}
	return config.ScopeLocal, "local", config.LocalConfigFile + config.DefaultConfigExt
}

// completeKeys offers registered configuration keys for the first argument
func completeKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var keys []string
	for key, def := range config.ConfigRegistry {
		if strings.HasPrefix(key, toComplete) {
			keys = append(keys, key+"\t"+def.Description)
		}
	}
	sort.Strings(keys)
	return keys, cobra.ShellCompDirectiveNoFileComp
}
