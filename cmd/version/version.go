// SPDX-License-Identifier: Apache-2.0
package version

import (
	"fmt"

	"github.com/Work-Fort/GpgAssist/pkg/config"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command
func NewVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the current version of gpgassist and the GnuPG release it writes commands for.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if version == "" {
				version = "dev"
			}
			target := config.GetGnuPGVersion()
			if target == "" {
				target = "latest"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "gpgassist version %s (gnupg target: %s)\n", version, target)
		},
	}
}
