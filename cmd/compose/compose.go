// SPDX-License-Identifier: Apache-2.0
package compose

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/Work-Fort/GpgAssist/cmd/cmdutil"
	"github.com/Work-Fort/GpgAssist/pkg/cmdline"
	"github.com/spf13/cobra"
)

// NewComposeCmd creates the compose command
func NewComposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compose",
		Short: "Build a gpg command line interactively",
		Long: `Open the interactive composer.

Pick what you want to do, answer the questions that apply to it and watch the
gpg command line update as you go. When you finish the form the command is
printed to stdout, so it can be piped or copied. Press esc to leave without
printing anything.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			synth, err := cmdutil.Synthesizer()
			if err != nil {
				return err
			}

			line, err := Run(synth)
			if err != nil {
				return err
			}
			if line != "" {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}

// Run opens the composer TUI and returns the accepted command line. Leaving
// the composer early returns "" and no error.
func Run(synth cmdline.Synthesizer) (string, error) {
	p := tea.NewProgram(NewComposerModel(synth), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("composer failed: %w", err)
	}

	m, ok := final.(*ComposerModel)
	if !ok || m.Aborted() {
		log.Debug("compose: left without a command")
		return "", nil
	}
	return m.Result(), nil
}
