// SPDX-License-Identifier: Apache-2.0
package cmdutil

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/Work-Fort/GpgAssist/pkg/cmdline"
	"github.com/Work-Fort/GpgAssist/pkg/compat"
	"github.com/Work-Fort/GpgAssist/pkg/config"
	"golang.org/x/term"
)

// IsInteractive checks if stdin is connected to a terminal AND the user wants TUI mode
func IsInteractive() bool {
	// Check both terminal capability and user preference
	return term.IsTerminal(int(os.Stdin.Fd())) && config.GetUseTUI()
}

// Synthesizer builds a command line synthesizer from the synth.* settings
func Synthesizer() (cmdline.Synthesizer, error) {
	quote, err := cmdline.ParseQuoteMode(config.GetQuote())
	if err != nil {
		return cmdline.Synthesizer{}, err
	}

	target, err := compat.ParseTarget(config.GetGnuPGVersion())
	if err != nil {
		return cmdline.Synthesizer{}, fmt.Errorf("invalid GnuPG version: %w", err)
	}

	log.Debugf("synthesizer: quote=%s target=%v", quote, target)
	return cmdline.Synthesizer{Quote: quote, Target: target}, nil
}
