// SPDX-License-Identifier: Apache-2.0
package cmdline

import (
	"fmt"
	"strings"

	"github.com/Work-Fort/GpgAssist/pkg/catalog"
	"github.com/Work-Fort/GpgAssist/pkg/compat"
	"github.com/hashicorp/go-version"
	"github.com/kballard/go-shellquote"
)

// Program is the first token of every synthesized command line
const Program = "gpg"

// QuoteMode controls how free-text values are written into the command line
type QuoteMode int

const (
	// QuoteNone concatenates values verbatim. A value containing whitespace or
	// shell metacharacters will be split or interpreted by the shell.
	QuoteNone QuoteMode = iota
	// QuoteShell shell-quotes free-text values that need it
	QuoteShell
)

// ParseQuoteMode parses the quote config value ("none" or "shell")
func ParseQuoteMode(s string) (QuoteMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return QuoteNone, nil
	case "shell":
		return QuoteShell, nil
	default:
		return QuoteNone, fmt.Errorf("invalid quote mode %q (must be 'none' or 'shell')", s)
	}
}

func (m QuoteMode) String() string {
	if m == QuoteShell {
		return "shell"
	}
	return "none"
}

// Synthesizer turns a descriptor and form state into a command line.
// The zero value produces the plain form: no quoting, current GnuPG spellings.
type Synthesizer struct {
	Quote  QuoteMode
	Target *version.Version // nil = current GnuPG
}

// Tokens returns the command line as tokens. A nil descriptor yields nil.
// Only fields declared relevant by d are read from s.
func (z Synthesizer) Tokens(d *catalog.Descriptor, s FormState) []string {
	if d == nil {
		return nil
	}

	tokens := []string{Program}

	if d.SupportsArmor && s.HasArmor {
		tokens = append(tokens, "--armor")
	}

	if d.SupportsMinimal && s.IsMinimal {
		tokens = append(tokens, "--export-options export-minimal")
	}

	if d.NeedsOutput && s.UseOutputFile && s.OutputFile != "" {
		tokens = append(tokens, "--output", z.value(s.OutputFile))
	}

	if d.NeedsRecipient && s.Recipient != "" {
		tokens = append(tokens, "--recipient", z.value(s.Recipient))
	}

	op := d.Command
	if d.HasExpertVariant() && s.IsExpert {
		op = d.ExpertCommand
	}
	tokens = append(tokens, compat.Rewrite(op, z.Target))

	if d.NeedsKey && s.Key != "" {
		tokens = append(tokens, z.value(s.Key))
	}

	if d.NeedsInput && s.UseInputFile && s.InputFile != "" {
		tokens = append(tokens, z.value(s.InputFile))
	}

	return tokens
}

// Synthesize returns the command line for d and s, or "" when d is nil
func (z Synthesizer) Synthesize(d *catalog.Descriptor, s FormState) string {
	return strings.Join(z.Tokens(d, s), " ")
}

// SynthesizeState resolves s.SelectedIndex through the catalog. No selection
// or an out-of-range index yields "".
func (z Synthesizer) SynthesizeState(s FormState) string {
	d, ok := catalog.At(s.SelectedIndex)
	if !ok {
		return ""
	}
	return z.Synthesize(&d, s)
}

func (z Synthesizer) value(v string) string {
	if z.Quote == QuoteShell {
		return shellquote.Join(v)
	}
	return v
}

// Synthesize builds the command line with default settings
func Synthesize(d *catalog.Descriptor, s FormState) string {
	return Synthesizer{}.Synthesize(d, s)
}

// Tokens returns the default-settings command line as tokens
func Tokens(d *catalog.Descriptor, s FormState) []string {
	return Synthesizer{}.Tokens(d, s)
}

// SynthesizeState builds the default-settings command line for the selected descriptor
func SynthesizeState(s FormState) string {
	return Synthesizer{}.SynthesizeState(s)
}
