// SPDX-License-Identifier: Apache-2.0
package ui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// TerminalWidth returns the stdout width, or fallback when stdout is not a terminal
func TerminalWidth(fallback int) int {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

// RenderMarkdownToString renders markdown through glamour and returns the string
func RenderMarkdownToString(markdown string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(TerminalWidth(100)),
	)
	if err != nil {
		return "", err
	}

	return r.Render(markdown)
}
