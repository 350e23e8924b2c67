// SPDX-License-Identifier: Apache-2.0
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/Work-Fort/GpgAssist/pkg/config"
)

// LayoutDimensions holds calculated dimensions for a TUI layout
type LayoutDimensions struct {
	Width             int
	Height            int
	PaneContentWidth  int
	PaneRenderedWidth int
	SideBySide        bool
}

// minSplitWidth is the narrowest terminal that still gets form and preview
// side by side. Below it the preview stacks under the form.
const minSplitWidth = 100

// CalculateSplitPaneDimensions calculates dimensions for a 50/50 split-pane layout
//
// Lipgloss width behavior (as of v1.1.1):
// - Style.Width(w) sets content width INCLUDING padding (padding is inside)
// - Border is rendered OUTSIDE of Style.Width() (adds to final render)
// - Actual rendered width = Style.Width() + border width
//
// Example for terminal width 130:
// - Gap between panes: 2 chars
// - Target per pane: (130 - 2) / 2 = 64 chars rendered
// - Border overhead: 2 chars (RoundedBorder = 1 char per side)
// - Content width to set: 64 - 2 = 62 chars
func CalculateSplitPaneDimensions(terminalWidth, terminalHeight int) LayoutDimensions {
	const gap = 2
	const borderWidth = 2 // All border types are 2 chars wide (1 per side)

	if terminalWidth < minSplitWidth {
		return LayoutDimensions{
			Width:             terminalWidth,
			Height:            terminalHeight,
			PaneContentWidth:  max(terminalWidth-borderWidth, 0),
			PaneRenderedWidth: terminalWidth,
		}
	}

	paneRenderedWidth := (terminalWidth - gap) / 2
	return LayoutDimensions{
		Width:             terminalWidth,
		Height:            terminalHeight,
		PaneContentWidth:  paneRenderedWidth - borderWidth,
		PaneRenderedWidth: paneRenderedWidth,
		SideBySide:        true,
	}
}

// CreatePaneStyle creates a styled pane based on active state
// Uses ThickBorder for active, NormalBorder for inactive (both 2 chars wide)
func CreatePaneStyle(isActive bool, accentColor, mutedColor lipgloss.Color, contentWidth int) lipgloss.Style {
	if isActive {
		return lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accentColor).
			Width(contentWidth).
			Padding(0, 1)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(mutedColor).
		Width(contentWidth).
		Padding(0, 1)
}

// RenderCommandPreview renders a command line inside a titled pane. An empty
// line renders a placeholder so the pane keeps its size.
func RenderCommandPreview(line string, contentWidth int, ready bool) string {
	theme := config.CurrentTheme

	title := lipgloss.NewStyle().
		Foreground(theme.GetSecondaryColor()).
		Bold(true).
		Render("Command")

	body := theme.SubtleStyle().Render("pick something to do")
	if line != "" {
		body = lipgloss.NewStyle().Foreground(theme.GetPrimaryColor()).Render("$ " + line)
	}

	pane := CreatePaneStyle(ready, theme.GetPrimaryColor(), theme.GetMutedColor(), contentWidth)
	return pane.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body))
}

// FillTerminal uses lipgloss.Place to fill terminal dimensions and eliminate gaps
func FillTerminal(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, content)
}
