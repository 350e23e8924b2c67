// SPDX-License-Identifier: Apache-2.0
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// KeyBindingSet is a collection of related key bindings
type KeyBindingSet struct {
	Bindings []key.Binding
}

// Contains returns the first enabled binding matching the key press, or nil
func (kbs KeyBindingSet) Contains(msg tea.KeyMsg) *key.Binding {
	for i := range kbs.Bindings {
		if key.Matches(msg, kbs.Bindings[i]) {
			return &kbs.Bindings[i]
		}
	}
	return nil
}

// Render formats key bindings for display
// Format: "[KEY] Action  •  [KEY] Action"
func (kbs KeyBindingSet) Render(style lipgloss.Style) string {
	parts := make([]string, 0, len(kbs.Bindings))
	for _, binding := range kbs.Bindings {
		if !binding.Enabled() {
			continue
		}
		help := binding.Help()
		parts = append(parts, fmt.Sprintf("[%s] %s", strings.ToUpper(help.Key), help.Desc))
	}
	if len(parts) == 0 {
		return ""
	}

	return style.Render(strings.Join(parts, "  •  "))
}

// RenderInline formats key bindings for inline display (more compact)
// Format: "Key: action | Key: action"
func (kbs KeyBindingSet) RenderInline(style lipgloss.Style) string {
	parts := make([]string, 0, len(kbs.Bindings))
	caser := cases.Title(language.Und, cases.NoLower)
	for _, binding := range kbs.Bindings {
		if !binding.Enabled() {
			continue
		}
		help := binding.Help()
		parts = append(parts, fmt.Sprintf("%s: %s", caser.String(help.Key), strings.ToLower(help.Desc)))
	}
	if len(parts) == 0 {
		return ""
	}

	return style.Render(strings.Join(parts, " | "))
}

// ComposerKeyBindings returns the key bindings shown under the command composer
func ComposerKeyBindings() KeyBindingSet {
	return KeyBindingSet{
		Bindings: []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "Next")),
			key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "Back")),
			key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "Exit")),
		},
	}
}

// QuitKeyBindings returns the bindings that abandon the composer
func QuitKeyBindings() KeyBindingSet {
	return KeyBindingSet{
		Bindings: []key.Binding{
			key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "Exit")),
		},
	}
}
