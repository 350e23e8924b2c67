// SPDX-License-Identifier: Apache-2.0
package config

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTheme_RenderHeader(t *testing.T) {
	out := CurrentTheme.RenderHeader(80, "COMPOSE", "ENCRYPT A MESSAGE")

	if !strings.Contains(out, "GPG-ASSIST  ▸  COMPOSE  ▸  [ENCRYPT A MESSAGE]") {
		t.Errorf("header = %q", out)
	}
	if w := lipgloss.Width(out); w != 80 {
		t.Errorf("header width = %d, want 80", w)
	}
}

func TestTheme_RenderFooter(t *testing.T) {
	out := CurrentTheme.RenderFooter(60, "[ESC] Exit")
	if !strings.Contains(out, "╰─ [ESC] Exit ─╯") {
		t.Errorf("footer = %q", out)
	}
}

func TestTheme_SuccessMessage(t *testing.T) {
	if out := CurrentTheme.SuccessMessage("done"); !strings.Contains(out, "✓ done") {
		t.Errorf("SuccessMessage = %q", out)
	}
}
