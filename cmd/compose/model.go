// SPDX-License-Identifier: Apache-2.0
package compose

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/Work-Fort/GpgAssist/pkg/catalog"
	"github.com/Work-Fort/GpgAssist/pkg/cmdline"
	"github.com/Work-Fort/GpgAssist/pkg/config"
	"github.com/Work-Fort/GpgAssist/pkg/ui"
)

// Form labels
const (
	labelOperation = "I want to"
	labelArmor     = "with armor"
	labelMinimal   = "with minimal output"
	labelInput     = "from"
	labelOutput    = "to"
	labelRecipient = "the recipient is"
	labelKey       = "the key id is"
	labelExpert    = "trust me, I'm an expert!"
)

// ComposerModel walks the user through picking a GnuPG operation and its
// arguments while showing the resulting command line
type ComposerModel struct {
	width, height int
	form          *huh.Form
	synth         cmdline.Synthesizer

	// Values bound to the form fields
	selected      int
	hasArmor      bool
	isMinimal     bool
	isExpert      bool
	useInputFile  bool
	useOutputFile bool
	inputFile     string
	outputFile    string
	recipient     string
	key           string

	done    bool
	aborted bool
	result  string
}

// NewComposerModel creates a composer that renders with synth. It starts
// from a fresh FormState: nothing selected, stdin and stdout.
func NewComposerModel(synth cmdline.Synthesizer) *ComposerModel {
	s := cmdline.NewFormState()
	return &ComposerModel{
		synth:         synth,
		selected:      s.SelectedIndex,
		useInputFile:  s.UseInputFile,
		useOutputFile: s.UseOutputFile,
	}
}

// descriptor returns the currently selected catalog entry
func (m *ComposerModel) descriptor() (catalog.Descriptor, bool) {
	return catalog.At(m.selected)
}

func (m *ComposerModel) hideUnless(pred func(catalog.Descriptor) bool) func() bool {
	return func() bool {
		d, ok := m.descriptor()
		return !ok || !pred(d)
	}
}

// operationOptions lists the catalog behind a blank entry that keeps the
// selection at -1
func operationOptions() []huh.Option[int] {
	all := catalog.All()
	opts := make([]huh.Option[int], 0, len(all)+1)
	opts = append(opts, huh.NewOption("...", -1))
	for i, d := range all {
		opts = append(opts, huh.NewOption(d.Description, i))
	}
	return opts
}

// Init implements tea.Model
func (m *ComposerModel) Init() tea.Cmd {
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(labelOperation).
				Options(operationOptions()...).
				Value(&m.selected),
		),

		huh.NewGroup(
			huh.NewConfirm().
				Title(labelArmor).
				Description("ASCII armored output").
				Value(&m.hasArmor),
		).WithHideFunc(m.hideUnless(func(d catalog.Descriptor) bool { return d.SupportsArmor })),

		huh.NewGroup(
			huh.NewConfirm().
				Title(labelMinimal).
				Description("Strip all signatures except the most recent self-signature").
				Value(&m.isMinimal),
		).WithHideFunc(m.hideUnless(func(d catalog.Descriptor) bool { return d.SupportsMinimal })),

		huh.NewGroup(
			huh.NewSelect[bool]().
				Title(labelInput).
				Options(
					huh.NewOption("standard input", false),
					huh.NewOption("a file", true),
				).
				Value(&m.useInputFile),
		).WithHideFunc(m.hideUnless(func(d catalog.Descriptor) bool { return d.NeedsInput })),

		huh.NewGroup(
			huh.NewInput().
				Title(labelInput).
				Placeholder("message.txt").
				Value(&m.inputFile),
		).WithHideFunc(func() bool {
			d, ok := m.descriptor()
			return !ok || !d.NeedsInput || !m.useInputFile
		}),

		huh.NewGroup(
			huh.NewSelect[bool]().
				Title(labelOutput).
				Options(
					huh.NewOption("standard output", false),
					huh.NewOption("a file", true),
				).
				Value(&m.useOutputFile),
		).WithHideFunc(m.hideUnless(func(d catalog.Descriptor) bool { return d.NeedsOutput })),

		huh.NewGroup(
			huh.NewInput().
				Title(labelOutput).
				Placeholder("message.asc").
				Value(&m.outputFile),
		).WithHideFunc(func() bool {
			d, ok := m.descriptor()
			return !ok || !d.NeedsOutput || !m.useOutputFile
		}),

		huh.NewGroup(
			huh.NewInput().
				Title(labelRecipient).
				Placeholder("alice@example.com").
				Value(&m.recipient),
		).WithHideFunc(m.hideUnless(func(d catalog.Descriptor) bool { return d.NeedsRecipient })),

		huh.NewGroup(
			huh.NewInput().
				Title(labelKey).
				Placeholder("0x0123456789ABCDEF").
				Value(&m.key),
		).WithHideFunc(m.hideUnless(func(d catalog.Descriptor) bool { return d.NeedsKey })),

		huh.NewGroup(
			huh.NewConfirm().
				Title(labelExpert).
				Value(&m.isExpert),
		).WithHideFunc(m.hideUnless(catalog.Descriptor.HasExpertVariant)),
	).WithShowHelp(false)

	if m.width > 0 {
		m.form.WithWidth(m.formWidth())
	}

	return m.form.Init()
}

// State returns the form values as a FormState
func (m *ComposerModel) State() cmdline.FormState {
	return cmdline.FormState{
		SelectedIndex: m.selected,
		HasArmor:      m.hasArmor,
		IsMinimal:     m.isMinimal,
		IsExpert:      m.isExpert,
		UseInputFile:  m.useInputFile,
		UseOutputFile: m.useOutputFile,
		InputFile:     m.inputFile,
		OutputFile:    m.outputFile,
		Recipient:     m.recipient,
		Key:           m.key,
	}
}

// Preview returns the command line for the current form values
func (m *ComposerModel) Preview() string {
	return m.synth.SynthesizeState(m.State())
}

// Result returns the accepted command line, or "" if the user quit
func (m *ComposerModel) Result() string {
	return m.result
}

// Aborted reports whether the user left the composer without accepting
func (m *ComposerModel) Aborted() bool {
	return m.aborted
}

func (m *ComposerModel) formWidth() int {
	dims := ui.CalculateSplitPaneDimensions(m.width, m.height)
	if dims.SideBySide {
		return dims.PaneRenderedWidth
	}
	return m.width
}

// Update implements tea.Model
func (m *ComposerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.form != nil {
			m.form.WithWidth(m.formWidth())
		}
	case tea.KeyMsg:
		if ui.QuitKeyBindings().Contains(msg) != nil {
			log.Debugf("compose: quit on %q", msg.String())
			m.aborted = true
			return m, tea.Quit
		}
	}

	if m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if !m.done {
			m.done = true
			m.result = m.Preview()
			log.Debugf("compose: completed with %q", m.result)
		}
		return m, tea.Batch(cmd, tea.Quit)
	case huh.StateAborted:
		m.aborted = true
		return m, tea.Quit
	}

	return m, cmd
}

// View implements tea.Model
func (m *ComposerModel) View() string {
	if m.form == nil || m.done || m.aborted {
		return ""
	}

	theme := config.CurrentTheme
	dims := ui.CalculateSplitPaneDimensions(m.width, m.height)

	context := "new"
	if d, ok := m.descriptor(); ok {
		context = strings.ToUpper(d.Description)
	}
	header := theme.RenderHeader(m.width, "COMPOSE", context)

	preview := ui.RenderCommandPreview(m.Preview(), dims.PaneContentWidth, true)

	var body string
	if dims.SideBySide {
		left := lipgloss.NewStyle().Width(dims.PaneRenderedWidth).Render(m.form.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", preview)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, m.form.View(), preview)
	}

	hints := ui.ComposerKeyBindings().Render(theme.SubtleStyle())
	if !dims.SideBySide {
		hints = ui.ComposerKeyBindings().RenderInline(theme.SubtleStyle())
	}
	footer := theme.RenderFooter(m.width, hints)

	content := lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return ui.FillTerminal(content, m.width, m.height)
}
