// SPDX-License-Identifier: Apache-2.0
package list

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/Work-Fort/GpgAssist/pkg/catalog"
	"github.com/Work-Fort/GpgAssist/pkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// entry is one catalog row in machine-readable output
type entry struct {
	Index              int `json:"index" yaml:"index"`
	catalog.Descriptor `yaml:",inline"`
}

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the operations gpgassist can build",
		Long: `List every operation in the catalog with its index, gpg option and the
arguments it takes. The index, description or option can be passed to
'gpgassist build' and 'gpgassist show'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeCatalog(cmd.OutOrStdout(), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", FormatTable, "Output format: table, json, yaml")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{FormatTable, FormatJSON, FormatYAML}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func entries() []entry {
	all := catalog.All()
	out := make([]entry, len(all))
	for i, d := range all {
		out[i] = entry{Index: i, Descriptor: d}
	}
	return out
}

// writeCatalog writes the catalog to w in format
func writeCatalog(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case FormatTable:
		_, err := fmt.Fprintln(w, renderTable(entries()))
		return err

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries())

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries()); err != nil {
			return err
		}
		return enc.Close()

	default:
		return fmt.Errorf("unknown format %q (must be table, json or yaml)", format)
	}
}

func renderTable(rows []entry) string {
	theme := config.CurrentTheme

	headerStyle := lipgloss.NewStyle().Foreground(theme.GetSecondaryColor()).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	commandStyle := cellStyle.Foreground(theme.GetPrimaryColor())

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.GetMutedColor())).
		Headers("#", "DESCRIPTION", "COMMAND", "OPTIONS").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 2:
				return commandStyle
			default:
				return cellStyle
			}
		})

	for _, e := range rows {
		command := e.Command
		if e.HasExpertVariant() {
			command += " / " + e.ExpertCommand
		}
		t.Row(strconv.Itoa(e.Index), e.Description, command, strings.Join(e.Options(), ", "))
	}

	return t.Render()
}
