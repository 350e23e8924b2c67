// SPDX-License-Identifier: Apache-2.0
package show

import (
	"fmt"
	"strings"

	"github.com/Work-Fort/GpgAssist/cmd/cmdutil"
	"github.com/Work-Fort/GpgAssist/pkg/catalog"
	"github.com/Work-Fort/GpgAssist/pkg/cmdline"
	"github.com/Work-Fort/GpgAssist/pkg/ui"
	"github.com/spf13/cobra"
)

// optionHelp describes each catalog option and the build flag that sets it
var optionHelp = map[string]string{
	catalog.OptionArmor:     "`--armor` ASCII armored output",
	catalog.OptionMinimal:   "`--minimal` strip all but the latest self-signature",
	catalog.OptionInput:     "`--input FILE` read from a file instead of stdin",
	catalog.OptionOutput:    "`--output FILE` write to a file instead of stdout",
	catalog.OptionRecipient: "`--recipient ID` or `--recipient-from KEYFILE`",
	catalog.OptionKey:       "`--key ID` or `--key-from KEYFILE`",
	catalog.OptionExpert:    "`--expert` use the expert variant",
}

// exampleState fills every field with a placeholder
func exampleState(index int, expert bool) cmdline.FormState {
	return cmdline.FormState{
		SelectedIndex: index,
		HasArmor:      true,
		IsMinimal:     true,
		IsExpert:      expert,
		UseInputFile:  true,
		UseOutputFile: true,
		InputFile:     "INPUT",
		OutputFile:    "OUTPUT",
		Recipient:     "RECIPIENT",
		Key:           "KEY",
	}
}

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show <command>",
		Short: "Describe one operation and the arguments it takes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, d, err := catalog.Find(args[0])
			if err != nil {
				return fmt.Errorf("%w (see 'gpgassist list')", err)
			}

			synth, err := cmdutil.Synthesizer()
			if err != nil {
				return err
			}

			markdown := describe(synth, index, d)
			if raw {
				fmt.Fprint(cmd.OutOrStdout(), markdown)
				return nil
			}

			rendered, err := ui.RenderMarkdownToString(markdown)
			if err != nil {
				// Fallback to plain markdown if glamour fails
				fmt.Fprint(cmd.OutOrStdout(), markdown)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(rendered, " \n"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print markdown without rendering")

	return cmd
}

// describe renders the markdown card for d
func describe(synth cmdline.Synthesizer, index int, d catalog.Descriptor) string {
	var md strings.Builder

	fmt.Fprintf(&md, "# %s\n\n", d.Description)
	fmt.Fprintf(&md, "Catalog index **%d**, gpg option `%s`", index, d.Command)
	if d.HasExpertVariant() {
		fmt.Fprintf(&md, " (expert: `%s`)", d.ExpertCommand)
	}
	md.WriteString(".\n\n")

	md.WriteString("## Arguments\n\n")
	opts := d.Options()
	if len(opts) == 0 {
		md.WriteString("None.\n\n")
	} else {
		for _, opt := range opts {
			fmt.Fprintf(&md, "- %s\n", optionHelp[opt])
		}
		md.WriteString("\n")
	}

	md.WriteString("## Example\n\n```sh\n")
	md.WriteString(synth.SynthesizeState(exampleState(index, false)))
	md.WriteString("\n")
	if d.HasExpertVariant() {
		md.WriteString(synth.SynthesizeState(exampleState(index, true)))
		md.WriteString("\n")
	}
	md.WriteString("```\n")

	return md.String()
}
