// SPDX-License-Identifier: Apache-2.0
package build

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/Work-Fort/GpgAssist/cmd/cmdutil"
	"github.com/Work-Fort/GpgAssist/pkg/catalog"
	"github.com/Work-Fort/GpgAssist/pkg/cmdline"
	"github.com/Work-Fort/GpgAssist/pkg/keyref"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flagOptions maps each build flag to the catalog option it feeds
var flagOptions = map[string]string{
	"armor":          catalog.OptionArmor,
	"minimal":        catalog.OptionMinimal,
	"expert":         catalog.OptionExpert,
	"input":          catalog.OptionInput,
	"output":         catalog.OptionOutput,
	"recipient":      catalog.OptionRecipient,
	"recipient-from": catalog.OptionRecipient,
	"key":            catalog.OptionKey,
	"key-from":       catalog.OptionKey,
}

type buildOptions struct {
	armor         bool
	minimal       bool
	expert        bool
	input         string
	output        string
	recipient     string
	recipientFrom string
	key           string
	keyFrom       string
}

// NewBuildCmd creates the build command
func NewBuildCmd() *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build <command>",
		Short: "Print the gpg command line for an operation",
		Long: `Print the gpg command line for an operation without opening the composer.

<command> is a catalog index, a description ("encrypt a message") or the gpg
option without its dashes ("encrypt"). The dashed form works after "--", as in
'gpgassist build -- --encrypt'. Run 'gpgassist list' to see them all.

Flags that do not apply to the chosen operation are ignored.`,
		Example: `  gpgassist build encrypt --armor --recipient alice@example.com --input msg.txt --output msg.asc
  gpgassist build --expert "generate a new key"
  gpgassist build export --key-from alice.asc --armor`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeCommands,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			synth, err := cmdutil.Synthesizer()
			if err != nil {
				return err
			}

			line, err := buildLine(synth, args[0], opts, cmd.Flags())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.armor, "armor", false, "Create ASCII armored output")
	cmd.Flags().BoolVar(&opts.minimal, "minimal", false, "Export only the minimal key")
	cmd.Flags().BoolVar(&opts.expert, "expert", false, "Use the expert variant of the operation")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Read from this file instead of stdin")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().StringVarP(&opts.recipient, "recipient", "r", "", "Encrypt for this user id")
	cmd.Flags().StringVar(&opts.recipientFrom, "recipient-from", "", "Take the recipient from an exported key file")
	cmd.Flags().StringVarP(&opts.key, "key", "k", "", "Key id, fingerprint or user id to act on")
	cmd.Flags().StringVar(&opts.keyFrom, "key-from", "", "Take the key id from an exported key file")

	cmd.MarkFlagsMutuallyExclusive("recipient", "recipient-from")
	cmd.MarkFlagsMutuallyExclusive("key", "key-from")

	return cmd
}

// buildLine resolves query and synthesizes the command line for the flags set on flags
func buildLine(synth cmdline.Synthesizer, query string, opts *buildOptions, flags *pflag.FlagSet) (string, error) {
	index, d, err := catalog.Find(query)
	if err != nil {
		return "", fmt.Errorf("%w (see 'gpgassist list')", err)
	}

	state, err := buildState(index, d, opts, flags)
	if err != nil {
		return "", err
	}

	return synth.Synthesize(&d, state), nil
}

// buildState turns the changed flags into a FormState for d
func buildState(index int, d catalog.Descriptor, opts *buildOptions, flags *pflag.FlagSet) (cmdline.FormState, error) {
	relevant := d.Options()
	flags.Visit(func(f *pflag.Flag) {
		if opt, ok := flagOptions[f.Name]; ok && !slices.Contains(relevant, opt) {
			log.Debugf("build: ignoring --%s, %q takes %s", f.Name, d.Command, strings.Join(relevant, ", "))
		}
	})

	recipient := opts.recipient
	if opts.recipientFrom != "" && slices.Contains(relevant, catalog.OptionRecipient) {
		ref, err := keyref.Load(opts.recipientFrom)
		if err != nil {
			return cmdline.FormState{}, err
		}
		recipient = ref.RecipientHint()
		log.Debugf("build: recipient %s from %s", recipient, opts.recipientFrom)
	}

	key := opts.key
	if opts.keyFrom != "" && slices.Contains(relevant, catalog.OptionKey) {
		ref, err := keyref.Load(opts.keyFrom)
		if err != nil {
			return cmdline.FormState{}, err
		}
		key = ref.Identifier()
		log.Debugf("build: key %s (%s) from %s", key, ref.Fingerprint, opts.keyFrom)
	}

	updates := []struct {
		field cmdline.Field
		value interface{}
	}{
		{cmdline.FieldSelectedIndex, index},
		{cmdline.FieldHasArmor, opts.armor},
		{cmdline.FieldIsMinimal, opts.minimal},
		{cmdline.FieldIsExpert, opts.expert},
		{cmdline.FieldUseInputFile, opts.input != ""},
		{cmdline.FieldInputFile, opts.input},
		{cmdline.FieldUseOutputFile, opts.output != ""},
		{cmdline.FieldOutputFile, opts.output},
		{cmdline.FieldRecipient, recipient},
		{cmdline.FieldKey, key},
	}

	state := cmdline.NewFormState()
	for _, u := range updates {
		next, err := state.With(u.field, u.value)
		if err != nil {
			return cmdline.FormState{}, err
		}
		state = next
	}

	return state, nil
}

// completeCommands offers the catalog's command tokens
func completeCommands(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var out []string
	for _, d := range catalog.All() {
		token := strings.TrimPrefix(d.Command, "--")
		if strings.HasPrefix(token, toComplete) {
			out = append(out, token+"\t"+d.Description)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
