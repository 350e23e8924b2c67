// SPDX-License-Identifier: Apache-2.0
package cmdline

import (
	"strings"
	"testing"

	"github.com/Work-Fort/GpgAssist/pkg/catalog"
	"github.com/Work-Fort/GpgAssist/pkg/compat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func descriptorAt(t *testing.T, index int) *catalog.Descriptor {
	t.Helper()
	d, ok := catalog.At(index)
	require.True(t, ok, "catalog index %d", index)
	return &d
}

// everything returns a state with every option switched on and filled in
func everything(index int) FormState {
	return FormState{
		SelectedIndex: index,
		HasArmor:      true,
		IsMinimal:     true,
		IsExpert:      true,
		UseInputFile:  true,
		UseOutputFile: true,
		InputFile:     "in.txt",
		OutputFile:    "out.asc",
		Recipient:     "bob@example.com",
		Key:           "0xCAFEBABE",
	}
}

func TestSynthesize_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		index int
		state FormState
		want  string
	}{
		{
			name:  "encrypt with armor, recipient and input file",
			index: 11,
			state: FormState{
				HasArmor:      true,
				UseOutputFile: false,
				Recipient:     "alice@example.com",
				UseInputFile:  true,
				InputFile:     "msg.txt",
			},
			want: "gpg --armor --recipient alice@example.com --encrypt msg.txt",
		},
		{
			name:  "generate key in expert mode",
			index: 0,
			state: FormState{IsExpert: true},
			want:  "gpg --expert --full-generate-key",
		},
		{
			name:  "export public key with everything",
			index: 4,
			state: FormState{
				HasArmor:      true,
				IsMinimal:     true,
				UseOutputFile: true,
				OutputFile:    "pub.asc",
				Key:           "0xDEADBEEF",
			},
			want: "gpg --armor --export-options export-minimal --output pub.asc --export 0xDEADBEEF",
		},
		{
			name:  "decrypt from stdin to stdout",
			index: 12,
			state: FormState{},
			want:  "gpg --decrypt",
		},
		{
			name:  "output file chosen but empty",
			index: 12,
			state: FormState{UseOutputFile: true, UseInputFile: true},
			want:  "gpg --decrypt",
		},
		{
			name:  "file names typed but stdin/stdout selected",
			index: 10,
			state: FormState{InputFile: "msg.txt", OutputFile: "msg.sig"},
			want:  "gpg --sign",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Synthesize(descriptorAt(t, tt.index), tt.state)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSynthesize_NoDescriptor(t *testing.T) {
	assert.Equal(t, "", Synthesize(nil, everything(-1)))
	assert.Nil(t, Tokens(nil, everything(-1)))
}

func TestSynthesizeState_NoSelection(t *testing.T) {
	for _, index := range []int{-1, catalog.Len(), 99, -7} {
		assert.Equal(t, "", SynthesizeState(everything(index)), "index %d", index)
	}
}

func TestSynthesizeState_UsesSelectedIndex(t *testing.T) {
	s := NewFormState()
	s, err := s.With(FieldSelectedIndex, 13)
	require.NoError(t, err)
	s, err = s.With(FieldUseInputFile, true)
	require.NoError(t, err)
	s, err = s.With(FieldInputFile, "msg.txt.sig")
	require.NoError(t, err)

	assert.Equal(t, "gpg --verify msg.txt.sig", SynthesizeState(s))
}

func TestSynthesize_IgnoresUndeclaredFields(t *testing.T) {
	for i, d := range catalog.All() {
		d := d
		got := Tokens(&d, everything(i))

		has := func(tok string) bool {
			for _, g := range got {
				if g == tok {
					return true
				}
			}
			return false
		}

		assert.Equal(t, d.SupportsArmor, has("--armor"), "%s: --armor", d.Description)
		assert.Equal(t, d.SupportsMinimal, has("--export-options export-minimal"), "%s: minimal", d.Description)
		assert.Equal(t, d.NeedsOutput, has("--output"), "%s: --output", d.Description)
		assert.Equal(t, d.NeedsRecipient, has("--recipient"), "%s: --recipient", d.Description)
		assert.Equal(t, d.NeedsKey, has("0xCAFEBABE"), "%s: key", d.Description)
		assert.Equal(t, d.NeedsInput, has("in.txt"), "%s: input", d.Description)
	}
}

func TestSynthesize_TokenOrder(t *testing.T) {
	// encrypt carries armor, output, recipient and input; export carries minimal and key
	got := Tokens(descriptorAt(t, 11), everything(11))
	assert.Equal(t, []string{
		"gpg", "--armor", "--output", "out.asc", "--recipient", "bob@example.com", "--encrypt", "in.txt",
	}, got)

	got = Tokens(descriptorAt(t, 4), everything(4))
	assert.Equal(t, []string{
		"gpg", "--armor", "--export-options export-minimal", "--output", "out.asc", "--export", "0xCAFEBABE",
	}, got)
}

func TestSynthesize_Idempotent(t *testing.T) {
	for i, d := range catalog.All() {
		d := d
		s := everything(i)
		assert.Equal(t, Synthesize(&d, s), Synthesize(&d, s))
	}
}

func TestSynthesize_ExpertSwapsOnlyOperation(t *testing.T) {
	for i, d := range catalog.All() {
		d := d
		s := everything(i)
		s.IsExpert = false
		plain := Tokens(&d, s)
		s.IsExpert = true
		expert := Tokens(&d, s)

		require.Equal(t, len(plain), len(expert), d.Description)
		for j := range plain {
			if plain[j] == d.Command {
				if d.HasExpertVariant() {
					assert.Equal(t, d.ExpertCommand, expert[j], d.Description)
				} else {
					assert.Equal(t, d.Command, expert[j], d.Description)
				}
				continue
			}
			assert.Equal(t, plain[j], expert[j], "%s: token %d", d.Description, j)
		}
	}
}

func TestSynthesize_StartsWithProgram(t *testing.T) {
	for i, d := range catalog.All() {
		d := d
		got := Synthesize(&d, NewFormState())
		assert.True(t, strings.HasPrefix(got, Program+" "), "index %d: %q", i, got)
		assert.Equal(t, Program+" "+d.Command, got)
	}
}

func TestSynthesize_RawConcatenation(t *testing.T) {
	s := FormState{Recipient: "Alice Smith", UseInputFile: true, InputFile: "my file.txt"}
	got := Synthesize(descriptorAt(t, 11), s)
	assert.Equal(t, "gpg --recipient Alice Smith --encrypt my file.txt", got)
}

func TestSynthesizer_ShellQuote(t *testing.T) {
	z := Synthesizer{Quote: QuoteShell}
	s := FormState{Recipient: "Alice Smith", UseInputFile: true, InputFile: "my file.txt", HasArmor: true}
	got := z.Synthesize(descriptorAt(t, 11), s)
	assert.Equal(t, "gpg --armor --recipient 'Alice Smith' --encrypt 'my file.txt'", got)

	// Safe values are left alone
	s = FormState{Recipient: "alice@example.com"}
	assert.Equal(t, "gpg --recipient alice@example.com --encrypt", z.Synthesize(descriptorAt(t, 11), s))
}

func TestSynthesizer_Target(t *testing.T) {
	target, err := compat.ParseTarget("2.0.22")
	require.NoError(t, err)

	z := Synthesizer{Target: target}
	d := descriptorAt(t, 0)
	assert.Equal(t, "gpg --gen-key", z.Synthesize(d, FormState{}))
	assert.Equal(t, "gpg --expert --full-gen-key", z.Synthesize(d, FormState{IsExpert: true}))
	assert.Equal(t, "gpg --decrypt", z.Synthesize(descriptorAt(t, 12), FormState{}))
}

func TestParseQuoteMode(t *testing.T) {
	tests := []struct {
		in      string
		want    QuoteMode
		wantErr bool
	}{
		{"", QuoteNone, false},
		{"none", QuoteNone, false},
		{"Shell", QuoteShell, false},
		{"bash", QuoteNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseQuoteMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) QuoteMode {
	t.Helper()
	m, err := ParseQuoteMode(s)
	require.NoError(t, err)
	return m
}
