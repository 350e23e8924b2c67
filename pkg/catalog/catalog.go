// SPDX-License-Identifier: Apache-2.0
package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownCommand is returned by Find when a query matches no descriptor
var ErrUnknownCommand = errors.New("unknown command")

// Option names, as shown to users and accepted in listings
const (
	OptionArmor     = "armor"
	OptionMinimal   = "minimal"
	OptionOutput    = "output"
	OptionRecipient = "recipient"
	OptionKey       = "key"
	OptionInput     = "input"
	OptionExpert    = "expert"
)

// Descriptor describes one GnuPG operation and which optional fields apply to it
type Descriptor struct {
	Description   string `json:"description" yaml:"description"`
	Command       string `json:"command" yaml:"command"`
	ExpertCommand string `json:"expert_command,omitempty" yaml:"expert_command,omitempty"`

	SupportsArmor   bool `json:"supports_armor" yaml:"supports_armor"`
	SupportsMinimal bool `json:"supports_minimal" yaml:"supports_minimal"`
	NeedsOutput     bool `json:"needs_output" yaml:"needs_output"`
	NeedsRecipient  bool `json:"needs_recipient" yaml:"needs_recipient"`
	NeedsInput      bool `json:"needs_input" yaml:"needs_input"`
	NeedsKey        bool `json:"needs_key" yaml:"needs_key"`
}

// HasExpertVariant reports whether the descriptor has an expert spelling
func (d Descriptor) HasExpertVariant() bool {
	return d.ExpertCommand != ""
}

// Options returns the names of the optional fields that apply, in form order
func (d Descriptor) Options() []string {
	var opts []string
	if d.SupportsArmor {
		opts = append(opts, OptionArmor)
	}
	if d.SupportsMinimal {
		opts = append(opts, OptionMinimal)
	}
	if d.NeedsInput {
		opts = append(opts, OptionInput)
	}
	if d.NeedsOutput {
		opts = append(opts, OptionOutput)
	}
	if d.NeedsRecipient {
		opts = append(opts, OptionRecipient)
	}
	if d.NeedsKey {
		opts = append(opts, OptionKey)
	}
	if d.HasExpertVariant() {
		opts = append(opts, OptionExpert)
	}
	return opts
}

// descriptors is the fixed command table. Position is identity: entries are
// addressed by index, so reordering breaks any stored selection.
var descriptors = [...]Descriptor{
	{Description: "generate a new key", Command: "--generate-key", ExpertCommand: "--expert --full-generate-key"},
	{Description: "edit a key", Command: "--edit-key", ExpertCommand: "--expert --edit-key", NeedsKey: true},
	{Description: "list all keys", Command: "--list-keys", NeedsKey: true},
	{Description: "list all keys with their fingerprints", Command: "--fingerprint", NeedsKey: true},
	{Description: "export a public key", Command: "--export", SupportsArmor: true, SupportsMinimal: true, NeedsOutput: true, NeedsKey: true},
	{Description: "export a private key", Command: "--export-secret-key", SupportsArmor: true, NeedsOutput: true, NeedsKey: true},
	{Description: "import a key", Command: "--import", NeedsInput: true},
	{Description: "delete a public key", Command: "--delete-keys", NeedsKey: true},
	{Description: "delete a private key", Command: "--delete-secret-keys", NeedsKey: true},
	{Description: "sign a key", Command: "--sign-key", ExpertCommand: "--ask-cert-level --sign-key", NeedsKey: true},
	{Description: "sign a message", Command: "--sign", SupportsArmor: true, NeedsOutput: true, NeedsInput: true},
	{Description: "encrypt a message", Command: "--encrypt", SupportsArmor: true, NeedsOutput: true, NeedsRecipient: true, NeedsInput: true},
	{Description: "decrypt a message", Command: "--decrypt", NeedsOutput: true, NeedsInput: true},
	{Description: "verify a message", Command: "--verify", NeedsInput: true},
}

// Len returns the number of catalog entries
func Len() int {
	return len(descriptors)
}

// All returns a copy of the catalog in display order
func All() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors[:])
	return out
}

// At returns the descriptor at index. ok is false for -1 (no selection)
// and for any out-of-range index.
func At(index int) (Descriptor, bool) {
	if index < 0 || index >= len(descriptors) {
		return Descriptor{}, false
	}
	return descriptors[index], true
}

// Find resolves a user-supplied query to a catalog entry.
// Accepted forms: decimal index ("11"), exact description
// ("encrypt a message", case-insensitive) or default command token ("--encrypt").
func Find(query string) (int, Descriptor, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return -1, Descriptor{}, fmt.Errorf("%w: empty query", ErrUnknownCommand)
	}

	if i, err := strconv.Atoi(q); err == nil {
		if d, ok := At(i); ok {
			return i, d, nil
		}
		return -1, Descriptor{}, fmt.Errorf("%w: index %d out of range (0-%d)", ErrUnknownCommand, i, len(descriptors)-1)
	}

	for i, d := range descriptors {
		if strings.EqualFold(d.Description, q) || d.Command == q {
			return i, d, nil
		}
	}

	// Allow the token without leading dashes ("encrypt")
	if !strings.HasPrefix(q, "-") {
		for i, d := range descriptors {
			if d.Command == "--"+q {
				return i, d, nil
			}
		}
	}

	return -1, Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownCommand, query)
}
