// SPDX-License-Identifier: Apache-2.0
package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_HasFourteenEntries(t *testing.T) {
	assert.Equal(t, 14, Len())
	assert.Len(t, All(), 14)
}

func TestCatalog_OrderIsStable(t *testing.T) {
	want := []string{
		"--generate-key",
		"--edit-key",
		"--list-keys",
		"--fingerprint",
		"--export",
		"--export-secret-key",
		"--import",
		"--delete-keys",
		"--delete-secret-keys",
		"--sign-key",
		"--sign",
		"--encrypt",
		"--decrypt",
		"--verify",
	}

	all := All()
	require.Len(t, all, len(want))
	for i, cmd := range want {
		assert.Equal(t, cmd, all[i].Command, "index %d", i)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0].Command = "--tampered"

	d, ok := At(0)
	require.True(t, ok)
	assert.Equal(t, "--generate-key", d.Command)
}

func TestAt(t *testing.T) {
	tests := []struct {
		name   string
		index  int
		wantOK bool
	}{
		{"no selection", -1, false},
		{"first", 0, true},
		{"last", 13, true},
		{"past end", 14, false},
		{"far negative", -42, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := At(tt.index)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestHasExpertVariant(t *testing.T) {
	expert := map[int]string{
		0: "--expert --full-generate-key",
		1: "--expert --edit-key",
		9: "--ask-cert-level --sign-key",
	}

	for i, d := range All() {
		want, has := expert[i]
		assert.Equal(t, has, d.HasExpertVariant(), "index %d (%s)", i, d.Description)
		if has {
			assert.Equal(t, want, d.ExpertCommand)
		}
	}
}

func TestDescriptor_Options(t *testing.T) {
	d, ok := At(11)
	require.True(t, ok)
	assert.Equal(t, []string{OptionArmor, OptionInput, OptionOutput, OptionRecipient}, d.Options())

	d, _ = At(4)
	assert.Equal(t, []string{OptionArmor, OptionMinimal, OptionOutput, OptionKey}, d.Options())

	d, _ = At(0)
	assert.Equal(t, []string{OptionExpert}, d.Options())
}

func TestFind(t *testing.T) {
	tests := []struct {
		query     string
		wantIndex int
	}{
		{"11", 11},
		{"0", 0},
		{"encrypt a message", 11},
		{"Encrypt A Message", 11},
		{"--encrypt", 11},
		{"encrypt", 11},
		{"--export-secret-key", 5},
		{"  verify a message  ", 13},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			i, d, err := Find(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIndex, i)

			want, _ := At(tt.wantIndex)
			assert.Equal(t, want, d)
		})
	}
}

func TestFind_Unknown(t *testing.T) {
	for _, q := range []string{"", "14", "-1", "--frobnicate", "make coffee"} {
		t.Run(q, func(t *testing.T) {
			i, _, err := Find(q)
			assert.Equal(t, -1, i)
			assert.True(t, errors.Is(err, ErrUnknownCommand), "got %v", err)
		})
	}
}
