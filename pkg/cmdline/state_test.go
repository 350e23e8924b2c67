// SPDX-License-Identifier: Apache-2.0
package cmdline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormState(t *testing.T) {
	s := NewFormState()
	assert.Equal(t, -1, s.SelectedIndex)
	assert.Equal(t, FormState{SelectedIndex: -1}, s)
}

func TestWith_ReturnsNewValue(t *testing.T) {
	orig := NewFormState()

	next, err := orig.With(FieldRecipient, "alice@example.com")
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", next.Recipient)
	assert.Equal(t, "", orig.Recipient, "receiver must not change")
}

func TestWith_AllFields(t *testing.T) {
	s := NewFormState()
	steps := []struct {
		field Field
		value interface{}
	}{
		{FieldSelectedIndex, 4},
		{FieldHasArmor, true},
		{FieldIsMinimal, true},
		{FieldIsExpert, true},
		{FieldUseInputFile, true},
		{FieldUseOutputFile, true},
		{FieldInputFile, "in"},
		{FieldOutputFile, "out"},
		{FieldRecipient, "r"},
		{FieldKey, "k"},
	}

	var err error
	for _, step := range steps {
		s, err = s.With(step.field, step.value)
		require.NoError(t, err, step.field.String())
	}

	assert.Equal(t, FormState{
		SelectedIndex: 4,
		HasArmor:      true,
		IsMinimal:     true,
		IsExpert:      true,
		UseInputFile:  true,
		UseOutputFile: true,
		InputFile:     "in",
		OutputFile:    "out",
		Recipient:     "r",
		Key:           "k",
	}, s)
}

func TestWith_WrongType(t *testing.T) {
	s := NewFormState()

	tests := []struct {
		field Field
		value interface{}
	}{
		{FieldSelectedIndex, "4"},
		{FieldHasArmor, "yes"},
		{FieldRecipient, 42},
		{FieldKey, nil},
	}

	for _, tt := range tests {
		t.Run(tt.field.String(), func(t *testing.T) {
			got, err := s.With(tt.field, tt.value)
			assert.True(t, errors.Is(err, ErrFieldType), "got %v", err)
			assert.Equal(t, s, got)
		})
	}
}

func TestWith_UnknownField(t *testing.T) {
	_, err := NewFormState().With(Field(99), true)
	assert.True(t, errors.Is(err, ErrUnknownField))
	assert.Equal(t, "Field(99)", Field(99).String())
}
