// SPDX-License-Identifier: Apache-2.0
package cmdline

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownField is returned by With for a field outside the Field enum
	ErrUnknownField = errors.New("unknown form field")
	// ErrFieldType is returned by With when the value has the wrong type for the field
	ErrFieldType = errors.New("wrong value type for form field")
)

// Field names one editable FormState field
type Field int

const (
	FieldSelectedIndex Field = iota
	FieldHasArmor
	FieldIsMinimal
	FieldIsExpert
	FieldUseInputFile
	FieldUseOutputFile
	FieldInputFile
	FieldOutputFile
	FieldRecipient
	FieldKey
)

var fieldNames = map[Field]string{
	FieldSelectedIndex: "selectedIndex",
	FieldHasArmor:      "hasArmor",
	FieldIsMinimal:     "isMinimal",
	FieldIsExpert:      "isExpert",
	FieldUseInputFile:  "useInputFile",
	FieldUseOutputFile: "useOutputFile",
	FieldInputFile:     "inputFile",
	FieldOutputFile:    "outputFile",
	FieldRecipient:     "recipient",
	FieldKey:           "key",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// FormState is the current set of field values edited by the UI.
// It is passed by value; updates go through With.
type FormState struct {
	SelectedIndex int // -1 = no selection

	HasArmor  bool
	IsMinimal bool
	IsExpert  bool

	UseInputFile  bool // false = stdin
	UseOutputFile bool // false = stdout

	InputFile  string
	OutputFile string
	Recipient  string
	Key        string
}

// NewFormState returns the state a fresh form starts with
func NewFormState() FormState {
	return FormState{SelectedIndex: -1}
}

// With returns a copy of s with field set to value. s is not modified.
func (s FormState) With(field Field, value interface{}) (FormState, error) {
	switch field {
	case FieldSelectedIndex:
		v, ok := value.(int)
		if !ok {
			return s, typeError(field, "int", value)
		}
		s.SelectedIndex = v

	case FieldHasArmor, FieldIsMinimal, FieldIsExpert, FieldUseInputFile, FieldUseOutputFile:
		v, ok := value.(bool)
		if !ok {
			return s, typeError(field, "bool", value)
		}
		switch field {
		case FieldHasArmor:
			s.HasArmor = v
		case FieldIsMinimal:
			s.IsMinimal = v
		case FieldIsExpert:
			s.IsExpert = v
		case FieldUseInputFile:
			s.UseInputFile = v
		case FieldUseOutputFile:
			s.UseOutputFile = v
		}

	case FieldInputFile, FieldOutputFile, FieldRecipient, FieldKey:
		v, ok := value.(string)
		if !ok {
			return s, typeError(field, "string", value)
		}
		switch field {
		case FieldInputFile:
			s.InputFile = v
		case FieldOutputFile:
			s.OutputFile = v
		case FieldRecipient:
			s.Recipient = v
		case FieldKey:
			s.Key = v
		}

	default:
		return s, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	return s, nil
}

func typeError(field Field, want string, got interface{}) error {
	return fmt.Errorf("%w: %s wants %s, got %T", ErrFieldType, field, want, got)
}
