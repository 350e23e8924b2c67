// SPDX-License-Identifier: Apache-2.0
package config

import (
	"strings"
	"testing"
)

func TestConfigRegistry_Keys(t *testing.T) {
	tests := []struct {
		key      string
		typ      string
		defValue interface{}
	}{
		{KeyUseTUI, "bool", true},
		{KeyLogLevel, "enum", "debug"},
		{KeyQuote, "enum", "none"},
		{KeyGnuPGVersion, "string", ""},
	}

	if len(ConfigRegistry) != len(tests) {
		t.Errorf("ConfigRegistry has %d keys, want %d", len(ConfigRegistry), len(tests))
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			def, ok := ConfigRegistry[tt.key]
			if !ok {
				t.Fatalf("ConfigRegistry should contain %q", tt.key)
			}
			if def.Key != tt.key {
				t.Errorf("Key = %q, want %q", def.Key, tt.key)
			}
			if def.Type != tt.typ {
				t.Errorf("Type = %q, want %q", def.Type, tt.typ)
			}
			if def.Default != tt.defValue {
				t.Errorf("Default = %v, want %v", def.Default, tt.defValue)
			}
			if def.Description == "" {
				t.Error("Description should not be empty")
			}
		})
	}
}

func TestGetKeyDefinition(t *testing.T) {
	if def := GetKeyDefinition(KeyQuote); def == nil || def.Key != KeyQuote {
		t.Errorf("GetKeyDefinition(%q) = %v", KeyQuote, def)
	}
	if def := GetKeyDefinition("signing.key.name"); def != nil {
		t.Errorf("GetKeyDefinition for unknown key = %v, want nil", def)
	}
}

func TestValidateKeyScope(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		scope   ConfigScope
		wantErr string
	}{
		{"use-tui in user", KeyUseTUI, ScopeUser, ""},
		{"use-tui in local", KeyUseTUI, ScopeLocal, "cannot be set in local config"},
		{"quote in local", KeyQuote, ScopeLocal, ""},
		{"quote in user", KeyQuote, ScopeUser, ""},
		{"gnupg-version in local", KeyGnuPGVersion, ScopeLocal, ""},
		{"unknown key", "nope", ScopeUser, "unknown configuration key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKeyScope(tt.key, tt.scope)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateKeyScope() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ValidateKeyScope() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateKeyScope_HintMentionsGlobal(t *testing.T) {
	err := ValidateKeyScope(KeyUseTUI, ScopeLocal)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "gpgassist config set --global use-tui") {
		t.Errorf("error should carry a --global hint: %v", err)
	}
}

func TestValidateValue(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   interface{}
		wantErr bool
	}{
		{"bool true", KeyUseTUI, true, false},
		{"bool as string", KeyUseTUI, "true", true},
		{"log level info", KeyLogLevel, "info", false},
		{"log level bogus", KeyLogLevel, "verbose", true},
		{"log level not string", KeyLogLevel, 3, true},
		{"quote shell", KeyQuote, "shell", false},
		{"quote none", KeyQuote, "none", false},
		{"quote bogus", KeyQuote, "double", true},
		{"version empty", KeyGnuPGVersion, "", false},
		{"version latest", KeyGnuPGVersion, "latest", false},
		{"version full", KeyGnuPGVersion, "2.0.22", false},
		{"version short", KeyGnuPGVersion, "2.1", false},
		{"version from yaml float", KeyGnuPGVersion, 2.1, false},
		{"version from yaml int", KeyGnuPGVersion, 2, false},
		{"version garbage", KeyGnuPGVersion, "two", true},
		{"version bool", KeyGnuPGVersion, true, true},
		{"unknown key", "nope", "x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateValue(tt.key, tt.value, ScopeUser)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateValue(%q, %v) error = %v, wantErr %v", tt.key, tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		input string
		want  interface{}
	}{
		{"bool key yes", KeyUseTUI, "yes", true},
		{"bool key off", KeyUseTUI, "off", false},
		{"string key keeps number text", KeyGnuPGVersion, "2.1", "2.1"},
		{"enum key keeps text", KeyQuote, "shell", "shell"},
		{"unknown key int", "nope", "42", 42},
		{"unknown key float", "nope", "1.5", 1.5},
		{"unknown key text", "nope", "hello", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseValue(GetKeyDefinition(tt.key), tt.input)
			if got != tt.want {
				t.Errorf("parseValue(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestKeyToEnvVar(t *testing.T) {
	tests := map[string]string{
		KeyUseTUI:       "GPGASSIST_USE_TUI",
		KeyLogLevel:     "GPGASSIST_LOG_LEVEL",
		KeyQuote:        "GPGASSIST_SYNTH_QUOTE",
		KeyGnuPGVersion: "GPGASSIST_SYNTH_GNUPG_VERSION",
	}
	for key, want := range tests {
		if got := keyToEnvVar(key); got != want {
			t.Errorf("keyToEnvVar(%q) = %q, want %q", key, got, want)
		}
	}
}
