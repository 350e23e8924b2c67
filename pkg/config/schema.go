// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"
	"regexp"

	"github.com/Work-Fort/GpgAssist/pkg/compat"
)

// ScopeConstraints defines per-scope validation rules for a configuration key
type ScopeConstraints struct {
	Forbidden bool // If true, this key cannot be set in this scope
}

// ConfigKeyDefinition defines metadata for a configuration key
type ConfigKeyDefinition struct {
	Key         string      // Configuration key (dot notation)
	Type        string      // "string", "bool", "enum"
	Default     interface{} // Default value
	Description string      // Help text

	EnumValues []string // Valid values for enum type (if Type="enum")
	Pattern    string   // Regex pattern for validation (if Type="string")

	// Per-scope constraints (optional - if nil, key is allowed in scope)
	UserConstraints  *ScopeConstraints // Constraints when setting in user config
	LocalConstraints *ScopeConstraints // Constraints when setting in local config
}

// ConfigRegistry holds all known configuration keys with per-scope constraints
var ConfigRegistry = map[string]ConfigKeyDefinition{
	KeyUseTUI: {
		Key:         KeyUseTUI,
		Type:        "bool",
		Default:     true,
		Description: "Open the interactive composer when running in a terminal",
		LocalConstraints: &ScopeConstraints{
			Forbidden: true, // Personal preference, not a project setting
		},
	},

	KeyLogLevel: {
		Key:         KeyLogLevel,
		Type:        "enum",
		Default:     "debug",
		Description: "Log verbosity level",
		EnumValues:  []string{"disabled", "debug", "info", "warn", "error"},
	},

	KeyQuote: {
		Key:         KeyQuote,
		Type:        "enum",
		Default:     "none",
		Description: "Quoting of free-text values: none (verbatim) or shell (POSIX shell quoting)",
		EnumValues:  []string{"none", "shell"},
	},

	KeyGnuPGVersion: {
		Key:         KeyGnuPGVersion,
		Type:        "string",
		Default:     "",
		Description: "Target GnuPG release for command spellings (empty or latest = current)",
		Pattern:     `^(|latest|[0-9]+(\.[0-9]+){0,2})$`,
	},
}

// GetKeyDefinition returns the definition for a key, or nil if not found
func GetKeyDefinition(key string) *ConfigKeyDefinition {
	if def, ok := ConfigRegistry[key]; ok {
		return &def
	}
	return nil
}

// constraintsFor returns the scope constraints of def for scope
func constraintsFor(def *ConfigKeyDefinition, scope ConfigScope) *ScopeConstraints {
	if scope == ScopeUser {
		return def.UserConstraints
	}
	return def.LocalConstraints
}

// ValidateKeyScope checks if a key can be set in the given scope
// Returns an error if the key is forbidden in the specified scope
func ValidateKeyScope(key string, scope ConfigScope) error {
	def := GetKeyDefinition(key)
	if def == nil {
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	constraints := constraintsFor(def, scope)
	if constraints == nil || !constraints.Forbidden {
		return nil
	}

	switch scope {
	case ScopeUser:
		return fmt.Errorf(
			"key '%s' cannot be set in user config\n\n"+
				"Hint: Remove --global flag:\n"+
				"  gpgassist config set %s <value>\n\n"+
				"This key must be set in local config: ./gpgassist.yaml",
			key,
			key,
		)
	default:
		return fmt.Errorf(
			"key '%s' cannot be set in local config (personal preference)\n\n"+
				"Hint: Use --global flag:\n"+
				"  gpgassist config set --global %s <value>\n\n"+
				"User config: ~/.config/gpgassist/config.yaml",
			key,
			key,
		)
	}
}

// ValidateValue checks if a value is valid for the given key in the specified scope
func ValidateValue(key string, value interface{}, scope ConfigScope) error {
	def := GetKeyDefinition(key)
	if def == nil {
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	// Type validation
	switch def.Type {
	case "bool":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("key '%s' must be a boolean", key)
		}

	case "string":
		str, ok := stringValue(value)
		if !ok {
			return fmt.Errorf("key '%s' must be a string", key)
		}

		if def.Pattern != "" {
			matched, err := regexp.MatchString(def.Pattern, str)
			if err != nil {
				return fmt.Errorf("pattern validation error: %w", err)
			}
			if !matched {
				return fmt.Errorf(
					"key '%s' value '%s' does not match required format for %s scope",
					key,
					str,
					getScopeName(scope),
				)
			}
		}

	case "enum":
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("key '%s' must be a string", key)
		}

		valid := false
		for _, enumVal := range def.EnumValues {
			if str == enumVal {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf(
				"key '%s' must be one of %v in %s scope (got '%s')",
				key,
				def.EnumValues,
				getScopeName(scope),
				str,
			)
		}
	}

	// Custom validation for specific keys
	if key == KeyGnuPGVersion {
		str, _ := stringValue(value)
		if _, err := compat.ParseTarget(str); err != nil {
			return fmt.Errorf("key '%s': %w", key, err)
		}
	}

	return nil
}

// stringValue accepts strings and the numbers YAML produces for unquoted
// values such as "gnupg-version: 2.1"
func stringValue(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case int, int64, float64:
		return fmt.Sprint(v), true
	default:
		return "", false
	}
}
