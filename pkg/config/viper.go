// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys bound to root persistent flags
const (
	KeyUseTUI       = "use-tui"
	KeyLogLevel     = "log-level"
	KeyQuote        = "synth.quote"
	KeyGnuPGVersion = "synth.gnupg-version"
)

// flagKeys maps persistent flag names to their config keys
var flagKeys = map[string]string{
	"use-tui":       KeyUseTUI,
	"log-level":     KeyLogLevel,
	"quote":         KeyQuote,
	"gnupg-version": KeyGnuPGVersion,
}

// InitViper initializes Viper configuration with defaults and search paths
// Precedence order: ENV > dir-conf > user-conf > defaults
func InitViper() {
	// Set config type
	viper.SetConfigType(ConfigType)

	// Set defaults (lowest precedence)
	for key, def := range ConfigRegistry {
		viper.SetDefault(key, def.Default)
	}

	// Enable environment variable support (highest precedence)
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
}

// LoadConfig reads config files in precedence order
// Precedence: ENV > ./gpgassist.yaml > ~/.config/gpgassist/config.yaml > defaults
func LoadConfig() error {
	// First, try to read user config from XDG config directory
	viper.SetConfigName(ConfigFileName)
	viper.AddConfigPath(GlobalPaths.ConfigDir)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read user config file: %w", err)
		}
		// Config file not found is OK
	} else if err := validateConfigFile(GlobalPaths.ConfigDir, ScopeUser); err != nil {
		return err
	}

	// Then, try to merge in local directory config (overrides user config)
	viper.SetConfigName(LocalConfigFile)
	viper.AddConfigPath(".")

	if err := viper.MergeInConfig(); err != nil {
		// Ignore if local config doesn't exist
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read local config file: %w", err)
		}
	} else if err := validateConfigFile(".", ScopeLocal); err != nil {
		return err
	}

	return nil
}

// GetUseTUI returns the use-tui configuration value
func GetUseTUI() bool {
	return viper.GetBool(KeyUseTUI)
}

// GetLogLevel returns the log-level configuration value
func GetLogLevel() string {
	return viper.GetString(KeyLogLevel)
}

// GetQuote returns the synth.quote configuration value ("none" or "shell")
func GetQuote() string {
	return viper.GetString(KeyQuote)
}

// GetGnuPGVersion returns the synth.gnupg-version configuration value.
// Empty means the current GnuPG release.
func GetGnuPGVersion() string {
	return viper.GetString(KeyGnuPGVersion)
}

// validateConfigFile validates every key and value in one config file for the given scope
func validateConfigFile(configDir string, scope ConfigScope) error {
	var configPath string
	if scope == ScopeUser {
		configPath = filepath.Join(configDir, ConfigFileName+DefaultConfigExt)
	} else {
		configPath = filepath.Join(".", LocalConfigFile+DefaultConfigExt)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil // No config file, nothing to validate
	}

	// Create a temporary Viper instance to read just this config file
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType(ConfigType)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file for validation: %w", err)
	}

	keys := flattenKeys(v.AllSettings(), "")
	for _, key := range keys {
		def := GetKeyDefinition(key)
		if def == nil {
			// Unknown keys are tolerated in files so newer configs keep working
			log.Debugf("Ignoring unknown key '%s' in %s config: %s", key, getScopeName(scope), configPath)
			continue
		}

		if err := ValidateKeyScope(key, scope); err != nil {
			return fmt.Errorf("invalid key in config file %s: %w", configPath, err)
		}

		if err := ValidateValue(key, v.Get(key), scope); err != nil {
			return fmt.Errorf("invalid value in config file %s: %w", configPath, err)
		}
	}

	return nil
}

// BindFlags binds all relevant cobra flags to Viper
func BindFlags(flags *pflag.FlagSet) error {
	for flagName, key := range flagKeys {
		flag := flags.Lookup(flagName)
		if flag == nil {
			return fmt.Errorf("failed to bind flag %s: not defined", flagName)
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flagName, err)
		}
	}

	return nil
}
