// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// Configuration
	EnvPrefix        = "GPGASSIST" // Environment variable prefix for Viper
	ConfigFileName   = "config"    // Config file name for XDG config dir (without extension)
	LocalConfigFile  = "gpgassist" // Config file name for current directory (without extension)
	ConfigType       = "yaml"      // Config file type
	DefaultConfigExt = ".yaml"     // Default config file extension

	// DebugLogFile is written inside DataDir
	DebugLogFile = "debug.log"
)

// Paths holds all XDG-compliant directory paths
type Paths struct {
	DataDir   string
	ConfigDir string
}

var (
	// GlobalPaths is the global paths instance
	GlobalPaths *Paths
)

func init() {
	GlobalPaths = GetPaths()
}

// GetPaths returns XDG-compliant directory paths
func GetPaths() *Paths {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to get home directory: %v\n", err)
			os.Exit(1)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to get home directory: %v\n", err)
			os.Exit(1)
		}
		configHome = filepath.Join(home, ".config")
	}

	return &Paths{
		DataDir:   filepath.Join(dataHome, "gpgassist"),
		ConfigDir: filepath.Join(configHome, "gpgassist"),
	}
}

// DebugLogPath returns the location of the JSON debug log
func (p *Paths) DebugLogPath() string {
	return filepath.Join(p.DataDir, DebugLogFile)
}

// HasLocalConfig returns true when a gpgassist.yaml exists in the current
// working directory
func HasLocalConfig() bool {
	_, err := os.Stat(filepath.Join(".", LocalConfigFile+DefaultConfigExt))
	return err == nil
}

// InitDirs creates all necessary directories
func InitDirs() error {
	dirs := []string{
		GlobalPaths.ConfigDir,
		GlobalPaths.DataDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
