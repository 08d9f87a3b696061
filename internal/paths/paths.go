// Package paths resolves configuration and data directory locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appDirName is the per-user directory name under the platform config and
// data roots.
const appDirName = "truckcare"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "TRUCKCARE_CONFIG_DIR"
	EnvDataDir   = "TRUCKCARE_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/truckcare (fallback ~/.config/truckcare)
// macOS:   ~/Library/Application Support/truckcare
// Windows: %APPDATA%/truckcare
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appDirName), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
}

// DefaultDataDir returns the platform-specific default data directory, the
// fixed user-directory location of the database file.
//
// Linux:   $XDG_DATA_HOME/truckcare (fallback ~/.local/share/truckcare)
// macOS:   ~/Library/Application Support/truckcare
// Windows: %APPDATA%/truckcare
func DefaultDataDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", appDirName), nil
	default:
		// macOS and Windows: same as config dir.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > TRUCKCARE_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > config.yaml data_dir > TRUCKCARE_DATA_DIR env > DefaultDataDir().
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultDataDir()
}
