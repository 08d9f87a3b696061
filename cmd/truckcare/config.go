// Config loading for the truckcare CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/truckcare/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDataDir          = "data_dir"
	cfgKeyMaintenanceTypes = "maintenance_types"
	cfgKeyLogLevel         = "log_level"
	cfgKeyInstallID        = "install_id"

	defaultLogLevel = "info"
)

// defaultConfigYAML is the content written to config.yaml on first run. The
// install id identifies this installation in log output.
const defaultConfigYAML = `# Truckcare configuration

# Data directory holding truckcare.db (optional; overridable by --data-dir)
# data_dir:

# Advisory maintenance record types offered by the CLI
maintenance_types:
  - oil_change
  - service
  - other

log_level: info

install_id: %s
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on first
// run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyMaintenanceTypes, types.DefaultMaintenanceTypes)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureDefaultConfigFile creates a default config.yaml, with a freshly
// generated install id, if the file does not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	content := fmt.Sprintf(defaultConfigYAML, uuid.NewString())
	return os.WriteFile(path, []byte(content), 0o644)
}
