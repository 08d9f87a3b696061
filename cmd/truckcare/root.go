// Root command for the truckcare CLI.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/truckcare/internal/logger"
	"github.com/mesh-intelligence/truckcare/internal/paths"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands can
// use them.
var (
	configDataDir    string
	maintenanceTypes []string
	log              *logrus.Entry
)

var rootCmd = &cobra.Command{
	Use:           "truckcare",
	Short:         "Truckcare keeps maintenance records for tractors and trailers",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		maintenanceTypes = cfg.GetStringSlice(cfgKeyMaintenanceTypes)

		base := logger.New(cfg.GetString(cfgKeyLogLevel), "text", os.Stderr)
		log = base.WithField("install_id", cfg.GetString(cfgKeyInstallID))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory holding the database file (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tractorCmd)
	rootCmd.AddCommand(trailerCmd)
	rootCmd.AddCommand(tireCmd)
	rootCmd.AddCommand(maintCmd)
	rootCmd.AddCommand(exportCmd)
}

// resolveConfigDir follows the precedence flag > env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir follows the precedence flag > config.yaml > env > platform default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}
