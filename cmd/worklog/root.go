// Root command for the worklog CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/worklog/internal/paths"
)

const version = "0.1.0"

// Global flag values.
var (
	flagConfigDir string
	flagFile      string
)

// configLogFile holds the log_file value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configLogFile string

var rootCmd = &cobra.Command{
	Use:   "worklog",
	Short: "Worklog tracks work sessions in a flat append-only log",
	Long: `Worklog appends timestamped start/stop records to a plain text log,
validates the log on every run, and reports the day's working intervals.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Version needs no configuration.
		if cmd.Name() == "version" {
			return nil
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configLogFile = cfg.GetString(cfgKeyLogFile)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagFile, "file", "", "log file path (default: from config or platform data dir)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(showCmd)
}

// resolveLogFile returns the log file path following the precedence chain:
// --file flag > config.yaml log_file > platform default.
func resolveLogFile() (string, error) {
	return paths.ResolveLogFile(flagFile, configLogFile)
}

// resolveConfigDir returns the configuration directory:
// --config-dir flag > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
