// Init command creates the config file and an empty log file.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the configuration and an empty log file",
	Long: `Init writes a default config.yaml into the configuration directory and
creates the log file if it does not exist yet. Existing files are left alone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Config dir and config.yaml were already ensured by PersistentPreRunE.
		path, err := resolveLogFile()
		if err != nil {
			return fmt.Errorf("resolve log file: %w", err)
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("create log file: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close log file: %w", err)
		}

		fmt.Printf("Log file ready at %s\n", path)
		return nil
	},
}
