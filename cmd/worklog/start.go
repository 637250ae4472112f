// Start command records the beginning of a work session.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/worklog/pkg/types"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Record the start of a work session",
	Long: `Start appends a start record stamped with the current time and prints
the interval table for today.

The previous record must be a stop (or the log must be empty); starting an
already started session fails and writes nothing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(types.KindStart)
	},
}
