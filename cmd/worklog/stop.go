// Stop command records the end of a work session.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/worklog/pkg/types"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Record the end of a work session",
	Long: `Stop appends a stop record stamped with the current time and prints
the interval table for today.

The previous record must be a start; stopping an already stopped session
fails and writes nothing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(types.KindStop)
	},
}
