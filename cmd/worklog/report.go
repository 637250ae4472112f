// Report command prints a day's intervals without recording anything.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/worklog/internal/report"
)

// dateLayout is the --date flag format.
const dateLayout = "2006-01-02"

var flagDate string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the interval table for a day",
	Long: `Report prints the start/end interval table for the given date without
modifying the log. With no --date it reports today.

Example:
  worklog report
  worklog report --date 2024-01-02`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&flagDate, "date", "", "date to report, YYYY-MM-DD (default: today)")
}

func runReport(cmd *cobra.Command, args []string) error {
	day := time.Now()
	if flagDate != "" {
		parsed, err := time.ParseInLocation(dateLayout, flagDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q: want YYYY-MM-DD", flagDate)
		}
		day = parsed
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	report.New(os.Stdout).Print(store.RecordsForDate(day))
	return nil
}
