// Package report formats one day's records as a table of work intervals.
// It consumes record slices produced by the store's date queries and never
// touches the log file itself.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/mesh-intelligence/worklog/internal/clock"
	"github.com/mesh-intelligence/worklog/pkg/types"
)

// clockLayout renders interval boundaries as wall-clock times.
const clockLayout = "15:04"

// Reporter writes day reports to Out, reading "now" from Clock when a day
// ends with a still-open session.
type Reporter struct {
	Out   io.Writer
	Clock clock.Clock
}

// New returns a Reporter writing to out on the system clock.
func New(out io.Writer) *Reporter {
	return &Reporter{Out: out, Clock: clock.System{}}
}

// Print writes the interval table for one day's records. A leading stop is
// the tail of an unpaired session and is noted, then skipped. A missing
// final stop is substituted with "now" for display only. The remaining
// records pair up consecutively into [start, stop] intervals, followed by
// the summed total.
func (r *Reporter) Print(records []types.Record) {
	if len(records) == 0 {
		return
	}

	if records[0].Kind != types.KindStart {
		fmt.Fprintf(r.Out, "Ignoring record '%s'\n", records[0])
		records = records[1:]
		if len(records) == 0 {
			return
		}
	}

	if records[len(records)-1].Kind != types.KindStop {
		fmt.Fprintln(r.Out, "Assuming work time ends now")
		records = append(records[:len(records):len(records)],
			types.Record{Time: r.Clock.Now(), Kind: types.KindStop})
	}

	fmt.Fprintln(r.Out, "Start - End")
	var total time.Duration
	for i := 0; i+1 < len(records); i += 2 {
		start, end := records[i], records[i+1]
		fmt.Fprintf(r.Out, "%s - %s\n",
			start.Time.Format(clockLayout), end.Time.Format(clockLayout))
		total += end.Time.Sub(start.Time)
	}
	fmt.Fprintf(r.Out, "Total: %s\n", formatTotal(total))
}

// formatTotal renders a duration as hours and zero-padded minutes, e.g.
// "8h05m". Seconds never appear; record timestamps have minute precision.
func formatTotal(d time.Duration) string {
	minutes := int(d.Minutes())
	return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
}
