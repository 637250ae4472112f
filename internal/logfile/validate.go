// Load-time invariant checks over the persisted records. The checks are
// pure functions run in a fixed order; the first violation fails the open.
package logfile

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/worklog/pkg/types"
)

// validator inspects the records and returns a diagnostic for the first
// violation it finds, or nil when the records pass.
type validator func(records []types.Record, now time.Time) *Diagnostic

// validate runs the invariant checks in order: sortedness, then
// no-future-timestamps, then start/stop alternation. The first violation
// short-circuits into a *FormatError.
func validate(records []types.Record, now time.Time, path string) error {
	checks := []validator{checkSorted, checkInPast, checkAlternation}
	for _, check := range checks {
		if d := check(records, now); d != nil {
			return &FormatError{Path: path, Diags: []Diagnostic{*d}}
		}
	}
	return nil
}

// checkSorted requires non-decreasing timestamps across the file.
func checkSorted(records []types.Record, _ time.Time) *Diagnostic {
	for i := 1; i < len(records); i++ {
		if records[i-1].Time.After(records[i].Time) {
			return &Diagnostic{
				Line: i + 1,
				Msg:  fmt.Sprintf("records are not ordered oldest to newest, see records %d and %d", i, i+1),
			}
		}
	}
	return nil
}

// checkInPast requires the newest record to not be after the current time.
func checkInPast(records []types.Record, now time.Time) *Diagnostic {
	if len(records) == 0 {
		return nil
	}
	if records[len(records)-1].Time.After(now) {
		return &Diagnostic{
			Line: len(records),
			Msg:  "records reference the future",
		}
	}
	return nil
}

// checkAlternation requires the first record to be a start and adjacent
// records to strictly alternate between a kind and its opposite.
func checkAlternation(records []types.Record, _ time.Time) *Diagnostic {
	if len(records) == 0 {
		return nil
	}
	if records[0].Kind != types.KindStart {
		return &Diagnostic{
			Line: 1,
			Msg:  "the first record must be a start",
		}
	}
	for i := 1; i < len(records); i++ {
		if records[i-1].Kind != records[i].Kind.Other() {
			return &Diagnostic{
				Line: i + 1,
				Msg:  fmt.Sprintf("lines %d and %d have the same kind of record", i, i+1),
			}
		}
	}
	return nil
}
