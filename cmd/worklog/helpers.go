// Shared helpers for worklog commands.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/mesh-intelligence/worklog/internal/logfile"
	"github.com/mesh-intelligence/worklog/internal/report"
	"github.com/mesh-intelligence/worklog/pkg/types"
)

// openStore resolves the log file path and opens the record store. A missing
// file gets the short user-facing message; format errors pass through with
// their full diagnostics.
func openStore() (*logfile.Store, error) {
	path, err := resolveLogFile()
	if err != nil {
		return nil, fmt.Errorf("resolve log file: %w", err)
	}

	store, err := logfile.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file '%s' not found (run 'worklog init' to create it)", path)
		}
		return nil, err
	}
	return store, nil
}

// runOperation is the shared start/stop flow: open and validate the store,
// stage the new record, print today's report, and flush. Any error before
// the flush leaves the log file untouched.
func runOperation(kind types.Kind) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	if err := store.AddRecord(kind); err != nil {
		return err
	}

	report.New(os.Stdout).Print(store.RecordsForDate(time.Now()))

	return store.Close()
}
