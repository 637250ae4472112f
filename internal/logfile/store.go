// Package logfile implements the record store over a flat append-only log
// file: parsing, invariant validation, transactional appends, and
// date-range queries.
package logfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mesh-intelligence/worklog/internal/clock"
	"github.com/mesh-intelligence/worklog/pkg/types"
)

// Store owns the ordered record history of one log file. It keeps two
// groups: persisted records loaded and validated from disk, and pending
// records added during this session. Pending records reach the file only
// through Close; every failure path leaves the file untouched.
type Store struct {
	path      string
	clock     clock.Clock
	persisted []types.Record
	pending   []types.Record
}

// Option configures a Store before it loads its file.
type Option func(*Store)

// WithClock replaces the wall clock. Tests use this to pin "now".
func WithClock(c clock.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// Open binds a store to path, loads the existing records, and validates
// them. A missing file fails with an error wrapping fs.ErrNotExist. A file
// with unparseable lines fails with a *FormatError reporting every bad line.
// A parseable file that violates a store invariant (unsorted, future-dated,
// or broken start/stop alternation) fails with a *FormatError reporting the
// first violation.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{path: path, clock: clock.System{}}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	if err := validate(s.persisted, s.clock.Now(), s.path); err != nil {
		return nil, err
	}
	return s, nil
}

// load reads and parses every line of the file. All bad lines are collected
// before failing so the user sees the complete damage in one pass.
func (s *Store) load() error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", s.path, err)
	}
	defer f.Close()

	var diags []Diagnostic
	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		raw := scanner.Text()
		rec, err := types.ParseRecord(raw)
		if err != nil {
			diags = append(diags, Diagnostic{
				Line: line,
				Raw:  raw,
				Msg:  fmt.Sprintf("cannot parse %q", raw),
			})
			continue
		}
		s.persisted = append(s.persisted, rec)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", s.path, err)
	}

	if len(diags) > 0 {
		s.persisted = nil
		return &FormatError{Path: s.path, Diags: diags}
	}
	return nil
}

// AddRecord validates alternation and stages a new record stamped with the
// current time. The expected kind is the opposite of the newest record,
// pending before persisted; an empty store expects a start. On violation the
// pending group is left unchanged and a *KindError is returned.
func (s *Store) AddRecord(kind types.Kind) error {
	expected := types.KindStart
	if newest, ok := s.newest(); ok {
		expected = newest.Kind.Other()
	}
	if kind != expected {
		return &KindError{Expected: expected, Got: kind}
	}

	s.pending = append(s.pending, types.Record{Time: s.clock.Now(), Kind: kind})
	return nil
}

// newest returns the most recent record across both groups.
func (s *Store) newest() (types.Record, bool) {
	if n := len(s.pending); n > 0 {
		return s.pending[n-1], true
	}
	if n := len(s.persisted); n > 0 {
		return s.persisted[n-1], true
	}
	return types.Record{}, false
}

// RecordsForDate returns the records whose calendar date equals that of t,
// or nil when the day is empty. If the day's first match is a stop, the
// session began the previous day and the preceding start is pulled into the
// result so the pair stays intact.
func (s *Store) RecordsForDate(t time.Time) []types.Record {
	all := s.Records()
	lo, hi, ok := Span(all, types.DateKey(t), types.Record.DateKey, true)
	if !ok {
		return nil
	}
	if all[lo].Kind == types.KindStop && lo > 0 {
		lo--
	}
	return all[lo:hi:hi]
}

// Records returns a copy of the combined history, oldest first.
func (s *Store) Records() []types.Record {
	all := make([]types.Record, 0, len(s.persisted)+len(s.pending))
	all = append(all, s.persisted...)
	return append(all, s.pending...)
}

// Pending returns how many records are staged but not yet flushed.
func (s *Store) Pending() int {
	return len(s.pending)
}

// Path returns the log file path the store is bound to.
func (s *Store) Path() string {
	return s.path
}

// Close appends the pending records to the file, one line each, then merges
// them into the persisted group. Callers invoke it only on clean sessions;
// skipping it discards the pending group and leaves the file byte-for-byte
// unchanged. With nothing pending it is a no-op.
func (s *Store) Close() error {
	if len(s.pending) == 0 {
		return nil
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s for append: %w", s.path, err)
	}

	w := bufio.NewWriter(f)
	for _, rec := range s.pending {
		if _, err := w.WriteString(rec.String() + "\n"); err != nil {
			f.Close()
			return fmt.Errorf("writing record: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flushing %s: %w", s.path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("syncing %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", s.path, err)
	}

	s.persisted = append(s.persisted, s.pending...)
	s.pending = nil
	return nil
}

// String renders the full combined history, oldest first, one record per
// line. Used by the show command and for diagnostics.
func (s *Store) String() string {
	var b strings.Builder
	for _, rec := range s.Records() {
		b.WriteString(rec.String())
		b.WriteByte('\n')
	}
	return b.String()
}
