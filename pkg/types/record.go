package types

import (
	"fmt"
	"strings"
	"time"
)

// TimeLayout is the on-disk timestamp format: local date and time at minute
// precision, separated by a comma.
const TimeLayout = "2006-01-02, 15:04"

// Record is one immutable timestamped event in the log. Ordering between
// records is by timestamp only; the kind never participates.
type Record struct {
	Time time.Time
	Kind Kind
}

// ParseRecord parses one log line of the form
//
//	2006-01-02, 15:04<TAB>kind
//
// It either returns a complete record or fails with an error wrapping
// ErrRecordParse; it never partially succeeds. Surrounding whitespace is
// ignored, matching lines read with and without their trailing newline.
func ParseRecord(line string) (Record, error) {
	fields := strings.Split(strings.TrimSpace(line), "\t")
	if len(fields) != 2 {
		return Record{}, fmt.Errorf("%w: want 2 tab-separated fields, got %d", ErrRecordParse, len(fields))
	}

	ts, err := time.ParseInLocation(TimeLayout, fields[0], time.Local)
	if err != nil {
		return Record{}, fmt.Errorf("%w: bad timestamp %q", ErrRecordParse, fields[0])
	}

	kind, err := ParseKind(fields[1])
	if err != nil {
		return Record{}, fmt.Errorf("%w: bad kind %q", ErrRecordParse, fields[1])
	}

	return Record{Time: ts, Kind: kind}, nil
}

// String serializes the record to its exact on-disk line, without a trailing
// newline. It is the inverse of ParseRecord.
func (r Record) String() string {
	return r.Time.Format(TimeLayout) + "\t" + r.Kind.String()
}

// DateKey projects the record's calendar date onto an ordered integer
// (yyyymmdd). Records on the same day share a key, and keys order the same
// way the dates do, which is what the range search needs.
func (r Record) DateKey() int {
	return DateKey(r.Time)
}

// DateKey returns the yyyymmdd key for the calendar date of t.
func DateKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
