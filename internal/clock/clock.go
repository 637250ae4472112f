// Package clock abstracts wall-clock time so the record store and the day
// report stay deterministic in tests.
package clock

import "time"

// Clock supplies the current local time.
type Clock interface {
	Now() time.Time
}

// System reads the real wall clock. Times stay in the local zone because the
// log format carries naive local timestamps.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant. Intended for tests.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}
