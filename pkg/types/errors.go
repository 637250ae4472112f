package types

import "errors"

// Standard errors returned by record parsing and the record store. Callers
// match them with errors.Is; the store wraps them in richer error types that
// carry per-line diagnostics.
var (
	// ErrUnknownKind reports a token that names no record kind.
	ErrUnknownKind = errors.New("unknown record kind")

	// ErrRecordParse reports a log line that does not match the record format.
	ErrRecordParse = errors.New("cannot parse record")

	// ErrFileFormat reports a log file that violates a store invariant.
	ErrFileFormat = errors.New("invalid log file format")

	// ErrInvalidKind reports an added record that breaks start/stop alternation.
	ErrInvalidKind = errors.New("invalid record kind")
)
