// Error types returned by the record store. Each wraps a sentinel from
// pkg/types so callers can match with errors.Is while still receiving the
// per-line diagnostics.
package logfile

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/worklog/pkg/types"
)

// Diagnostic points at one offending line in the log file.
type Diagnostic struct {
	Line int    // 1-based line number
	Raw  string // offending line as read, empty for validation diagnostics
	Msg  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[line %d] %s", d.Line, d.Msg)
}

// FormatError reports that a log file is malformed or violates a store
// invariant. Parse failures carry one diagnostic per bad line; validation
// failures carry exactly one.
type FormatError struct {
	Path  string
	Diags []Diagnostic
}

func (e *FormatError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Path, types.ErrFileFormat)
	for _, d := range e.Diags {
		b.WriteString("\n")
		b.WriteString(d.String())
	}
	return b.String()
}

func (e *FormatError) Unwrap() error {
	return types.ErrFileFormat
}

// KindError reports an added record that does not alternate correctly from
// the last known record.
type KindError struct {
	Expected types.Kind
	Got      types.Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("expected kind %q but got kind %q", e.Expected, e.Got)
}

func (e *KindError) Unwrap() error {
	return types.ErrInvalidKind
}
