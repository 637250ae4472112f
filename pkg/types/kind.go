package types

import (
	"fmt"
	"strings"
)

// Kind tags a record as the start or the stop of a work session.
type Kind int

// Record kinds. A well-formed log strictly alternates between them.
const (
	KindStart Kind = iota
	KindStop
)

// kindTokens maps each kind to its on-disk token.
var kindTokens = map[Kind]string{
	KindStart: "start",
	KindStop:  "stop",
}

// kindValues is the inverse of kindTokens.
var kindValues = map[string]Kind{
	"start": KindStart,
	"stop":  KindStop,
}

// kindOther maps each kind to its logical opposite.
var kindOther = map[Kind]Kind{
	KindStart: KindStop,
	KindStop:  KindStart,
}

// Other returns the logical opposite of the kind. The mapping is total and
// involutive: k.Other().Other() == k.
func (k Kind) Other() Kind {
	return kindOther[k]
}

// String returns the lowercase on-disk token for the kind.
func (k Kind) String() string {
	return kindTokens[k]
}

// ParseKind parses a kind token case-insensitively. Unknown tokens fail with
// ErrUnknownKind; there is no default kind.
func ParseKind(s string) (Kind, error) {
	k, ok := kindValues[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// KindNames returns the valid kind tokens in declaration order.
func KindNames() []string {
	return []string{KindStart.String(), KindStop.String()}
}
