package idrange

import (
	"errors"
	"strconv"
)

// Sentinel errors.
var (
	// ErrBadRange indicates a segment that is not "<uint>-<uint>".
	ErrBadRange = errors.New("idrange: malformed range")

	// ErrInvertedRange indicates First > Last.
	ErrInvertedRange = errors.New("idrange: range start exceeds end")

	// ErrOverflow indicates the sum no longer fits in a uint64.
	ErrOverflow = errors.New("idrange: sum overflows uint64")
)

// Range is an inclusive interval of IDs.
type Range struct {
	First, Last uint64
}

// String renders the range in input form, e.g. "11-22".
func (r Range) String() string {
	return strconv.FormatUint(r.First, 10) + "-" + strconv.FormatUint(r.Last, 10)
}

// Predicate reports whether an ID is of interest.
type Predicate func(uint64) bool
