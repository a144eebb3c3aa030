package subseq

import "errors"

// MaxSelect is the largest k whose result always fits in a uint64
// (19 nines < 2^64-1 < 20 nines).
const MaxSelect = 19

// Sentinel errors returned by Select, MaxK and MaxPair.
var (
	// ErrTooFewDigits indicates len(digits) < k. Callers are expected to
	// skip such inputs instead of treating them as a zero result.
	ErrTooFewDigits = errors.New("subseq: fewer digits than requested selection")

	// ErrBadSelection indicates a negative selection count.
	ErrBadSelection = errors.New("subseq: selection count must be non-negative")

	// ErrSelectionTooLarge indicates k > MaxSelect.
	ErrSelectionTooLarge = errors.New("subseq: selection count overflows uint64")

	// ErrDigitRange indicates an element outside [0,9].
	ErrDigitRange = errors.New("subseq: digit out of range [0,9]")

	// ErrPositionsNeedMatrix indicates WithPositions was combined with RollingRow.
	ErrPositionsNeedMatrix = errors.New("subseq: positions require MemoryMode=FullMatrix")
)

// MemoryMode controls how Select stores its DP table.
//
//   - FullMatrix — keep all (n+1)x(k+1) cells in one flat buffer.
//     Allows value + backtracking of the chosen positions.
//     Memory: O(n·k).
//
//   - RollingRow — keep a single row of k+1 cells updated in place with
//     j descending. Value only.
//     Memory: O(k).
type MemoryMode int

const (
	// FullMatrix stores every row and supports position recovery.
	FullMatrix MemoryMode = iota

	// RollingRow keeps one row; positions cannot be recovered.
	RollingRow
)

// String returns the mode name.
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "FullMatrix"
	case RollingRow:
		return "RollingRow"
	default:
		return "MemoryMode(?)"
	}
}

// Options configures Select.
//
// Fields:
//   - MemoryMode    — FullMatrix (default) or RollingRow.
//   - WantPositions — also return the chosen indices. Requires FullMatrix.
type Options struct {
	MemoryMode    MemoryMode
	WantPositions bool
}

// Option mutates Options before the computation starts.
type Option func(*Options)

// DefaultOptions returns FullMatrix without position recovery.
func DefaultOptions() Options {
	return Options{
		MemoryMode:    FullMatrix,
		WantPositions: false,
	}
}

// WithMemoryMode selects the DP storage strategy.
// Panics on an unknown mode to surface programmer error early.
func WithMemoryMode(mode MemoryMode) Option {
	if mode != FullMatrix && mode != RollingRow {
		panic("subseq: WithMemoryMode(unknown)")
	}
	return func(o *Options) {
		o.MemoryMode = mode
	}
}

// WithPositions asks Select to backtrack and return the chosen indices.
func WithPositions() Option {
	return func(o *Options) {
		o.WantPositions = true
	}
}

// Selection is the outcome of Select.
type Selection struct {
	// Value is the concatenated number, most significant digit first.
	Value uint64

	// Positions holds the chosen indices in increasing order, or nil
	// unless WithPositions was requested.
	Positions []int
}
