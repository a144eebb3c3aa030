package dial

import (
	"errors"
	"strconv"
)

// Defaults used when no option overrides them.
const (
	DefaultSize  = 100
	DefaultStart = 50
)

// Sentinel errors for parsing and construction.
var (
	// ErrBadRotation indicates a token that is not <L|R><non-negative integer>.
	ErrBadRotation = errors.New("dial: malformed rotation")

	// ErrBadStart indicates a start position outside [0, Size).
	ErrBadStart = errors.New("dial: start position out of range")

	// ErrOverflow indicates a click count that no longer fits in an int.
	ErrOverflow = errors.New("dial: click count overflows int")
)

// Direction is the turning direction of a rotation.
type Direction int

const (
	// Left turns toward lower numbers.
	Left Direction = iota
	// Right turns toward higher numbers.
	Right
)

// String returns "L" or "R".
func (d Direction) String() string {
	if d == Left {
		return "L"
	}
	return "R"
}

// Rotation is one instruction: turn Distance clicks in Dir.
type Rotation struct {
	Dir      Direction
	Distance int
}

// String renders the rotation in input form, e.g. "L68".
func (r Rotation) String() string {
	return r.Dir.String() + strconv.Itoa(r.Distance)
}

// Options configures a Dial.
type Options struct {
	Size  int
	Start int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Size=100, Start=50.
func DefaultOptions() Options {
	return Options{Size: DefaultSize, Start: DefaultStart}
}

// WithSize sets the number of positions. Panics if n <= 0.
func WithSize(n int) Option {
	if n <= 0 {
		panic("dial: WithSize(n<=0)")
	}
	return func(o *Options) {
		o.Size = n
	}
}

// WithStart sets the initial position. Range is checked against Size in New.
func WithStart(p int) Option {
	return func(o *Options) {
		o.Start = p
	}
}
