package harness

import (
	"errors"
	"fmt"
	"time"
)

// FirstDay and LastDay bound the day numbers a Registry accepts.
const (
	FirstDay = 1
	LastDay  = 25
)

// Sentinel errors.
var (
	// ErrBadDay indicates a day outside [FirstDay, LastDay].
	ErrBadDay = errors.New("harness: day out of range")

	// ErrDuplicateDay indicates a second Register for the same day.
	ErrDuplicateDay = errors.New("harness: day already registered")

	// ErrUnknownDay indicates a day with no registered Solver.
	ErrUnknownDay = errors.New("harness: no solver for day")

	// ErrNilSolver indicates Register was given a nil Solver.
	ErrNilSolver = errors.New("harness: solver is nil")

	// ErrBadPart indicates a part other than Part1 or Part2.
	ErrBadPart = errors.New("harness: part must be 1 or 2")
)

// Solver answers the two parts of one day's puzzle from its raw input.
type Solver interface {
	Part1(input string) (uint64, error)
	Part2(input string) (uint64, error)
}

// Part selects one half of a puzzle.
type Part int

const (
	Part1 Part = 1
	Part2 Part = 2
)

// BothParts is the default selection.
var BothParts = []Part{Part1, Part2}

// String returns "part 1" or "part 2".
func (p Part) String() string {
	return fmt.Sprintf("part %d", int(p))
}

// Valid reports whether p is Part1 or Part2.
func (p Part) Valid() bool {
	return p == Part1 || p == Part2
}

// Result is the outcome of one part of one day.
type Result struct {
	Day     int
	Part    Part
	Answer  uint64
	Elapsed time.Duration
	Err     error
}

// OK reports whether the part produced an answer.
func (r Result) OK() bool {
	return r.Err == nil
}
