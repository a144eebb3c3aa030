package dial

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/aoc2025/textio"
)

// Dial is a circular dial with a current position. Not safe for concurrent use.
type Dial struct {
	size int
	pos  int
}

// New returns a dial configured by opts.
// Returns ErrBadStart if the start position does not fit the size.
func New(opts ...Option) (*Dial, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Start < 0 || cfg.Start >= cfg.Size {
		return nil, fmt.Errorf("%w: start=%d size=%d", ErrBadStart, cfg.Start, cfg.Size)
	}

	return &Dial{size: cfg.Size, pos: cfg.Start}, nil
}

// Position returns the number the dial currently points at.
func (d *Dial) Position() int {
	return d.pos
}

// Size returns the number of positions on the dial.
func (d *Dial) Size() int {
	return d.size
}

// Turn applies r and returns how many clicks during the turn left the dial
// pointing at 0, the final click included.
//
// Every full revolution passes 0 exactly once. The remaining rem < size
// clicks reach 0 at most once: turning right when p+rem wraps, turning left
// when rem >= p, except from 0 itself whose first hit is a full turn away.
// Only rem is added to or subtracted from the position, so any distance up
// to math.MaxInt is safe.
//
// Complexity: O(1).
func (d *Dial) Turn(r Rotation) int {
	full, rem := r.Distance/d.size, r.Distance%d.size
	hits := full
	switch r.Dir {
	case Right:
		hits += (d.pos + rem) / d.size
		d.pos = (d.pos + rem) % d.size
	default:
		if d.pos != 0 && rem >= d.pos {
			hits++
		}
		d.pos = (d.pos - rem + d.size) % d.size
	}

	return hits
}

// CountLandings applies every rotation to a fresh dial and counts those that
// end on 0.
func CountLandings(rots []Rotation, opts ...Option) (int, error) {
	d, err := New(opts...)
	if err != nil {
		return 0, err
	}
	var count int
	for _, r := range rots {
		d.Turn(r)
		if d.pos == 0 {
			count++
		}
	}

	return count, nil
}

// CountClicks applies every rotation to a fresh dial and counts each click
// that leaves it on 0, whether the rotation stops there or passes through.
// Returns ErrOverflow if the count no longer fits in an int.
func CountClicks(rots []Rotation, opts ...Option) (int, error) {
	d, err := New(opts...)
	if err != nil {
		return 0, err
	}
	var count int
	for i, r := range rots {
		hits := d.Turn(r)
		if count > math.MaxInt-hits {
			return 0, fmt.Errorf("%w: at rotation %d (%s)", ErrOverflow, i, r)
		}
		count += hits
	}

	return count, nil
}

// ParseRotation parses a single token such as "L68" or "R0".
func ParseRotation(tok string) (Rotation, error) {
	if len(tok) < 2 {
		return Rotation{}, fmt.Errorf("%w: %q", ErrBadRotation, tok)
	}
	var r Rotation
	switch tok[0] {
	case 'L':
		r.Dir = Left
	case 'R':
		r.Dir = Right
	default:
		return Rotation{}, fmt.Errorf("%w: %q: direction must be L or R", ErrBadRotation, tok)
	}
	// Reject signs so "L-5" or "R+5" never slip through Atoi.
	for i := 1; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return Rotation{}, fmt.Errorf("%w: %q: distance must be digits", ErrBadRotation, tok)
		}
	}
	n, err := strconv.Atoi(tok[1:])
	if err != nil {
		return Rotation{}, fmt.Errorf("%w: %q: %v", ErrBadRotation, tok, err)
	}
	r.Distance = n

	return r, nil
}

// ParseRotations parses whitespace-separated rotations. Empty input yields
// no rotations.
func ParseRotations(input string) ([]Rotation, error) {
	toks := textio.Tokens(input)
	rots := make([]Rotation, 0, len(toks))
	for i, tok := range toks {
		r, err := ParseRotation(tok)
		if err != nil {
			return nil, fmt.Errorf("rotation %d: %w", i, err)
		}
		rots = append(rots, r)
	}

	return rots, nil
}
