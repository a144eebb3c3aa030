package idrange

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2025/textio"
)

// pow10 holds 10^0 … 10^19, every power that fits in a uint64.
var pow10 = func() [20]uint64 {
	var p [20]uint64
	p[0] = 1
	for i := 1; i < len(p); i++ {
		p[i] = p[i-1] * 10
	}
	return p
}()

// digitCount returns the number of decimal digits of n (1 for 0).
func digitCount(n uint64) int {
	c := 1
	for c < len(pow10) && n >= pow10[c] {
		c++
	}
	return c
}

// repunit returns 1 + 10^p + … + 10^(p(r-1)), the multiplier that repeats a
// p-digit block r times. Callers keep p·r ≤ 20, which always fits.
func repunit(p, r int) uint64 {
	var m uint64
	for i := 0; i < r; i++ {
		m = m*pow10[p] + 1
	}
	return m
}

// repeats reports whether n consists of its own leading L/r digits repeated
// r times, L being the digit count of n.
func repeats(n uint64, length, r int) bool {
	if length%r != 0 {
		return false
	}
	return n%repunit(length/r, r) == 0
}

// IsDoubled reports whether n is some digit pattern written exactly twice.
func IsDoubled(n uint64) bool {
	return repeats(n, digitCount(n), 2)
}

// IsRepeated reports whether n is some digit pattern written two or more times.
func IsRepeated(n uint64) bool {
	length := digitCount(n)
	for r := 2; r <= length; r++ {
		if repeats(n, length, r) {
			return true
		}
	}
	return false
}

// Sum adds every ID in ranges for which match returns true. IDs that appear
// in several ranges are counted once per range.
//
// Complexity: O(total IDs · cost(match)).
func Sum(ranges []Range, match Predicate) (uint64, error) {
	var sum, carry uint64
	for _, r := range ranges {
		for n := r.First; ; n++ {
			if match(n) {
				sum, carry = bits.Add64(sum, n, 0)
				if carry != 0 {
					return 0, fmt.Errorf("%w: in range %s", ErrOverflow, r)
				}
			}
			if n == r.Last {
				break
			}
		}
	}

	return sum, nil
}

// ParseRange parses "first-last" with optional surrounding whitespace.
func ParseRange(seg string) (Range, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(seg), "-")
	if !ok {
		return Range{}, fmt.Errorf("%w: %q", ErrBadRange, seg)
	}
	first, err := strconv.ParseUint(strings.TrimSpace(lo), 10, 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrBadRange, seg, err)
	}
	last, err := strconv.ParseUint(strings.TrimSpace(hi), 10, 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrBadRange, seg, err)
	}
	if first > last {
		return Range{}, fmt.Errorf("%w: %q", ErrInvertedRange, seg)
	}

	return Range{First: first, Last: last}, nil
}

// ParseRanges parses a comma-separated list of ranges. Empty segments, such
// as the one after a trailing comma, are skipped.
func ParseRanges(input string) ([]Range, error) {
	segs := textio.Segments(input, ",")
	out := make([]Range, 0, len(segs))
	for _, seg := range segs {
		r, err := ParseRange(seg)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, nil
}
