package subseq

import "fmt"

// MaxPair returns the largest two-digit number d[i]*10 + d[j] with i < j.
//
// It walks right to left keeping the largest digit seen so far as the
// candidate ones digit, so every position is tried as the tens digit
// against the best digit to its right.
//
// Agrees with MaxK(digits, 2).
//
// Complexity: O(n) time, O(1) space.
func MaxPair(digits []uint8) (uint64, error) {
	if err := validateDigits(digits); err != nil {
		return 0, err
	}
	n := len(digits)
	if n < 2 {
		return 0, fmt.Errorf("%w: have %d, want 2", ErrTooFewDigits, n)
	}

	var (
		best   uint64
		suffix = uint64(digits[n-1])
		d, v   uint64
	)
	for i := n - 2; i >= 0; i-- {
		d = uint64(digits[i])
		v = d*10 + suffix
		if v > best {
			best = v
		}
		if d > suffix {
			suffix = d
		}
	}

	return best, nil
}
