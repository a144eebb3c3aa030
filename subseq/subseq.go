package subseq

import "fmt"

// Select — bounded subsequence maximizer
//
// Description:
//
//	Select chooses exactly k of the n digits, keeping their order, so that
//	the resulting k-digit number is as large as possible.
//
// Algorithm Outline (FullMatrix):
//  1. Allocate a flat (n+1)x(k+1) table D, cell (i,j) at i*(k+1)+j.
//     D[i][j] is the best value built from exactly j of the first i digits.
//  2. D starts at zero. D[i][0] = 0 for all i; cells with j > i are
//     unreachable and are never read as predecessors.
//  3. For i = 0..n-1 and every reachable j = 0..min(k,i):
//     skip:   D[i+1][j]   = max(D[i+1][j],   D[i][j])
//     select: D[i+1][j+1] = max(D[i+1][j+1], D[i][j]*10 + d[i])   (j < k)
//  4. value = D[n][k].
//  5. If positions are wanted, walk back from (n,k): a cell equal to the
//     cell above it was reached by skipping, otherwise digit i-1 was taken.
//
// RollingRow keeps one row R[0..k]. Skipping leaves R[j] untouched, so only
// the select update remains; j runs downward so R[j] is still the previous
// row's value when R[j+1] reads it.
//
// Complexity:
//
//	Time   = O(n·k)
//	Memory = O(n·k) (FullMatrix) or O(k) (RollingRow)
//
// Errors:
//   - ErrBadSelection        — k < 0.
//   - ErrSelectionTooLarge   — k > MaxSelect.
//   - ErrPositionsNeedMatrix — WithPositions together with RollingRow.
//   - ErrDigitRange          — an element is > 9.
//   - ErrTooFewDigits        — len(digits) < k.
func Select(digits []uint8, k int, opts ...Option) (Selection, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if k < 0 {
		return Selection{}, ErrBadSelection
	}
	if k > MaxSelect {
		return Selection{}, fmt.Errorf("%w: k=%d, max %d", ErrSelectionTooLarge, k, MaxSelect)
	}
	if cfg.WantPositions && cfg.MemoryMode != FullMatrix {
		return Selection{}, ErrPositionsNeedMatrix
	}
	if err := validateDigits(digits); err != nil {
		return Selection{}, err
	}
	n := len(digits)
	if n < k {
		return Selection{}, fmt.Errorf("%w: have %d, want %d", ErrTooFewDigits, n, k)
	}

	// Selecting nothing is the empty number.
	if k == 0 {
		var sel Selection
		if cfg.WantPositions {
			sel.Positions = []int{}
		}
		return sel, nil
	}

	if cfg.MemoryMode == RollingRow {
		return Selection{Value: selectRolling(digits, k)}, nil
	}

	table := fillTable(digits, k)
	width := k + 1
	sel := Selection{Value: table[n*width+k]}
	if cfg.WantPositions {
		sel.Positions = backtrack(table, n, k)
	}

	return sel, nil
}

// MaxK returns the largest number formed by exactly k digits of digits in
// their original order. See Select for errors.
//
// Example:
//
//	v, _ := MaxK([]uint8{1, 2, 3}, 2) // 23
func MaxK(digits []uint8, k int) (uint64, error) {
	sel, err := Select(digits, k, WithMemoryMode(RollingRow))
	if err != nil {
		return 0, err
	}

	return sel.Value, nil
}

// fillTable builds the full DP arena. Row i occupies [i*(k+1), (i+1)*(k+1)).
func fillTable(digits []uint8, k int) []uint64 {
	n, width := len(digits), k+1
	table := make([]uint64, (n+1)*width)

	var (
		i, j      int
		d, v      uint64
		cur, next []uint64
	)
	for i = 0; i < n; i++ {
		d = uint64(digits[i])
		cur = table[i*width : (i+1)*width]
		next = table[(i+1)*width : (i+2)*width]
		for j = 0; j <= min(k, i); j++ {
			if cur[j] > next[j] {
				next[j] = cur[j]
			}
			if j < k {
				v = cur[j]*10 + d
				if v > next[j+1] {
					next[j+1] = v
				}
			}
		}
	}

	return table
}

// backtrack recovers one maximizing set of positions from a filled table.
// Skips are preferred on ties, which pushes the choice toward earlier
// positions: [1 9 9] with k=1 yields [1].
func backtrack(table []uint64, n, k int) []int {
	width := k + 1
	positions := make([]int, k)
	i, j := n, k
	for j > 0 {
		// Row i-1 can only carry j forward if it already held j digits.
		if i-1 >= j && table[(i-1)*width+j] == table[i*width+j] {
			i--
			continue
		}
		positions[j-1] = i - 1
		i--
		j--
	}

	return positions
}

// selectRolling computes the value with a single row of k+1 cells.
func selectRolling(digits []uint8, k int) uint64 {
	row := make([]uint64, k+1)

	var (
		i, j int
		v    uint64
	)
	for i = range digits {
		d := uint64(digits[i])
		for j = min(k-1, i); j >= 0; j-- {
			v = row[j]*10 + d
			if v > row[j+1] {
				row[j+1] = v
			}
		}
	}

	return row[k]
}

// validateDigits rejects any element above 9.
func validateDigits(digits []uint8) error {
	for i, d := range digits {
		if d > 9 {
			return fmt.Errorf("%w: digits[%d]=%d", ErrDigitRange, i, d)
		}
	}

	return nil
}
