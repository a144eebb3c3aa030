// Package subseq picks k digits out of an ordered digit sequence so that,
// read left to right, they form the largest possible base-10 number.
//
// 🚀 What is a bounded subsequence?
//
//	Given digits d[0..n) and a count k, choose positions p1 < p2 < … < pk
//	and read d[p1] d[p2] … d[pk] as one number. Order is never changed:
//	the chosen digits keep their relative positions.
//
//	  d = [3 1 4 1 5 9 2 6], k = 3  →  926
//
// ✨ Key features:
//   - full-table mode: O(n·k) time & memory, can recover chosen positions
//   - rolling mode: one row of k+1 cells, value only
//   - MaxPair: O(n) suffix-maximum scan for the common k = 2 case
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/aoc2025/subseq"
//
//	v, err := subseq.MaxK(digits, 12)
//
//	sel, err := subseq.Select(digits, 12, subseq.WithPositions())
//	fmt.Println(sel.Value, sel.Positions)
//
// Performance:
//
//   - Time:   O(n·k)
//   - Memory: O(n·k) (FullMatrix) or O(k) (RollingRow)
//
// Values are uint64, so k is capped at MaxSelect (19 digits).
package subseq
