package subseq_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2025/subseq"
)

// ExampleMaxK picks twelve digits out of fifteen.
//
// Scenario:
//
//	The sequence descends and then repeats 1s, so the best choice keeps the
//	nine leading digits and three of the trailing 1s.
//
// Complexity: O(n·k) time, O(k) memory (MaxK runs in RollingRow mode).
func ExampleMaxK() {
	digits := []uint8{9, 8, 7, 6, 5, 4, 3, 2, 1, 1, 1, 1, 1, 1, 1}

	v, err := subseq.MaxK(digits, 12)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(v)
	// Output:
	// 987654321111
}

// ExampleSelect_positions recovers which digits were taken.
//
// Options:
//   - MemoryMode = FullMatrix (required for positions)
//   - WithPositions
func ExampleSelect_positions() {
	digits := []uint8{3, 1, 4, 1, 5, 9, 2, 6}

	sel, err := subseq.Select(digits, 3,
		subseq.WithMemoryMode(subseq.FullMatrix),
		subseq.WithPositions(),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("value=%d\npositions=%v\n", sel.Value, sel.Positions)
	// Output:
	// value=926
	// positions=[5 6 7]
}

// ExampleMaxPair shows the linear two-digit scan.
func ExampleMaxPair() {
	v, _ := subseq.MaxPair([]uint8{3, 1, 4, 1, 5, 9, 2, 6})
	fmt.Println(v)
	// Output:
	// 96
}

// ExampleMaxK_tooFewDigits shows that short input is reported, not zeroed.
func ExampleMaxK_tooFewDigits() {
	_, err := subseq.MaxK([]uint8{1, 2}, 12)
	fmt.Println(err)
	// Output:
	// subseq: fewer digits than requested selection: have 2, want 12
}
