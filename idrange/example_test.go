package idrange_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2025/idrange"
)

// ExampleSum contrasts the two predicates on one range.
func ExampleSum() {
	ranges, err := idrange.ParseRanges("95-115, 998-1012")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	twice, _ := idrange.Sum(ranges, idrange.IsDoubled)
	many, _ := idrange.Sum(ranges, idrange.IsRepeated)
	fmt.Printf("twice=%d\nrepeated=%d\n", twice, many)
	// Output:
	// twice=1109
	// repeated=2219
}
