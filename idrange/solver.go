package idrange

// Solver answers both parts of the ID range puzzle.
type Solver struct{}

// Part1 sums IDs made of a pattern written exactly twice.
func (Solver) Part1(input string) (uint64, error) {
	return solve(input, IsDoubled)
}

// Part2 sums IDs made of a pattern written at least twice.
func (Solver) Part2(input string) (uint64, error) {
	return solve(input, IsRepeated)
}

func solve(input string, match Predicate) (uint64, error) {
	ranges, err := ParseRanges(input)
	if err != nil {
		return 0, err
	}

	return Sum(ranges, match)
}
