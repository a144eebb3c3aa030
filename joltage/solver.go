package joltage

// Solver answers both parts of the battery bank puzzle.
type Solver struct {
	// Workers is passed to Total; 0 runs sequentially.
	Workers int
}

// Part1 totals the best two-battery joltage per bank.
func (s Solver) Part1(input string) (uint64, error) {
	return s.total(input, PairBatteries)
}

// Part2 totals the best twelve-battery joltage per bank.
func (s Solver) Part2(input string) (uint64, error) {
	return s.total(input, BankBatteries)
}

func (s Solver) total(input string, k int) (uint64, error) {
	if s.Workers < 0 {
		return 0, ErrBadWorkers
	}

	return Total(ParseBanks(input), k, WithWorkers(s.Workers))
}
