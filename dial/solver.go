package dial

// Solver answers both parts of the dial puzzle with the default dial.
type Solver struct {
	Options []Option
}

// Part1 counts rotations that end on 0.
func (s Solver) Part1(input string) (uint64, error) {
	rots, err := ParseRotations(input)
	if err != nil {
		return 0, err
	}
	n, err := CountLandings(rots, s.Options...)
	if err != nil {
		return 0, err
	}

	return uint64(n), nil
}

// Part2 counts every click that points at 0.
func (s Solver) Part2(input string) (uint64, error) {
	rots, err := ParseRotations(input)
	if err != nil {
		return 0, err
	}
	n, err := CountClicks(rots, s.Options...)
	if err != nil {
		return 0, err
	}

	return uint64(n), nil
}
