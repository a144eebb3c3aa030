package harness

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPattern names input files when Inputs.Pattern is empty.
const DefaultPattern = "day%02d.txt"

// Inputs resolves a day number to the path of its puzzle input.
type Inputs struct {
	// Dir is prepended to relative paths.
	Dir string

	// Pattern is a fmt verb string taking the day number.
	Pattern string

	// Overrides maps a day to an explicit file, used verbatim when absolute
	// and joined with Dir otherwise.
	Overrides map[int]string
}

// Path returns the input file for day.
func (in Inputs) Path(day int) string {
	if p, ok := in.Overrides[day]; ok && p != "" {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(in.Dir, p)
	}
	pattern := in.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}

	return filepath.Join(in.Dir, fmt.Sprintf(pattern, day))
}

// Read loads the input for day.
func (in Inputs) Read(day int) (string, error) {
	path := in.Path(day)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("harness: read input for day %d: %w", day, err)
	}

	return string(data), nil
}
