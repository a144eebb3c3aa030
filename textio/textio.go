package textio

import "strings"

// Lines splits input on '\n'. A trailing '\r' is removed from every line and
// a single empty line produced by a final newline is dropped, so "a\nb\n"
// and "a\r\nb" both yield [a b]. Empty input yields no lines.
func Lines(input string) []string {
	if input == "" {
		return nil
	}
	lines := strings.Split(input, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return lines
}

// Tokens splits input around runs of whitespace.
func Tokens(input string) []string {
	return strings.Fields(input)
}

// Segments splits input on sep, trims surrounding whitespace from each part
// and drops parts that are empty after trimming.
func Segments(input, sep string) []string {
	parts := strings.Split(input, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}

	return out
}

// Digits returns the decimal digits of line in order. Every other byte is
// discarded rather than treated as a separator: "a1-2 3" yields [1 2 3].
func Digits(line string) []uint8 {
	out := make([]uint8, 0, len(line))
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c < '0' || c > '9' {
			continue
		}
		out = append(out, c-'0')
	}

	return out
}
