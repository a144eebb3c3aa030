// Package aoc2025 collects small puzzle solvers and the tooling that runs
// them against plain-text inputs.
//
// Solvers, one package per puzzle:
//
//	dial/    — day 1: a 100-position combination dial, counting stops and passes at 0
//	idrange/ — day 2: sums of IDs whose digits are one block repeated
//	joltage/ — day 3: best k-digit number per battery bank, summed
//
// Building blocks:
//
//	subseq/  — bounded-subsequence maximizer (O(n·k) DP, rolling or full table)
//	textio/  — line, token, segment and digit splitting
//
// Tooling:
//
//	harness/ — day registry, input resolution, timed runs, fsnotify re-runs
//	config/  — YAML config with .env and environment overrides
//	report/  — text or Prometheus exposition output
//	cmd/aoc  — the command-line runner
//
// Quick start:
//
//	mkdir inputs && cp day03.txt inputs/
//	go run ./cmd/aoc -day 3
//
// Every solver returns uint64 answers and reports malformed input with a
// wrapped sentinel error, so callers can branch with errors.Is.
package aoc2025
