package subseq_test

import (
	"testing"

	"github.com/katalvlaran/aoc2025/subseq"
)

// benchmarkSelect runs Select on a sequence of length n with the given k and opts.
func benchmarkSelect(b *testing.B, n, k int, opts ...subseq.Option) {
	digits := make([]uint8, n)
	for i := range digits {
		digits[i] = uint8((i*7 + 3) % 10) // deterministic, non-monotone
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := subseq.Select(digits, k, opts...); err != nil {
			b.Fatalf("Select failed: %v", err)
		}
	}
}

// BenchmarkSelect_FullMatrixBank benchmarks a typical 100-digit line, k=12.
func BenchmarkSelect_FullMatrixBank(b *testing.B) {
	benchmarkSelect(b, 100, 12, subseq.WithMemoryMode(subseq.FullMatrix))
}

// BenchmarkSelect_FullMatrixPositions includes the backtrack.
func BenchmarkSelect_FullMatrixPositions(b *testing.B) {
	benchmarkSelect(b, 100, 12, subseq.WithPositions())
}

// BenchmarkSelect_RollingRowBank benchmarks the single-row variant on the same input.
func BenchmarkSelect_RollingRowBank(b *testing.B) {
	benchmarkSelect(b, 100, 12, subseq.WithMemoryMode(subseq.RollingRow))
}

// BenchmarkSelect_RollingRowLong benchmarks 10k digits at the uint64 limit.
func BenchmarkSelect_RollingRowLong(b *testing.B) {
	benchmarkSelect(b, 10_000, subseq.MaxSelect, subseq.WithMemoryMode(subseq.RollingRow))
}

// BenchmarkMaxPair benchmarks the linear scan on a 100-digit line.
func BenchmarkMaxPair(b *testing.B) {
	digits := make([]uint8, 100)
	for i := range digits {
		digits[i] = uint8((i*7 + 3) % 10)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := subseq.MaxPair(digits); err != nil {
			b.Fatalf("MaxPair failed: %v", err)
		}
	}
}
