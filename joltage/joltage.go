package joltage

import (
	"errors"
	"fmt"
	"math/bits"
	"sync"

	"github.com/katalvlaran/aoc2025/subseq"
	"github.com/katalvlaran/aoc2025/textio"
)

// ParseBank extracts the digits of one line.
func ParseBank(line string) Bank {
	return Bank(textio.Digits(line))
}

// ParseBanks returns one Bank per input line, blank lines included.
func ParseBanks(input string) []Bank {
	lines := textio.Lines(input)
	banks := make([]Bank, len(lines))
	for i, l := range lines {
		banks[i] = ParseBank(l)
	}

	return banks
}

// Joltage returns the bank's best k-battery rating. ok is false when the
// bank holds fewer than k batteries; that is a skip, not an error.
func (b Bank) Joltage(k int) (v uint64, ok bool, err error) {
	if len(b) < k {
		return 0, false, nil
	}
	if k == PairBatteries {
		v, err = subseq.MaxPair(b)
	} else {
		v, err = subseq.MaxK(b, k)
	}
	if err != nil {
		return 0, false, err
	}

	return v, true, nil
}

// Total sums Joltage(k) over banks, skipping banks that are too short.
// Empty input yields 0.
//
// Complexity: O(Σ len(bank) · k) time, O(k) extra memory per worker.
func Total(banks []Bank, k int, opts ...Option) (uint64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Workers < 0 {
		return 0, ErrBadWorkers
	}
	if cfg.Workers <= 1 || len(banks) < 2 {
		return totalRange(banks, k, 0)
	}

	return totalParallel(banks, k, cfg.Workers)
}

// totalRange sums a contiguous slice of banks; offset is only for messages.
func totalRange(banks []Bank, k, offset int) (uint64, error) {
	var sum, carry uint64
	for i, b := range banks {
		v, ok, err := b.Joltage(k)
		if err != nil {
			return 0, fmt.Errorf("bank %d: %w", offset+i, err)
		}
		if !ok {
			continue
		}
		if sum, carry = bits.Add64(sum, v, 0); carry != 0 {
			return 0, fmt.Errorf("%w: at bank %d", ErrOverflow, offset+i)
		}
	}

	return sum, nil
}

// totalParallel splits banks into contiguous chunks, one per worker, and
// reduces the partial sums in chunk order.
func totalParallel(banks []Bank, k, workers int) (uint64, error) {
	if workers > len(banks) {
		workers = len(banks)
	}
	chunk := (len(banks) + workers - 1) / workers

	sums := make([]uint64, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= len(banks) {
			break
		}
		hi := min(lo+chunk, len(banks))
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			sums[w], errs[w] = totalRange(banks[lo:hi], k, lo)
		}(w, lo, hi)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return 0, err
	}
	var total, carry uint64
	for w, s := range sums {
		if total, carry = bits.Add64(total, s, 0); carry != 0 {
			return 0, fmt.Errorf("%w: reducing chunk %d", ErrOverflow, w)
		}
	}

	return total, nil
}
