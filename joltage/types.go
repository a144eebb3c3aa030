package joltage

import (
	"errors"
	"runtime"
)

// Selection sizes used by the two puzzle parts.
const (
	PairBatteries = 2
	BankBatteries = 12
)

// Sentinel errors returned by Total and Solver.
var (
	// ErrBadWorkers indicates a negative worker count reached Total.
	ErrBadWorkers = errors.New("joltage: worker count must be non-negative")

	// ErrOverflow indicates the total no longer fits in a uint64.
	ErrOverflow = errors.New("joltage: total overflows uint64")
)

// Bank is the ordered digit sequence of one input line.
type Bank []uint8

// Options configures Total.
//
// Fields:
//   - Workers — goroutines used to evaluate banks. 0 or 1 runs inline.
type Options struct {
	Workers int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions evaluates banks sequentially.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// WithWorkers sets the number of goroutines. Panics on n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("joltage: WithWorkers(n<0)")
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// WithAllCPUs uses one worker per logical CPU.
func WithAllCPUs() Option {
	return func(o *Options) {
		o.Workers = runtime.NumCPU()
	}
}
