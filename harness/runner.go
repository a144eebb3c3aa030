package harness

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// ErrSolverPanic wraps a panic recovered from a Solver.
var ErrSolverPanic = errors.New("harness: solver panicked")

// Runner executes registered solvers against their inputs.
type Runner struct {
	reg    *Registry
	inputs Inputs
	log    zerolog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) RunnerOption {
	return func(r *Runner) {
		r.log = l
	}
}

// NewRunner returns a Runner over reg reading inputs through in.
func NewRunner(reg *Registry, in Inputs, opts ...RunnerOption) *Runner {
	r := &Runner{reg: reg, inputs: in, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Inputs returns the input resolver, e.g. to find the file Watch follows.
func (r *Runner) Inputs() Inputs {
	return r.inputs
}

// Run loads day's input from disk and runs parts (both when empty).
//
// Errors returned here stop the day as a whole: unknown day, bad part,
// unreadable input or a cancelled ctx. Solver errors land in Result.Err.
func (r *Runner) Run(ctx context.Context, day int, parts ...Part) ([]Result, error) {
	if _, err := r.reg.Lookup(day); err != nil {
		return nil, err
	}
	input, err := r.inputs.Read(day)
	if err != nil {
		return nil, err
	}

	return r.RunInput(ctx, day, input, parts...)
}

// RunInput runs parts of day against an in-memory input.
func (r *Runner) RunInput(ctx context.Context, day int, input string, parts ...Part) ([]Result, error) {
	s, err := r.reg.Lookup(day)
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		parts = BothParts
	}
	for _, p := range parts {
		if !p.Valid() {
			return nil, fmt.Errorf("%w: got %d", ErrBadPart, int(p))
		}
	}

	results := make([]Result, 0, len(parts))
	for _, p := range parts {
		if err = ctx.Err(); err != nil {
			return results, err
		}
		res := r.solve(s, day, p, input)
		r.logResult(res)
		results = append(results, res)
	}

	return results, nil
}

// RunAll runs every day in days, or every registered day when days is empty.
// A day whose input cannot be read yields one failed Result per part and
// the run moves on.
func (r *Runner) RunAll(ctx context.Context, days []int, parts ...Part) ([]Result, error) {
	if len(days) == 0 {
		days = r.reg.Days()
	}
	if len(parts) == 0 {
		parts = BothParts
	}

	var all []Result
	for _, day := range days {
		res, err := r.Run(ctx, day, parts...)
		switch {
		case err == nil:
			all = append(all, res...)
		case errors.Is(err, ErrUnknownDay), errors.Is(err, ErrBadPart):
			return all, err
		case ctx.Err() != nil:
			return append(all, res...), err
		default:
			r.log.Warn().Err(err).Int("day", day).Msg("skipping day")
			for _, p := range parts {
				all = append(all, Result{Day: day, Part: p, Err: err})
			}
		}
	}

	return all, nil
}

// solve calls one part and converts a panic into ErrSolverPanic.
func (r *Runner) solve(s Solver, day int, p Part, input string) (res Result) {
	res = Result{Day: day, Part: p}
	start := time.Now()
	defer func() {
		res.Elapsed = time.Since(start)
		if v := recover(); v != nil {
			res.Answer = 0
			res.Err = fmt.Errorf("%w: day %d %s: %v", ErrSolverPanic, day, p, v)
		}
	}()

	if p == Part1 {
		res.Answer, res.Err = s.Part1(input)
	} else {
		res.Answer, res.Err = s.Part2(input)
	}

	return res
}

func (r *Runner) logResult(res Result) {
	if res.Err != nil {
		r.log.Error().Err(res.Err).
			Int("day", res.Day).
			Int("part", int(res.Part)).
			Dur("elapsed", res.Elapsed).
			Msg("solve failed")
		return
	}
	r.log.Info().
		Int("day", res.Day).
		Int("part", int(res.Part)).
		Uint64("answer", res.Answer).
		Dur("elapsed", res.Elapsed).
		Msg("solved")
}
