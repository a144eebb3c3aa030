package harness

import (
	"fmt"
	"sort"
)

// Registry maps day numbers to solvers. The zero value is not usable; call
// NewRegistry. Not safe for concurrent mutation.
type Registry struct {
	solvers map[int]Solver
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{solvers: make(map[int]Solver)}
}

// Register binds s to day.
func (r *Registry) Register(day int, s Solver) error {
	if day < FirstDay || day > LastDay {
		return fmt.Errorf("%w: %d", ErrBadDay, day)
	}
	if s == nil {
		return fmt.Errorf("%w: day %d", ErrNilSolver, day)
	}
	if _, dup := r.solvers[day]; dup {
		return fmt.Errorf("%w: %d", ErrDuplicateDay, day)
	}
	r.solvers[day] = s

	return nil
}

// MustRegister is Register that panics on error, for static wiring in main.
func (r *Registry) MustRegister(day int, s Solver) {
	if err := r.Register(day, s); err != nil {
		panic(err)
	}
}

// Lookup returns the solver for day.
func (r *Registry) Lookup(day int) (Solver, error) {
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	sort.Ints(days)

	return days
}
