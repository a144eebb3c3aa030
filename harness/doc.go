// Package harness wires puzzle solvers to their inputs.
//
// A Registry maps day numbers to Solvers. A Runner resolves each day's
// input file, runs the requested parts, times them and logs the outcome
// with zerolog. Watch re-runs a day whenever its input file is saved.
//
// Solver failures are recorded in the returned Results rather than aborting
// the run, so one broken day never hides the answers of the others.
package harness
