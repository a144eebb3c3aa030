// Package textio splits plain-text puzzle input into the pieces solvers
// consume: lines, whitespace tokens, separator-delimited segments and the
// decimal digits of a line.
//
// All functions are pure and allocation-bounded by the input size.
package textio
