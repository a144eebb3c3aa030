// Package joltage totals the best k-digit joltage of every battery bank in
// a puzzle input.
//
// Each input line is one bank. Its decimal digits, in order, are the battery
// ratings; every other character is ignored. A bank's joltage for k
// batteries is the largest k-digit number that keeps the digits in order,
// computed by subseq. Banks with fewer than k digits cannot be switched on
// and contribute nothing.
//
// Banks are independent, so Total may spread them across a fixed number of
// workers; the sum does not depend on the worker count.
package joltage
