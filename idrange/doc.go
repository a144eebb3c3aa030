// Package idrange scans inclusive ID ranges such as "11-22,95-115" for IDs
// whose decimal form is one digit pattern repeated.
//
//   - IsDoubled  — the pattern appears exactly twice: 55, 6464, 123123.
//   - IsRepeated — the pattern appears two or more times: 111, 121212.
//
// Checks are arithmetic: an L-digit n is the p-digit pattern q repeated
// r = L/p times exactly when n is divisible by 1 + 10^p + … + 10^(p(r-1)).
//
// Complexity: O(log n) per ID for IsDoubled, O(d(L)·L) for IsRepeated, where
// d(L) is the number of divisors of the digit count.
package idrange
