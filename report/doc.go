// Package report renders harness results.
//
// FormatText prints one human-readable line per part. FormatPrometheus
// writes the Prometheus text exposition format, suitable for a
// node_exporter textfile collector:
//
//	aoc_answer{day="3",part="2"} 3.121910778619e+12
//	aoc_solve_duration_seconds{day="3",part="2"} 0.0012
//	aoc_solve_failed{day="3",part="2"} 0
//
// Gauge values are float64, so answers above 2^53 lose precision in the
// Prometheus output; the text format always prints them exactly.
package report
