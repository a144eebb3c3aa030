// Package config loads the puzzle runner configuration.
//
// Settings come from three layers, later ones winning:
//
//  1. Built-in defaults (inputs/, day%02d.txt, info logging, text report).
//  2. An optional YAML file (see Config for the field names).
//  3. Environment variables, after an optional .env file has been loaded:
//     AOC_INPUT_DIR, AOC_INPUT_PATTERN, AOC_WORKERS, AOC_REPORT_FORMAT,
//     AOC_METRICS_PATH and LOG_LEVEL.
//
// Example file:
//
//	input_dir: inputs
//	log_level: debug
//	workers: 4
//	report:
//	  format: prometheus
//	  metrics_path: out/aoc.prom
//	days:
//	  - day: 3
//	    input: banks.txt
//	    parts: [2]
package config
