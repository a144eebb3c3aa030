// Command aoc runs the puzzle solvers against their input files and prints
// the answers.
//
// Usage:
//
//	aoc [-config aoc.yaml] [-day N] [-part P] [-input FILE] [-watch]
//	    [-format text|prometheus] [-metrics FILE]
//
// Settings come from the YAML config (optional), then a .env file and the
// AOC_* / LOG_LEVEL environment variables, then flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/aoc2025/config"
	"github.com/katalvlaran/aoc2025/dial"
	"github.com/katalvlaran/aoc2025/harness"
	"github.com/katalvlaran/aoc2025/idrange"
	"github.com/katalvlaran/aoc2025/joltage"
	"github.com/katalvlaran/aoc2025/report"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

type flags struct {
	configPath string
	day        int
	part       int
	input      string
	watch      bool
	format     string
	metrics    string
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("aoc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "", "path to YAML config (defaults only when empty)")
	fs.IntVar(&f.day, "day", 0, "day to run, 0 for all configured days")
	fs.IntVar(&f.part, "part", 0, "part to run, 0 for both")
	fs.StringVar(&f.input, "input", "", "input file for -day, overriding the configured one")
	fs.BoolVar(&f.watch, "watch", false, "re-run -day whenever its input file changes")
	fs.StringVar(&f.format, "format", "", "report format: text | prometheus")
	fs.StringVar(&f.metrics, "metrics", "", "also write Prometheus metrics to this file")
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if f.input != "" && f.day == 0 {
		return f, errors.New("-input requires -day")
	}
	if f.watch && f.day == 0 {
		return f, errors.New("-watch requires -day")
	}

	return f, nil
}

func loadConfig(f flags) (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if f.format != "" {
		cfg.Report.Format = f.format
	}
	if f.metrics != "" {
		cfg.Report.MetricsPath = f.metrics
	}

	return cfg, cfg.Validate()
}

func newLogger(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().Timestamp().
		Logger()
}

func newRegistry(cfg *config.Config) *harness.Registry {
	reg := harness.NewRegistry()
	reg.MustRegister(1, dial.Solver{})
	reg.MustRegister(2, idrange.Solver{})
	reg.MustRegister(3, joltage.Solver{Workers: cfg.Workers})

	return reg
}

// partsFor resolves the parts of day: the -part flag wins over config.
func partsFor(f flags, cfg *config.Config, day int) []harness.Part {
	if f.part != 0 {
		return []harness.Part{harness.Part(f.part)}
	}
	var parts []harness.Part
	for _, p := range cfg.PartsFor(day) {
		parts = append(parts, harness.Part(p))
	}

	return parts
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "aoc:", err)
		return 2
	}

	cfg, err := loadConfig(f)
	if err != nil {
		fmt.Fprintln(stderr, "aoc:", err)
		return 1
	}
	log := newLogger(cfg.LogLevel, stderr)

	format, err := report.ParseFormat(cfg.Report.Format)
	if err != nil {
		log.Error().Err(err).Msg("bad report format")
		return 1
	}

	in := harness.Inputs{
		Dir:       cfg.InputDir,
		Pattern:   cfg.InputPattern,
		Overrides: cfg.InputOverrides(),
	}
	if f.input != "" {
		in.Overrides[f.day] = f.input
	}
	reg := newRegistry(cfg)
	runner := harness.NewRunner(reg, in, harness.WithLogger(log))

	if f.watch {
		err = runner.Watch(ctx, f.day, partsFor(f, cfg, f.day), func(res []harness.Result) {
			if werr := emit(res, format, cfg.Report.MetricsPath, stdout); werr != nil {
				log.Error().Err(werr).Msg("write report")
			}
		})
		if err != nil {
			log.Error().Err(err).Int("day", f.day).Msg("watch stopped")
			return 1
		}
		return 0
	}

	days := cfg.DayNumbers()
	if f.day != 0 {
		days = []int{f.day}
	}
	if len(days) == 0 {
		days = reg.Days()
	}

	var results []harness.Result
	for _, day := range days {
		res, err := runner.RunAll(ctx, []int{day}, partsFor(f, cfg, day)...)
		results = append(results, res...)
		if err != nil {
			log.Error().Err(err).Int("day", day).Msg("run aborted")
			return 1
		}
	}

	if err = emit(results, format, cfg.Report.MetricsPath, stdout); err != nil {
		log.Error().Err(err).Msg("write report")
		return 1
	}
	for _, r := range results {
		if !r.OK() {
			return 1
		}
	}

	return 0
}

func emit(results []harness.Result, format report.Format, metricsPath string, w io.Writer) error {
	if err := report.Write(w, results, format); err != nil {
		return err
	}
	if metricsPath == "" {
		return nil
	}

	return report.WriteFile(metricsPath, results)
}
