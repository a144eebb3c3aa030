package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default values applied when fields are absent.
const (
	DefaultInputDir     = "inputs"
	DefaultInputPattern = "day%02d.txt"
	DefaultLogLevel     = "info"
	DefaultWorkers      = 1
	DefaultFormat       = "text"
)

// Environment variable names read by ApplyEnv.
const (
	EnvInputDir     = "AOC_INPUT_DIR"
	EnvInputPattern = "AOC_INPUT_PATTERN"
	EnvWorkers      = "AOC_WORKERS"
	EnvFormat       = "AOC_REPORT_FORMAT"
	EnvMetricsPath  = "AOC_METRICS_PATH"
	EnvLogLevel     = "LOG_LEVEL"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the top-level runner configuration.
type Config struct {
	// InputDir holds the puzzle input files.
	InputDir string `yaml:"input_dir"`

	// InputPattern is a fmt verb string taking the day number.
	InputPattern string `yaml:"input_pattern"`

	// LogLevel is a zerolog level name: trace | debug | info | warn | error.
	LogLevel string `yaml:"log_level"`

	// Workers is the goroutine count for solvers that fan out over lines.
	Workers int `yaml:"workers"`

	// Report controls how results are printed.
	Report ReportConfig `yaml:"report"`

	// Days optionally narrows the run and overrides per-day inputs.
	// Empty means every registered day with default inputs.
	Days []DayConfig `yaml:"days"`
}

// ReportConfig selects the output format.
type ReportConfig struct {
	// Format is text | prometheus.
	Format string `yaml:"format"`

	// MetricsPath, when set, also writes a Prometheus text file there.
	MetricsPath string `yaml:"metrics_path"`
}

// DayConfig holds per-day overrides.
type DayConfig struct {
	Day int `yaml:"day"`

	// Input replaces the pattern-derived file name for this day.
	Input string `yaml:"input"`

	// Parts lists the parts to run; empty means both.
	Parts []int `yaml:"parts"`
}

// Default returns a Config holding only defaults.
func Default() *Config {
	return &Config{
		InputDir:     DefaultInputDir,
		InputPattern: DefaultInputPattern,
		LogLevel:     DefaultLogLevel,
		Workers:      DefaultWorkers,
		Report:       ReportConfig{Format: DefaultFormat},
	}
}

// Load reads and parses the YAML file at path on top of the defaults, then
// validates the result. Environment overrides are not applied; see ApplyEnv.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	return Parse(data)
}

// Parse is Load for an in-memory document.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	// An explicit empty or null log_level means "use the default".
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDotEnv loads KEY=VALUE pairs from the given files (".env" when none
// are named) into the process environment without overriding variables
// that are already set. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("config: load env file: %w", err)
	}

	return nil
}

// ApplyEnv overrides fields from the environment and re-validates.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvInputDir); v != "" {
		c.InputDir = v
	}
	if v := os.Getenv(EnvInputPattern); v != "" {
		c.InputPattern = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Report.Format = v
	}
	if v := os.Getenv(EnvMetricsPath); v != "" {
		c.Report.MetricsPath = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvWorkers, v, err)
		}
		c.Workers = n
	}

	return c.Validate()
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.InputPattern == "" {
		return fmt.Errorf("%w: input_pattern must not be empty", ErrInvalid)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative, got %d", ErrInvalid, c.Workers)
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalid, c.LogLevel)
	}
	switch c.Report.Format {
	case "text", "prometheus":
	default:
		return fmt.Errorf("%w: unknown report.format %q", ErrInvalid, c.Report.Format)
	}
	seen := make(map[int]bool, len(c.Days))
	for i, d := range c.Days {
		if d.Day < 1 || d.Day > 25 {
			return fmt.Errorf("%w: days[%d]: day %d out of range 1..25", ErrInvalid, i, d.Day)
		}
		if seen[d.Day] {
			return fmt.Errorf("%w: days[%d]: day %d listed twice", ErrInvalid, i, d.Day)
		}
		seen[d.Day] = true
		for _, p := range d.Parts {
			if p != 1 && p != 2 {
				return fmt.Errorf("%w: days[%d]: part %d must be 1 or 2", ErrInvalid, i, p)
			}
		}
	}

	return nil
}

// DayNumbers returns the configured days in file order.
func (c *Config) DayNumbers() []int {
	out := make([]int, 0, len(c.Days))
	for _, d := range c.Days {
		out = append(out, d.Day)
	}
	return out
}

// InputOverrides maps days with an explicit input file to that file.
func (c *Config) InputOverrides() map[int]string {
	out := make(map[int]string)
	for _, d := range c.Days {
		if d.Input != "" {
			out[d.Day] = d.Input
		}
	}
	return out
}

// PartsFor returns the configured parts for day, or nil for both.
func (c *Config) PartsFor(day int) []int {
	for _, d := range c.Days {
		if d.Day == day {
			return d.Parts
		}
	}
	return nil
}
