package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"

	"github.com/katalvlaran/aoc2025/harness"
)

// Format selects the output encoding.
type Format string

const (
	FormatText       Format = "text"
	FormatPrometheus Format = "prometheus"
)

// Metric family names used by FormatPrometheus.
const (
	MetricAnswer   = "aoc_answer"
	MetricDuration = "aoc_solve_duration_seconds"
	MetricFailed   = "aoc_solve_failed"
)

// ErrUnknownFormat indicates a format other than text or prometheus.
var ErrUnknownFormat = errors.New("report: unknown format")

// ParseFormat converts a config string into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatPrometheus:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Write renders results to w in format f.
func Write(w io.Writer, results []harness.Result, f Format) error {
	switch f {
	case FormatText:
		return writeText(w, results)
	case FormatPrometheus:
		return writePrometheus(w, results)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// WriteFile writes results in Prometheus format to path, creating parent
// directories. The file is replaced atomically so a collector never reads
// a partial write.
func WriteFile(path string, results []harness.Result) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("report: create dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("report: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err = writePrometheus(tmp, results); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("report: close temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("report: rename: %w", err)
	}

	return nil
}

func writeText(w io.Writer, results []harness.Result) error {
	for _, r := range results {
		var err error
		if r.Err != nil {
			_, err = fmt.Fprintf(w, "day %02d %s: error: %v\n", r.Day, r.Part, r.Err)
		} else {
			_, err = fmt.Fprintf(w, "day %02d %s: %d (%s)\n", r.Day, r.Part, r.Answer, r.Elapsed)
		}
		if err != nil {
			return fmt.Errorf("report: write: %w", err)
		}
	}

	return nil
}

func writePrometheus(w io.Writer, results []harness.Result) error {
	for _, mf := range Families(results) {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("report: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}

// Families converts results into Prometheus gauge families. Failed parts
// have no aoc_answer sample. Families without samples are omitted.
func Families(results []harness.Result) []*dto.MetricFamily {
	answer := gaugeFamily(MetricAnswer, "Puzzle answer by day and part.")
	duration := gaugeFamily(MetricDuration, "Wall time spent solving one part.")
	failed := gaugeFamily(MetricFailed, "1 if the part returned an error, 0 otherwise.")

	for _, r := range results {
		labels := partLabels(r)
		if r.Err == nil {
			answer.Metric = append(answer.Metric, gauge(labels, float64(r.Answer)))
		}
		duration.Metric = append(duration.Metric, gauge(labels, r.Elapsed.Seconds()))
		var f float64
		if r.Err != nil {
			f = 1
		}
		failed.Metric = append(failed.Metric, gauge(labels, f))
	}

	out := make([]*dto.MetricFamily, 0, 3)
	for _, mf := range []*dto.MetricFamily{answer, duration, failed} {
		if len(mf.Metric) > 0 {
			out = append(out, mf)
		}
	}

	return out
}

func gaugeFamily(name, help string) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name: proto.String(name),
		Help: proto.String(help),
		Type: dto.MetricType_GAUGE.Enum(),
	}
}

func partLabels(r harness.Result) []*dto.LabelPair {
	return []*dto.LabelPair{
		{Name: proto.String("day"), Value: proto.String(strconv.Itoa(r.Day))},
		{Name: proto.String("part"), Value: proto.String(strconv.Itoa(int(r.Part)))},
	}
}

func gauge(labels []*dto.LabelPair, v float64) *dto.Metric {
	return &dto.Metric{
		Label: labels,
		Gauge: &dto.Gauge{Value: proto.Float64(v)},
	}
}
