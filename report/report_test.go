package report_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/common/expfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2025/harness"
	"github.com/katalvlaran/aoc2025/report"
)

var sampleResults = []harness.Result{
	{Day: 3, Part: harness.Part1, Answer: 357, Elapsed: 1500 * time.Microsecond},
	{Day: 3, Part: harness.Part2, Answer: 3121910778619, Elapsed: 2 * time.Millisecond},
	{Day: 1, Part: harness.Part1, Err: errors.New("bad rotation")},
}

func TestParseFormat(t *testing.T) {
	f, err := report.ParseFormat("prometheus")
	require.NoError(t, err)
	assert.Equal(t, report.FormatPrometheus, f)

	_, err = report.ParseFormat("json")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, sampleResults, report.FormatText))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "day 03 part 1: 357 (1.5ms)", lines[0])
	assert.Equal(t, "day 03 part 2: 3121910778619 (2ms)", lines[1])
	assert.Equal(t, "day 01 part 1: error: bad rotation", lines[2])
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := report.Write(&bytes.Buffer{}, sampleResults, report.Format("xml"))
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

// TestWrite_PrometheusRoundTrip parses the exposition back with expfmt.
func TestWrite_PrometheusRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, sampleResults, report.FormatPrometheus))

	var parser expfmt.TextParser
	mfs, err := parser.TextToMetricFamilies(&buf)
	require.NoError(t, err)
	require.Len(t, mfs, 3)

	answers := mfs[report.MetricAnswer]
	require.NotNil(t, answers)
	require.Len(t, answers.GetMetric(), 2, "failed part has no answer sample")
	assert.Equal(t, 357.0, answers.GetMetric()[0].GetGauge().GetValue())
	assert.Equal(t, 3121910778619.0, answers.GetMetric()[1].GetGauge().GetValue())

	failed := mfs[report.MetricFailed]
	require.Len(t, failed.GetMetric(), 3)
	var failures float64
	for _, m := range failed.GetMetric() {
		failures += m.GetGauge().GetValue()
	}
	assert.Equal(t, 1.0, failures)

	dur := mfs[report.MetricDuration]
	require.Len(t, dur.GetMetric(), 3)
	assert.InDelta(t, 0.0015, dur.GetMetric()[0].GetGauge().GetValue(), 1e-9)
}

func TestFamilies_Empty(t *testing.T) {
	assert.Empty(t, report.Families(nil))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "aoc.prom")
	require.NoError(t, report.WriteFile(path, sampleResults))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `aoc_answer{day="3",part="1"} 357`)
	assert.Contains(t, string(data), "# TYPE aoc_solve_failed gauge")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}
