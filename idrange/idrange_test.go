package idrange_test

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/aoc2025/idrange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "11-22,95-115,998-1012,1188511880-1188511890,222220-222224," +
	"1698522-1698528,446443-446449,38593856-38593862,565653-565659," +
	"824824821-824824827,2121212118-2121212124"

// naiveRepeated checks the decimal string directly.
func naiveRepeated(n uint64, exactlyTwice bool) bool {
	s := strconv.FormatUint(n, 10)
	for r := 2; r <= len(s); r++ {
		if exactlyTwice && r != 2 {
			break
		}
		if len(s)%r != 0 {
			continue
		}
		if strings.Repeat(s[:len(s)/r], r) == s {
			return true
		}
	}
	return false
}

func TestIsDoubled(t *testing.T) {
	for _, n := range []uint64{11, 22, 99, 1010, 6464, 123123, 1188511885, 38593859} {
		assert.True(t, idrange.IsDoubled(n), "%d", n)
	}
	for _, n := range []uint64{0, 1, 101, 111, 1001, 1100, 565656, 824824824} {
		assert.False(t, idrange.IsDoubled(n), "%d", n)
	}
}

func TestIsRepeated(t *testing.T) {
	for _, n := range []uint64{11, 111, 999, 565656, 824824824, 2121212121, 11111111111111111111} {
		assert.True(t, idrange.IsRepeated(n), "%d", n)
	}
	for _, n := range []uint64{0, 7, 12, 1001, 1698522, math.MaxUint64} {
		assert.False(t, idrange.IsRepeated(n), "%d", n)
	}
}

// TestPredicates_MatchStringCheck cross-checks the arithmetic tests.
func TestPredicates_MatchStringCheck(t *testing.T) {
	for n := uint64(0); n < 200_000; n++ {
		require.Equal(t, naiveRepeated(n, true), idrange.IsDoubled(n), "IsDoubled(%d)", n)
		require.Equal(t, naiveRepeated(n, false), idrange.IsRepeated(n), "IsRepeated(%d)", n)
	}
}

func TestParseRange(t *testing.T) {
	r, err := idrange.ParseRange(" 95-115 ")
	require.NoError(t, err)
	assert.Equal(t, idrange.Range{First: 95, Last: 115}, r)
	assert.Equal(t, "95-115", r.String())

	for _, bad := range []string{"95", "a-5", "5-b", "-5", "1-2-3"} {
		_, err = idrange.ParseRange(bad)
		assert.ErrorIs(t, err, idrange.ErrBadRange, "segment %q", bad)
	}

	_, err = idrange.ParseRange("20-10")
	assert.ErrorIs(t, err, idrange.ErrInvertedRange)
}

func TestParseRanges(t *testing.T) {
	rs, err := idrange.ParseRanges(sample + ",\n")
	require.NoError(t, err)
	require.Len(t, rs, 11)
	assert.Equal(t, idrange.Range{First: 2121212118, Last: 2121212124}, rs[10])

	rs, err = idrange.ParseRanges("")
	require.NoError(t, err)
	assert.Empty(t, rs)

	_, err = idrange.ParseRanges("1-2,oops")
	assert.ErrorIs(t, err, idrange.ErrBadRange)
}

func TestSum_PerRange(t *testing.T) {
	cases := []struct {
		seg     string
		doubled uint64
		repeat  uint64
	}{
		{"11-22", 11 + 22, 11 + 22},
		{"95-115", 99, 99 + 111},
		{"998-1012", 1010, 999 + 1010},
		{"565653-565659", 0, 565656},
		{"1698522-1698528", 0, 0},
	}
	for _, tc := range cases {
		r, err := idrange.ParseRange(tc.seg)
		require.NoError(t, err)

		got, err := idrange.Sum([]idrange.Range{r}, idrange.IsDoubled)
		require.NoError(t, err)
		assert.Equal(t, tc.doubled, got, "doubled %s", tc.seg)

		got, err = idrange.Sum([]idrange.Range{r}, idrange.IsRepeated)
		require.NoError(t, err)
		assert.Equal(t, tc.repeat, got, "repeated %s", tc.seg)
	}
}

// TestSum_UpperBoundary makes sure a range ending at MaxUint64 terminates.
func TestSum_UpperBoundary(t *testing.T) {
	rs := []idrange.Range{{First: math.MaxUint64 - 2, Last: math.MaxUint64}}
	var seen int
	got, err := idrange.Sum(rs, func(uint64) bool { seen++; return false })
	require.NoError(t, err)
	assert.Zero(t, got)
	assert.Equal(t, 3, seen)
}

func TestSum_Overflow(t *testing.T) {
	rs := []idrange.Range{{First: math.MaxUint64 - 1, Last: math.MaxUint64}}
	_, err := idrange.Sum(rs, func(uint64) bool { return true })
	assert.ErrorIs(t, err, idrange.ErrOverflow)
}

func TestSolver_Sample(t *testing.T) {
	var s idrange.Solver

	p1, err := s.Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, uint64(1227775554), p1)

	p2, err := s.Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, uint64(4174379265), p2)
}

func TestSolver_Errors(t *testing.T) {
	var s idrange.Solver
	_, err := s.Part1("9-1")
	assert.ErrorIs(t, err, idrange.ErrInvertedRange)

	got, err := s.Part2("")
	require.NoError(t, err)
	assert.Zero(t, got)
}
