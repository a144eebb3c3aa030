package textio_test

import (
	"testing"

	"github.com/katalvlaran/aoc2025/textio"
	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "abc", []string{"abc"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"inner blank kept", "a\n\nb", []string{"a", "", "b"}},
		{"only newline", "\n", []string{""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := textio.Lines(tc.input)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"L68", "R5", "L1"}, textio.Tokens(" L68\nR5\t L1 \n"))
	assert.Empty(t, textio.Tokens("  \n\t"))
}

func TestSegments(t *testing.T) {
	assert.Equal(t, []string{"11-22", "95-115"}, textio.Segments("11-22, 95-115,\n", ","))
	assert.Empty(t, textio.Segments(",,  ,", ","))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, []uint8{1, 2, 3}, textio.Digits("a1-2 3"))
	assert.Equal(t, []uint8{9, 8, 0}, textio.Digits("980"))
	assert.Empty(t, textio.Digits("no digits here"))
	assert.NotNil(t, textio.Digits(""), "empty line still yields an empty sequence")
}
