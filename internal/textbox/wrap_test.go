package textbox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/tuxsay/internal/domain"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		width    int
		expected []string
	}{
		{
			name:     "empty message yields one empty line",
			message:  "",
			width:    10,
			expected: []string{""},
		},
		{
			name:     "short message is not wrapped",
			message:  "Hi",
			width:    36,
			expected: []string{"Hi"},
		},
		{
			name:     "message exactly at width stays on one line",
			message:  "abcdef",
			width:    6,
			expected: []string{"abcdef"},
		},
		{
			name:     "breaks at last space before the limit",
			message:  "the quick brown fox",
			width:    10,
			expected: []string{"the quick", "brown fox"},
		},
		{
			name:     "break exactly on a space",
			message:  "abcde fghij",
			width:    5,
			expected: []string{"abcde", "fghij"},
		},
		{
			name:     "runs of spaces at a break are skipped",
			message:  "abcde     fghij",
			width:    5,
			expected: []string{"abcde", "fghij"},
		},
		{
			name:     "long word is hard broken",
			message:  "abcdefghijkl",
			width:    5,
			expected: []string{"abcde", "fghij", "kl"},
		},
		{
			name:     "long word after a short one",
			message:  "a bcdefghij",
			width:    4,
			expected: []string{"a", "bcde", "fghi", "j"},
		},
		{
			name:     "leading spaces on the first line are kept",
			message:  "  hello world",
			width:    8,
			expected: []string{"  hello", "world"},
		},
		{
			name:     "trailing spaces produce no extra line",
			message:  "hello world   ",
			width:    6,
			expected: []string{"hello", "world "},
		},
		{
			name:     "width of one",
			message:  "ab c",
			width:    1,
			expected: []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := Lines(tt.message, tt.width)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, lines)
		})
	}
}

func TestWrap_InvalidWidth(t *testing.T) {
	for _, width := range []int{0, -1, -40} {
		seq, err := Wrap("hello", width)
		require.Error(t, err)
		assert.True(t, domain.IsInvalidWidth(err))
		assert.Nil(t, seq)
	}
}

func TestWrap_FastPath(t *testing.T) {
	// len(m)+4 < max box width
	for _, m := range []string{"a", "hello there", strings.Repeat("x", 35)} {
		lines, err := Lines(m, 40-Frame)
		require.NoError(t, err)
		assert.Equal(t, []string{m}, lines)
	}
}

func TestWrap_HardBreakEverySixBytes(t *testing.T) {
	message := strings.Repeat("y", 200)

	lines, err := Lines(message, 6)
	require.NoError(t, err)

	require.Len(t, lines, 34)
	for _, line := range lines[:33] {
		assert.Equal(t, "yyyyyy", line)
	}
	assert.Equal(t, "yy", lines[33])
}

func TestWrap_LinesNeverExceedWidth(t *testing.T) {
	message := "Talk is cheap. Show me the code. Software is like sex: it's better when it's free."

	for width := 1; width <= len(message); width++ {
		lines, err := Lines(message, width)
		require.NoError(t, err)

		for _, line := range lines {
			assert.LessOrEqual(t, len(line), width, "width %d", width)
		}
	}
}

func TestWrap_ReconstructsMessage(t *testing.T) {
	messages := []string{
		"Talk is cheap. Show me the code.",
		"Most good programmers do programming not because they expect to get paid",
		"a  b   c    d",
		"  leading and trailing  ",
		strings.Repeat("word ", 30),
		"supercalifragilisticexpialidocious is long",
	}

	for _, message := range messages {
		for width := 1; width <= 40; width++ {
			lines, err := Lines(message, width)
			require.NoError(t, err)

			// Every line is the next slice of the message byte for byte.
			// Between lines only a run of spaces may be skipped.
			rest := message
			for i, line := range lines {
				require.True(t, strings.HasPrefix(rest, line),
					"width %d line %d %q is not the next part of %q", width, i, line, rest)
				rest = strings.TrimLeft(rest[len(line):], " ")

				if i > 0 {
					assert.False(t, strings.HasPrefix(line, " "), "line %d starts with a space", i)
				}
			}

			assert.Empty(t, rest, "width %d dropped the end of the message", width)
		}
	}
}

func TestWrap_KeepsInnerSpaces(t *testing.T) {
	lines, err := Lines("a  b   c    d", 6)
	require.NoError(t, err)

	assert.Equal(t, []string{"a  b  ", "c    d"}, lines)
}

func TestWrap_Restartable(t *testing.T) {
	seq, err := Wrap("the quick brown fox jumps over the lazy dog", 9)
	require.NoError(t, err)

	var first, second []string
	for line := range seq {
		first = append(first, line)
	}
	for line := range seq {
		second = append(second, line)
	}

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestWrap_EarlyStop(t *testing.T) {
	seq, err := Wrap(strings.Repeat("z", 100), 10)
	require.NoError(t, err)

	count := 0
	for range seq {
		count++
		if count == 3 {
			break
		}
	}

	assert.Equal(t, 3, count)
}
