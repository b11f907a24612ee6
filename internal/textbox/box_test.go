package textbox

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/tuxsay/internal/domain"
)

func TestNewLayout(t *testing.T) {
	tests := []struct {
		name           string
		messageLen     int
		terminalWidth  int
		attributionLen int
		expected       Layout
	}{
		{
			name:          "short message",
			messageLen:    2,
			terminalWidth: 80,
			expected:      Layout{MaxBoxWidth: 40, BoxWidth: 6, ContentWidth: 2},
		},
		{
			name:          "long message is capped at half the terminal",
			messageLen:    200,
			terminalWidth: 20,
			expected:      Layout{MaxBoxWidth: 10, BoxWidth: 10, ContentWidth: 6},
		},
		{
			name:          "odd terminal width rounds down",
			messageLen:    100,
			terminalWidth: 81,
			expected:      Layout{MaxBoxWidth: 40, BoxWidth: 40, ContentWidth: 36},
		},
		{
			name:           "attribution widens a short box",
			messageLen:     2,
			terminalWidth:  80,
			attributionLen: 16,
			expected:       Layout{MaxBoxWidth: 40, BoxWidth: 20, ContentWidth: 16},
		},
		{
			name:           "attribution widening is capped",
			messageLen:     2,
			terminalWidth:  20,
			attributionLen: 16,
			expected:       Layout{MaxBoxWidth: 10, BoxWidth: 10, ContentWidth: 6},
		},
		{
			name:           "narrow attribution leaves box alone",
			messageLen:     30,
			terminalWidth:  80,
			attributionLen: 5,
			expected:       Layout{MaxBoxWidth: 40, BoxWidth: 34, ContentWidth: 30},
		},
		{
			name:          "smallest usable terminal",
			messageLen:    3,
			terminalWidth: 10,
			expected:      Layout{MaxBoxWidth: 5, BoxWidth: 5, ContentWidth: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := NewLayout(tt.messageLen, tt.terminalWidth, tt.attributionLen)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, layout)
		})
	}
}

func TestNewLayout_InvalidWidth(t *testing.T) {
	for _, width := range []int{9, 8, 1, 0, -80} {
		_, err := NewLayout(5, width, 0)
		require.Error(t, err, "width %d", width)

		var invalid *domain.InvalidWidthError
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, width, invalid.TerminalWidth)
	}
}

func TestRender_SingleLine(t *testing.T) {
	out, err := String("Hi", 80, "")
	require.NoError(t, err)

	expected := "" +
		"  ______\n" +
		"  | Hi |\n" +
		"  ______\n" +
		"    \\\n" +
		"     \\\n"
	assert.Equal(t, expected, out)
}

func TestRender_EmptyMessage(t *testing.T) {
	out, err := String("", 80, "")
	require.NoError(t, err)

	expected := "" +
		"  ____\n" +
		"  |  |\n" +
		"  ____\n" +
		"    \\\n" +
		"     \\\n"
	assert.Equal(t, expected, out)
}

func TestRender_Wrapped(t *testing.T) {
	out, err := String("the quick brown fox", 28, "")
	require.NoError(t, err)

	expected := "" +
		"  ______________\n" +
		"  | the quick  |\n" +
		"  | brown fox  |\n" +
		"  ______________\n" +
		"    \\\n" +
		"     \\\n"
	assert.Equal(t, expected, out)
}

func TestRender_HardBreak(t *testing.T) {
	out, err := String(strings.Repeat("y", 200), 20, "")
	require.NoError(t, err)

	rows := boxRows(out)
	require.Len(t, rows, 34)
	for _, row := range rows[:33] {
		assert.Equal(t, "  | yyyyyy |", row)
	}
	assert.Equal(t, "  | yy     |", rows[33])
}

func TestRender_Attribution(t *testing.T) {
	out, err := String("Talk is cheap. Show me the code.", 80, "- Linus Torvalds")
	require.NoError(t, err)

	expected := "" +
		"  ____________________________________\n" +
		"  | Talk is cheap. Show me the code. |\n" +
		"  |                - Linus Torvalds  |\n" +
		"  ____________________________________\n" +
		"    \\\n" +
		"     \\\n"
	assert.Equal(t, expected, out)
}

func TestRender_AttributionDropsLeadingWords(t *testing.T) {
	out, err := String("Hi", 24, "- Linus Torvalds")
	require.NoError(t, err)

	expected := "" +
		"  ____________\n" +
		"  | Hi       |\n" +
		"  |Torvalds  |\n" +
		"  ____________\n" +
		"    \\\n" +
		"     \\\n"
	assert.Equal(t, expected, out)
}

func TestRender_AttributionOmittedWhenNoWordFits(t *testing.T) {
	out, err := String("Hi", 20, "- Linus Torvalds")
	require.NoError(t, err)

	expected := "" +
		"  ______\n" +
		"  | Hi |\n" +
		"  ______\n" +
		"    \\\n" +
		"     \\\n"
	assert.Equal(t, expected, out)
}

func TestFitAttribution(t *testing.T) {
	tests := []struct {
		name          string
		attribution   string
		terminalWidth int
		expected      string
	}{
		{name: "fits as is", attribution: "- Linus Torvalds", terminalWidth: 80, expected: "- Linus Torvalds"},
		{name: "exact fit", attribution: "- Linus Torvalds", terminalWidth: 40, expected: "- Linus Torvalds"},
		{name: "dash dropped", attribution: "- Linus Torvalds", terminalWidth: 36, expected: "Linus Torvalds"},
		{name: "surname only", attribution: "- Linus Torvalds", terminalWidth: 24, expected: "Torvalds"},
		{name: "nothing fits", attribution: "- Linus Torvalds", terminalWidth: 22, expected: ""},
		{name: "runs of spaces", attribution: "-   Linus", terminalWidth: 18, expected: "Linus"},
		{name: "empty", attribution: "", terminalWidth: 80, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FitAttribution(tt.attribution, tt.terminalWidth))
		})
	}
}

func TestRender_UniformRowWidth(t *testing.T) {
	messages := []string{
		"",
		"Hi",
		"Talk is cheap. Show me the code.",
		"Intelligence is the ability to avoid doing work, yet getting the work done.",
		strings.Repeat("abc ", 60),
		strings.Repeat("q", 333),
	}
	attributions := []string{"", "- Linus Torvalds", "- L"}

	for _, width := range []int{10, 11, 20, 37, 80, 132, 300} {
		for _, message := range messages {
			for _, attribution := range attributions {
				out, err := String(message, width, attribution)
				require.NoError(t, err)

				lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
				border := lines[0]
				boxWidth := len(border) - len(indent)

				assert.Equal(t, border, lines[len(lines)-3], "bottom border")
				assert.LessOrEqual(t, boxWidth, width/2)

				for _, row := range boxRows(out) {
					assert.Len(t, row, boxWidth+len(indent),
						"width=%d message=%q attribution=%q row=%q", width, message, attribution, row)
				}
			}
		}
	}
}

func TestRender_InvalidWidth(t *testing.T) {
	var sb strings.Builder

	err := Render(&sb, "Hi", 8, "")
	require.Error(t, err)
	assert.True(t, domain.IsInvalidWidth(err))
	assert.Empty(t, sb.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRender_WriteError(t *testing.T) {
	err := Render(failingWriter{}, "Hi", 80, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

// boxRows returns the rows between the two borders.
func boxRows(out string) []string {
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	// top border, rows..., bottom border, two tail lines
	return lines[1 : len(lines)-3]
}
