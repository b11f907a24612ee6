package textbox

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jsamuelsen/tuxsay/internal/domain"
)

// Frame is the number of columns taken by the side borders and their
// inner padding: "| " on the left and " |" on the right.
const Frame = 4

// indent prefixes every row of the box.
const indent = "  "

// tail is the speech tail drawn under the box, pointing at the art.
var tail = [...]string{"    \\", "     \\"}

// Layout holds the computed dimensions of a box.
type Layout struct {
	// MaxBoxWidth is half the terminal width.
	MaxBoxWidth int

	// BoxWidth is the width of the borders, side characters included.
	BoxWidth int

	// ContentWidth is the room left for text on each row.
	ContentWidth int
}

// WrapWidth returns the widest line Wrap may produce for this layout.
func (l Layout) WrapWidth() int {
	return l.MaxBoxWidth - Frame
}

// NewLayout sizes a box for a message of messageLen bytes on a terminal
// terminalWidth columns wide. A positive attributionLen widens the box so
// the attribution fits, up to MaxBoxWidth.
//
// Terminals narrower than 10 columns cannot hold a single character of
// text and produce an InvalidWidth error.
func NewLayout(messageLen, terminalWidth, attributionLen int) (Layout, error) {
	maxBox := terminalWidth / 2
	if maxBox-Frame < 1 {
		return Layout{}, domain.NewInvalidWidthError(terminalWidth, maxBox-Frame)
	}

	box := min(messageLen+Frame, maxBox)
	if attributionLen > 0 && attributionLen+Frame > box {
		box = min(attributionLen+Frame, maxBox)
	}

	return Layout{
		MaxBoxWidth:  maxBox,
		BoxWidth:     box,
		ContentWidth: box - Frame,
	}, nil
}

// Render writes message inside a speech box to w. When attribution is not
// empty it is right-aligned on an extra row below the message.
func Render(w io.Writer, message string, terminalWidth int, attribution string) error {
	attribution = FitAttribution(attribution, terminalWidth)

	layout, err := NewLayout(len(message), terminalWidth, len(attribution))
	if err != nil {
		return err
	}

	lines, err := Wrap(message, layout.WrapWidth())
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	border := indent + strings.Repeat("_", layout.BoxWidth) + "\n"

	bw.WriteString(border)

	for line := range lines {
		bw.WriteString(indent + "| ")
		bw.WriteString(line)
		bw.WriteString(pad(layout.ContentWidth - len(line)))
		bw.WriteString(" |\n")
	}

	if attribution != "" {
		bw.WriteString(indent + "|")
		bw.WriteString(pad(layout.ContentWidth - len(attribution)))
		bw.WriteString(attribution)
		bw.WriteString("  |\n")
	}

	bw.WriteString(border)

	for _, t := range tail {
		bw.WriteString(t + "\n")
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing box: %w", err)
	}

	return nil
}

// String renders the box into a string.
func String(message string, terminalWidth int, attribution string) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, message, terminalWidth, attribution); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// FitAttribution shortens attribution to the widest box a terminal of
// terminalWidth columns allows. Leading words are dropped until the rest
// fits, so "- Linus Torvalds" becomes "Linus Torvalds" and then "Torvalds".
// When not even the last word fits the result is empty and no attribution
// row is drawn.
func FitAttribution(attribution string, terminalWidth int) string {
	width := terminalWidth/2 - Frame

	for len(attribution) > width {
		i := strings.IndexByte(attribution, ' ')
		if i < 0 {
			return ""
		}

		attribution = strings.TrimLeft(attribution[i:], " ")
	}

	return attribution
}

// pad returns n spaces, or nothing for n <= 0.
func pad(n int) string {
	if n <= 0 {
		return ""
	}

	return strings.Repeat(" ", n)
}
