package app

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jsamuelsen/tuxsay/internal/domain"
)

// Compose writes a rendered speech box followed by the character's art
// and one blank line. Art lines are written verbatim.
func Compose(w io.Writer, box string, art domain.Art) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(box)

	for _, line := range art.Lines {
		bw.WriteString(line)
	}

	bw.WriteString("\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing art: %w", err)
	}

	return nil
}
