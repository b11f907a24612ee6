package textbox

import (
	"iter"

	"github.com/jsamuelsen/tuxsay/internal/domain"
)

// Wrap splits message into lines of at most width bytes.
//
// A message shorter than width is yielded unchanged as the only line, which
// also covers the empty message. Longer messages break at the last space
// before the limit; a word longer than width is split at the limit. Spaces
// at a break point are consumed, so no line after the first starts with a
// space.
//
// The returned sequence holds no state between iterations and may be
// ranged over any number of times.
func Wrap(message string, width int) (iter.Seq[string], error) {
	if width <= 0 {
		return nil, domain.NewInvalidWidthError(0, width)
	}

	if len(message) < width {
		return func(yield func(string) bool) {
			yield(message)
		}, nil
	}

	return func(yield func(string) bool) {
		n := len(message)
		start := 0

		for start < n {
			lineLen := min(n-start, width)
			end := start + lineLen

			if end < n && message[end] != ' ' {
				for end > start && message[end] != ' ' {
					end--
				}
			}

			// no space to break on
			if end == start {
				end = start + lineLen
			}

			if !yield(message[start:end]) {
				return
			}

			start = end
			for start < n && message[start] == ' ' {
				start++
			}
		}
	}, nil
}

// Lines collects the result of Wrap into a slice.
func Lines(message string, width int) ([]string, error) {
	seq, err := Wrap(message, width)
	if err != nil {
		return nil, err
	}

	var lines []string
	for line := range seq {
		lines = append(lines, line)
	}

	return lines, nil
}
