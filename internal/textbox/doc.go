// Package textbox lays out a message inside an ASCII speech box.
//
// The box is sized against the terminal: it never grows wider than half of
// the terminal width, and messages that do not fit on one line are wrapped,
// preferring to break at spaces.
//
// All measurement is byte-oriented. A multi-byte UTF-8 character counts as
// one column per byte and may be split by a hard break, so non-ASCII text
// renders with a ragged right border. Callers that need display-width
// accuracy must normalise their input first.
package textbox
