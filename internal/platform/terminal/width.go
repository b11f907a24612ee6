// Package terminal resolves the width the speech box is sized against.
package terminal

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	// DefaultWidth is used when no usable width hint exists.
	DefaultWidth = 80

	// DefaultWidthEnv is the environment variable holding the width hint.
	DefaultWidthEnv = "COLUMNS"
)

// Resolver determines the terminal width. The zero value reads COLUMNS
// from the process environment and falls back to 80.
type Resolver struct {
	// EnvVar names the width hint variable. Empty means COLUMNS.
	EnvVar string

	// Default is returned when neither the hint nor the probe yields a
	// positive width. Non-positive means DefaultWidth.
	Default int

	// Lookup reads the environment. Nil means os.LookupEnv.
	Lookup func(key string) (string, bool)

	// Probe optionally asks the terminal itself, after the hint and before
	// the default. It reports false when no width is available.
	Probe func() (int, bool)
}

// Resolve returns a positive width. It never fails: a missing, malformed,
// zero, or negative hint degrades to the probe and then the default.
func (r Resolver) Resolve() int {
	if w, ok := r.hint(); ok {
		return w
	}

	if r.Probe != nil {
		if w, ok := r.Probe(); ok && w > 0 {
			return w
		}
	}

	if r.Default > 0 {
		return r.Default
	}

	return DefaultWidth
}

func (r Resolver) hint() (int, bool) {
	lookup := r.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	name := r.EnvVar
	if name == "" {
		name = DefaultWidthEnv
	}

	raw, ok := lookup(name)
	if !ok {
		return 0, false
	}

	w, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || w <= 0 {
		return 0, false
	}

	return w, true
}

// Resolve reads COLUMNS from the environment, defaulting to 80.
func Resolve() int {
	return Resolver{}.Resolve()
}

// StdoutProbe reports the width of the terminal attached to stdout.
// It reports false when stdout is not a terminal, e.g. when piped.
func StdoutProbe() (int, bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}

	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 0, false
	}

	return w, true
}
