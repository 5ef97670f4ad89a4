package driver

import (
	"io"

	"golang.org/x/term"
)

// ANSI SGR sequences mirroring original_source/src/perg.c's COLOR_RESET and
// its "\e[1;%dm" bold-color format string, specialized to the one color perg
// ever actually uses (bold red for a matched span).
const (
	ansiBoldRed = "\x1b[1;31m"
	ansiReset   = "\x1b[39;49m"
)

// Colorizer decides whether matched spans get wrapped in ANSI color codes.
// perg.c gates this on isatty(fileno(stdout)); Colorizer gates it on
// golang.org/x/term.IsTerminal so the same check works for any io.Writer's
// underlying fd, not just stdout.
type Colorizer struct {
	enabled bool
}

// NewColorizer reports whether fd refers to a terminal, enabling color.
func NewColorizer(fd uintptr) Colorizer {
	return Colorizer{enabled: term.IsTerminal(int(fd))}
}

// NoColor is always disabled, for non-terminal destinations (files, pipes)
// or when the caller explicitly disabled color.
var NoColor = Colorizer{enabled: false}

// WriteMatch writes b as a matched span, wrapped in bold red when enabled.
func (c Colorizer) WriteMatch(w io.Writer, b []byte) {
	if !c.enabled {
		w.Write(b)
		return
	}
	io.WriteString(w, ansiBoldRed)
	w.Write(b)
	io.WriteString(w, ansiReset)
}

// WritePlain writes b with no color, regardless of c.enabled.
func (c Colorizer) WritePlain(w io.Writer, b []byte) {
	w.Write(b)
}
