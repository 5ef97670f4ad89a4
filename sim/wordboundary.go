package sim

import "github.com/coregx/pergo/scan"

// isSpaceOrTab is the whole-word mode's definition of a word boundary byte
// (original_source/src/perg.c treats only SPACE and TAB as separators, not
// the full ASCII whitespace set).
func isSpaceOrTab(b byte) bool { return b == ' ' || b == '\t' }

var wordBoundaryBytes = []byte{' ', '\t'}

// wordBoundary reports whether end is a legal end-of-word position: either
// buffer end, or a SPACE/TAB byte.
func wordBoundary(buf []byte, end int) bool {
	return end >= len(buf) || isSpaceOrTab(buf[end])
}

// skipWord advances p past a position known not to start a match, under
// whole-word mode: if p already sits on a SPACE/TAB separator, it steps past
// that one byte; otherwise it jumps to the next SPACE/TAB (the end of the
// current word), so the next call steps past that separator in turn. Either
// way p strictly increases, so repeated calls cannot loop.
func skipWord(buf []byte, p int) int {
	if p < len(buf) && isSpaceOrTab(buf[p]) {
		return p + 1
	}
	idx := scan.IndexAny(buf, wordBoundaryBytes, p)
	if idx < 0 {
		return len(buf)
	}
	return idx
}
