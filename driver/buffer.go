// Package driver implements the line-oriented file-search loop around
// compiler+sim: reading input, growing a buffer to hold a full line,
// detecting binary content, and formatting matches for output. It is
// grounded on original_source/src/perg.c's fill_buffer/
// preserve_buffer_overlap/search_file/print_from_buffer, reworked from
// realloc-and-raw-pointer bookkeeping into Go's slice-growth idiom.
package driver

import (
	"bufio"
	"io"
)

const defaultBufSize = 4096

// FillBuffer reads the next logical unit from r into (a possibly regrown)
// buf: one line in text mode, stopping at '\n' (not included in the
// result), or up to len(buf) raw bytes once a non-ASCII byte has flagged the
// input as binary and forceText is false.
//
// Text-mode lines that don't fit in buf double it and keep reading, mirroring
// fill_buffer's bufsize <<= 1 realloc loop. It returns io.EOF only when no
// bytes at all were read (a true end of input); a final unterminated line is
// still returned with a nil error.
func FillBuffer(r *bufio.Reader, buf []byte, forceText bool) (line []byte, binary bool, err error) {
	if len(buf) == 0 {
		buf = make([]byte, defaultBufSize)
	}
	n := 0
	for {
		b, rerr := r.ReadByte()
		if rerr != nil {
			if n == 0 {
				return nil, binary, io.EOF
			}
			return buf[:n], binary, nil
		}
		if b == '\n' && (forceText || !binary) {
			return buf[:n], binary, nil
		}
		if !forceText && b >= 0x80 {
			binary = true
		}
		buf[n] = b
		n++
		if n == len(buf) {
			if binary && !forceText {
				// Binary mode reads fixed-size chunks; stop exactly at
				// capacity instead of growing further.
				return buf[:n], binary, nil
			}
			grown := make([]byte, len(buf)*2)
			copy(grown, buf)
			buf = grown
		}
	}
}

// PreserveOverlap copies buf[start:n] to the front of buf, growing buf first
// if the preserved tail would be more than half of it (preserve_buffer_
// overlap's "double the buffer if most of it must be kept" rule, so the next
// fill still has room to make progress). It returns the (possibly regrown)
// buffer and the number of bytes preserved at its front.
func PreserveOverlap(buf []byte, n, start int) ([]byte, int) {
	preserved := n - start
	if preserved > len(buf)/2 {
		grown := make([]byte, len(buf)*2)
		copy(grown, buf)
		buf = grown
	}
	copy(buf, buf[start:n])
	return buf, preserved
}
