// Package scan provides the small byte-search primitives sim's start-
// position driver uses (IndexByte, called from sim.searchNormal's
// literalAnchor fast path; IndexAny for whole-word boundary skipping),
// capability-gated the way the teacher engine's SIMD dispatch is.
//
// The teacher engine (github.com/coregx/coregex/simd) carries real AVX2/
// SSE2 assembly kernels behind a cpu.X86.HasAVX2 dispatch. This package is
// not worth hand-rolled assembly for: its workloads are short per-call
// (a few bytes to a few kilobytes per search buffer, not a multi-gigabyte
// corpus scan), so bytes.IndexByte's existing Go-assembly fast path already
// dominates. Capable() is surfaced to internal/runner, which logs it once
// under -verbose alongside the rest of the run's diagnostics, and so a
// future AVX2 kernel has a dispatch point ready without touching call
// sites.
package scan

import (
	"bytes"

	"golang.org/x/sys/cpu"
)

var hasAVX2 = cpu.X86.HasAVX2

// Capable reports whether the host CPU advertises AVX2.
func Capable() bool { return hasAVX2 }

// IndexByte returns the index of the first occurrence of b in buf at or
// after from, or -1 if absent.
func IndexByte(buf []byte, b byte, from int) int {
	if from >= len(buf) {
		return -1
	}
	if from < 0 {
		from = 0
	}
	if idx := bytes.IndexByte(buf[from:], b); idx >= 0 {
		return from + idx
	}
	return -1
}

// IndexAny returns the index of the first byte in buf at or after from that
// is present in chars, or -1 if none is present.
func IndexAny(buf []byte, chars []byte, from int) int {
	if from >= len(buf) {
		return -1
	}
	if from < 0 {
		from = 0
	}
	if idx := bytes.IndexAny(buf[from:], string(chars)); idx >= 0 {
		return from + idx
	}
	return -1
}
