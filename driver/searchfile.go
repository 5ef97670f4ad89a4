package driver

import (
	"bufio"
	"fmt"
	"io"

	"github.com/coregx/pergo/internal/arena"
	"github.com/coregx/pergo/match"
	"github.com/coregx/pergo/sim"
)

// Options configures one SearchFile call: the matching mode (sim.Flags) plus
// the output formatting perg.c's arg_flag_t bits control.
type Options struct {
	Flags sim.Flags

	// OnlyMatching prints just the matched span per line (one per line), not
	// the whole line (-o).
	OnlyMatching bool
	// LineNumbers prefixes each printed line with its 1-based line number (-n).
	LineNumbers bool
	// ShowFilename prefixes each printed line with "name:" (-H, or the
	// runner's default of "on iff searching more than one file").
	ShowFilename bool
	// TreatBinaryAsText disables the binary-content switch entirely (-a):
	// every file is read and searched line by line regardless of content.
	TreatBinaryAsText bool
}

// SearchFile scans r (named name, for diagnostics and the -H filename
// prefix) line by line against nfa, optionally consulting pf (nil is fine:
// every position is then probed directly) to skip start positions where no
// match can begin, writing
// formatted matches to w. It reports whether anything in r matched.
//
// Once a non-ASCII byte is seen and Options.TreatBinaryAsText is false, it
// switches to perg.c's binary mode: search fixed-size chunks for mere
// presence of a match and report "Binary file NAME matches" instead of
// printing spans, matching grep's traditional behavior for binary input.
func SearchFile(name string, r io.Reader, w io.Writer, nfa *arena.NFA, pf sim.Prefilter, opts Options, color Colorizer) (bool, error) {
	br := bufio.NewReader(r)
	buf := make([]byte, defaultBufSize)
	lineNo := 0
	anyMatch := false

	for {
		line, binary, err := FillBuffer(br, buf, opts.TreatBinaryAsText)
		if err == io.EOF {
			return anyMatch, nil
		}
		buf = line[:cap(line)]

		if binary && !opts.TreatBinaryAsText {
			matched, err := searchBinaryRest(name, br, line, buf, nfa, pf, opts, w)
			return anyMatch || matched, err
		}

		lineNo++
		if searchLine(w, name, lineNo, line, nfa, pf, opts, color) {
			anyMatch = true
		}
	}
}

func runSearch(line []byte, nfa *arena.NFA, pf sim.Prefilter, flags sim.Flags) (sim.Status, *match.Record) {
	if pf != nil {
		return sim.SearchWithPrefilter(line, nfa, flags, pf)
	}
	return sim.Search(line, nfa, flags)
}

func searchLine(w io.Writer, name string, lineNo int, line []byte, nfa *arena.NFA, pf sim.Prefilter, opts Options, color Colorizer) bool {
	status, rec := runSearch(line, nfa, pf, opts.Flags)
	if status != sim.StatusFound {
		return false
	}
	if opts.Flags.Invert {
		// Invert already toggled NONE<->FOUND in sim: a FOUND here means the
		// pattern was absent, so the whole line is printed with no spans.
		printLine(w, name, lineNo, line, &match.Record{}, opts, color)
		return true
	}
	printLine(w, name, lineNo, line, rec, opts, color)
	return true
}

func printLine(w io.Writer, name string, lineNo int, line []byte, rec *match.Record, opts Options, color Colorizer) {
	prefix := func() {
		if opts.ShowFilename {
			fmt.Fprintf(w, "%s:", name)
		}
		if opts.LineNumbers {
			fmt.Fprintf(w, "%d:", lineNo)
		}
	}

	if opts.OnlyMatching {
		for _, iv := range rec.All() {
			prefix()
			color.WriteMatch(w, line[iv.Start:iv.End])
			io.WriteString(w, "\n")
		}
		return
	}

	prefix()
	prev := 0
	for _, iv := range rec.All() {
		color.WritePlain(w, line[prev:iv.Start])
		color.WriteMatch(w, line[iv.Start:iv.End])
		prev = iv.End
	}
	color.WritePlain(w, line[prev:])
	io.WriteString(w, "\n")
}

// searchBinaryRest implements perg.c's second search_file loop: once content
// is known to be binary, stop printing per-line spans and just report
// whether the pattern occurs anywhere in the rest of the file.
func searchBinaryRest(name string, br *bufio.Reader, firstChunk, buf []byte, nfa *arena.NFA, pf sim.Prefilter, opts Options, w io.Writer) (bool, error) {
	chunk := firstChunk
	for {
		status, _ := runSearch(chunk, nfa, pf, opts.Flags)
		if status == sim.StatusFound {
			fmt.Fprintf(w, "Binary file %s matches\n", name)
			return true, nil
		}
		if status == sim.StatusProgress {
			grown, preserved := PreserveOverlap(buf, len(chunk), 0)
			buf = grown
			n, rerr := br.Read(buf[preserved:])
			if n == 0 {
				return false, nil
			}
			chunk = buf[:preserved+n]
			if rerr != nil && rerr != io.EOF {
				return false, rerr
			}
			continue
		}
		n, rerr := br.Read(buf)
		if n == 0 {
			return false, nil
		}
		chunk = buf[:n]
		if rerr != nil && rerr != io.EOF {
			return false, rerr
		}
	}
}
