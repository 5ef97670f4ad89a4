package sim

import (
	"github.com/coregx/pergo/internal/arena"
	"github.com/coregx/pergo/match"
	"github.com/coregx/pergo/scan"
)

// Search runs an unbounded search of buf against nfa under flags. It never
// returns an error: unbounded searches cannot hit a task limit.
func Search(buf []byte, nfa *arena.NFA, flags Flags) (Status, *match.Record) {
	status, rec, err := SearchLimited(buf, nfa, flags, Limits{})
	if err != nil {
		// Limits{} is unbounded; SearchLimited cannot fail this way.
		panic("sim: unbounded Search returned an error: " + err.Error())
	}
	return status, rec
}

// SearchWithPrefilter is Search, but consults pf to skip over start
// positions that cannot possibly begin a match instead of probing every
// byte. pf may be nil, in which case every position is tried (same as
// Search).
func SearchWithPrefilter(buf []byte, nfa *arena.NFA, flags Flags, pf Prefilter) (Status, *match.Record) {
	status, rec, err := searchWithLimitsAndPrefilter(buf, nfa, flags, Limits{}, pf)
	if err != nil {
		panic("sim: unbounded SearchWithPrefilter returned an error: " + err.Error())
	}
	return status, rec
}

// SearchLimited is Search with a resource budget. If limits.MaxTasks is
// exceeded mid-search it returns ErrTaskLimitExceeded and an incomplete
// Record that must be discarded.
func SearchLimited(buf []byte, nfa *arena.NFA, flags Flags, limits Limits) (Status, *match.Record, error) {
	return searchWithLimitsAndPrefilter(buf, nfa, flags, limits, nil)
}

func searchWithLimitsAndPrefilter(buf []byte, nfa *arena.NFA, flags Flags, limits Limits, pf Prefilter) (Status, *match.Record, error) {
	if flags.WholeLine {
		return searchWholeLine(buf, nfa, flags, limits)
	}
	return searchNormal(buf, nfa, flags, limits, pf)
}

// searchWholeLine implements SPEC_FULL.md §4.4's whole-line mode: only
// position 0 is ever tried, and the match must consume the entire buffer.
func searchWholeLine(buf []byte, nfa *arena.NFA, flags Flags, limits Limits) (Status, *match.Record, error) {
	rec := &match.Record{}
	if !startViable(nfa, buf, 0, flags) {
		return finalize(StatusNone, flags), rec, nil
	}
	s := newSearcher(buf, nfa, flags, limits)
	res, err := s.run(nfa.Start, 0)
	if err != nil {
		return StatusNone, rec, err
	}
	if res.status == StatusFound && res.end == len(buf) {
		if len(buf) > 0 {
			rec.Append(0, len(buf))
		}
		return finalize(StatusFound, flags), rec, nil
	}
	if res.status == StatusProgress {
		return finalize(StatusProgress, flags), rec, nil
	}
	return finalize(StatusNone, flags), rec, nil
}

// searchNormal implements the general driver loop: scan start positions left
// to right, spawn one concurrent task tree per candidate start (every
// nondeterministic branch within that tree still forks its own goroutine,
// see searcher.run), and on a completed match resume scanning *after* the
// match's end rather than trying the positions the match already covers.
//
// original_source/src/nfa.c's search_buffer tries to launch one thread per
// start position across the whole buffer, but its scan loop never advances
// pos (no pos++ anywhere in the function) and its inner transition-matching
// loop never advances cur either -- both genuine bugs, not a design this
// package should reproduce. Skipping past each match instead of trying every
// start independently is also what the worked examples in SPEC_FULL.md §8
// require: "a|b" against "cab" yields the two non-overlapping matches
// (1,2),(2,3), not every overlapping substring an independent per-start scan
// would also report.
func searchNormal(buf []byte, nfa *arena.NFA, flags Flags, limits Limits, pf Prefilter) (Status, *match.Record, error) {
	rec := &match.Record{}
	combined := StatusNone

	// anchor is the NFA's single literal start byte, when it has one: a
	// cheap special case of the same "skip to the next position a match
	// could start at" idea a full Prefilter implements, using scan.IndexByte
	// instead of an Aho-Corasick automaton since there's only one byte to
	// look for. It's unavailable under case folding, since IndexByte can
	// only probe for one exact byte and the folded Symbol no longer tells
	// us which raw byte(s) in buf could have produced it.
	anchor, hasAnchor := literalAnchor(nfa, flags)

	// One searcher for the whole call, so Limits.MaxTasks counts tasks across
	// every start position.
	s := newSearcher(buf, nfa, flags, limits)
	p := 0
	for p < len(buf) {
		if pf != nil {
			next := pf.Next(buf, p)
			if next < 0 {
				break
			}
			p = next
			if p >= len(buf) {
				break
			}
		} else if hasAnchor {
			next := scan.IndexByte(buf, anchor, p)
			if next < 0 {
				break
			}
			p = next
		}
		if !startViable(nfa, buf, p, flags) {
			if flags.WholeWord {
				p = skipWord(buf, p)
				continue
			}
			p++
			continue
		}

		res, err := s.run(nfa.Start, p)
		if err != nil {
			return StatusNone, rec, err
		}

		if res.status == StatusFound && res.end > p {
			if flags.WholeWord && !wordBoundary(buf, res.end) {
				// Discarded: it does not count towards the returned status.
				p++
				continue
			}
			combined = combineStatus(combined, res.status)
			rec.Append(p, res.end)
			p = res.end
			continue
		}
		combined = combineStatus(combined, res.status)
		p++
	}
	return finalize(combined, flags), rec, nil
}

// finalize applies Invert's FOUND<->NONE toggle; PROGRESS always passes
// through, since "need more input" is never itself the thing being negated.
func finalize(status Status, flags Flags) Status {
	if !flags.Invert {
		return status
	}
	switch status {
	case StatusFound:
		return StatusNone
	case StatusNone:
		return StatusFound
	default:
		return status
	}
}
