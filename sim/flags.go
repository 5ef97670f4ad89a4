// Package sim implements the concurrent NFA simulator: SPEC_FULL.md §4.4/§5.
// Start positions are tried one at a time, left to right; from each start,
// every nondeterministic branch except the last runs on its own goroutine,
// joined with a sync.WaitGroup, and results are combined through the
// PROGRESS > FOUND > NONE status lattice. This is grounded on the
// teacher engine's goroutine-per-alternative shape in
// github.com/coregx/coregex/nfa (the PikeVM-style thread list), generalized
// from its single-goroutine worklist to true tree-shaped fan-out so it
// matches original_source/src/nfa.c's one-pthread-per-branch model.
package sim

// Flags selects the simulator's matching mode for one Search call.
type Flags struct {
	// CaseInsensitive folds input bytes the same way Compile folded pattern
	// bytes. Must agree with the caseInsensitive argument the pattern was
	// compiled with, or literal comparisons silently misalign.
	CaseInsensitive bool

	// WholeWord requires an accepted match to end at a SPACE/TAB byte or at
	// buffer end; a match ending mid-word is discarded. When no match can
	// start at a position, scanning skips to the end of the current word.
	// The byte before a match's start is not checked.
	WholeWord bool

	// WholeLine requires the match to span the entire buffer: only start
	// position 0 is tried, and it must consume every byte of buf.
	WholeLine bool

	// Invert flips the final FOUND/NONE verdict (PROGRESS passes through
	// unchanged). Used for "print lines that do NOT match".
	Invert bool
}
