package sim

import (
	"sync"
	"sync/atomic"

	"github.com/coregx/pergo/internal/arena"
)

// taskResult is what one (state, position) task contributes to its parent's
// join: the lattice status, plus the furthest accept position seen anywhere
// in the subtree so the longest match can be recorded even though several
// sibling branches may have reached accept at different positions.
//
// original_source/src/nfa.c tracks this "best end" as a single mutable field
// shared (mutex-guarded) across the whole task tree. Propagating it through return values
// instead needs no shared mutable state at all: a tree of goroutines joined
// by sync.WaitGroup composes max(end) exactly like it composes the status
// lattice, and there is nothing left for a data race to find.
type taskResult struct {
	status Status
	end    int // -1 if no accept was reached in this subtree
}

func combineResult(a, b taskResult) taskResult {
	end := a.end
	if b.end > end {
		end = b.end
	}
	return taskResult{status: combineStatus(a.status, b.status), end: end}
}

// searcher holds everything every task spawned by one Search/SearchLimited
// call shares: the buffer and NFA being searched (read-only, safe to share
// across goroutines), the mode flags, and the optional task-count budget.
type searcher struct {
	buf       []byte
	nfa       *arena.NFA
	flags     Flags
	limits    Limits
	taskCount *int64 // nil when Limits.MaxTasks == 0 (unbounded)
}

func newSearcher(buf []byte, nfa *arena.NFA, flags Flags, limits Limits) *searcher {
	s := &searcher{buf: buf, nfa: nfa, flags: flags, limits: limits}
	if limits.MaxTasks > 0 {
		var n int64
		s.taskCount = &n
	}
	return s
}

// branch is one viable outgoing transition of a state, resolved to the
// (target state, next position) a task for it should run at.
type branch struct {
	target arena.StateID
	next   int
}

// viable reports whether tr can be taken when the task is sitting at pos,
// folding the input byte under s.flags.CaseInsensitive to match the folded
// pattern byte on tr.Symbol (see arena.Fold).
func (s *searcher) viable(tr arena.Transition, pos int) bool {
	atEnd := pos >= len(s.buf)
	var b byte
	if !atEnd {
		b = arena.Fold(s.buf[pos], s.flags.CaseInsensitive)
	}
	return tr.Matches(b, atEnd)
}

// run executes the task sitting at (state, pos): SPEC_FULL.md §4.4's
// per-task contract. It returns ErrTaskLimitExceeded (wrapped in the error
// return) if Limits.MaxTasks was exceeded by this or a descendant task.
func (s *searcher) run(state arena.StateID, pos int) (taskResult, error) {
	if s.taskCount != nil {
		if atomic.AddInt64(s.taskCount, 1) > int64(s.limits.MaxTasks) {
			return taskResult{}, ErrTaskLimitExceeded
		}
	}

	if state == s.nfa.Accept {
		return taskResult{status: StatusFound, end: pos}, nil
	}

	st := s.nfa.Arena.State(state)
	trs := st.Transitions()

	var branches []branch
	for _, tr := range trs {
		if s.viable(tr, pos) {
			next := pos
			if tr.Flag != arena.Epsilon {
				next = pos + 1
			}
			branches = append(branches, branch{target: tr.Target, next: next})
		}
	}
	if len(branches) == 0 {
		// Epsilon transitions are viable regardless of pos (see s.viable),
		// so reaching here with pos at buffer end and a non-empty
		// transition list means every transition needed a byte that wasn't
		// there: more input could still complete the match. A state with no
		// transitions at all (only the accept state, handled above) is a
		// true dead end.
		if pos >= len(s.buf) && needsInput(trs) {
			return taskResult{status: StatusProgress, end: -1}, nil
		}
		return taskResult{status: StatusNone, end: -1}, nil
	}

	n := len(branches)
	results := make([]taskResult, n)
	errs := make([]error, n)

	// Every branch but the last is a true fork: its own goroutine, joined
	// below. The last runs as a tail continuation on this very goroutine, so
	// a long run of deterministic literal transitions costs zero extra
	// goroutines (mirrors "the last viable transition is executed on the
	// current task" from SPEC_FULL.md §4.4).
	var wg sync.WaitGroup
	for i := 0; i < n-1; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			results[i], errs[i] = s.run(branches[i].target, branches[i].next)
		}()
	}
	results[n-1], errs[n-1] = s.run(branches[n-1].target, branches[n-1].next)
	wg.Wait()

	for _, e := range errs {
		if e != nil {
			return taskResult{}, e
		}
	}

	// Fold results in reverse-spawn order, echoing original_source/src/
	// nfa.c's LIFO pthread_join order. The lattice combine is commutative and
	// associative, so this is cosmetic fidelity, not a correctness
	// requirement.
	combined := results[n-1]
	for i := n - 2; i >= 0; i-- {
		combined = combineResult(combined, results[i])
	}
	return combined, nil
}

// needsInput reports whether any transition in trs consumes a byte (i.e. is
// not Epsilon), meaning it could become viable given more input.
func needsInput(trs []arena.Transition) bool {
	for _, tr := range trs {
		if tr.Flag != arena.Epsilon {
			return true
		}
	}
	return false
}

// literalAnchor reports the single byte that could start a match, when q0
// has exactly one outgoing transition and it is a Literal (not a Wildcard,
// Invert, or Epsilon, and not under case folding, where one folded Symbol
// could have come from more than one raw byte). Patterns like "foo" or
// "\tstart" qualify; "a|b", ".", "!x", and anything under -i do not.
func literalAnchor(nfa *arena.NFA, flags Flags) (byte, bool) {
	if flags.CaseInsensitive {
		return 0, false
	}
	trs := nfa.StartTransitions()
	if len(trs) != 1 || trs[0].Flag != arena.Literal {
		return 0, false
	}
	return trs[0].Symbol, true
}

// startViable reports whether q0 has any transition that could begin a match
// at position pos of buf. It treats an all-epsilon start state (the empty
// pattern's q0 --epsilon--> accept, and no other edges) as viable everywhere,
// since an epsilon transition never actually inspects buf[pos].
func startViable(nfa *arena.NFA, buf []byte, pos int, flags Flags) bool {
	s := newSearcher(buf, nfa, flags, Limits{})
	for _, tr := range nfa.StartTransitions() {
		if s.viable(tr, pos) {
			return true
		}
	}
	return false
}
