// Package arena owns the state graph for a single compiled pattern: every
// state and its outgoing transition list lives in one Arena, addressed by
// small integer StateIDs rather than pointers, and the whole graph is freed
// as a unit.
//
// This mirrors the teacher engine's Builder (github.com/coregx/coregex/nfa),
// scaled down to the four transition kinds this pattern language needs, and
// scoped per-session rather than process-global, so independent compiles
// never share state.
package arena

import (
	"fmt"

	"github.com/coregx/pergo/internal/conv"
)

// StateID identifies a State within its owning Arena.
type StateID uint32

// InvalidState is returned by lookups that fail; no valid State ever has
// this id.
const InvalidState StateID = 0xFFFFFFFF

// Flag classifies a Transition's matching rule.
type Flag uint8

const (
	// Epsilon transitions consume no input and are always traversable.
	Epsilon Flag = iota
	// Literal transitions consume one byte and match iff it equals Symbol.
	Literal
	// Invert transitions consume one byte and match iff it is present (not
	// past end-of-input) and does not equal Symbol.
	Invert
	// Wildcard transitions consume one byte and match any byte that is
	// present at the position.
	Wildcard
)

func (f Flag) String() string {
	switch f {
	case Epsilon:
		return "Epsilon"
	case Literal:
		return "Literal"
	case Invert:
		return "Invert"
	case Wildcard:
		return "Wildcard"
	default:
		return fmt.Sprintf("Flag(%d)", uint8(f))
	}
}

// Transition is a directed, labeled edge to Target.
type Transition struct {
	Target StateID
	Symbol byte
	Flag   Flag
}

// Matches reports whether this transition can be taken given byte b, which
// is present iff atEnd is false (atEnd == true means "past end of input", no
// byte to offer). An Epsilon transition is always viable; Wildcard is
// viable for any present byte; Literal/Invert compare against Symbol.
//
// b is taken as already folded (see Fold) when the caller is matching under
// case-insensitive mode: Matches itself applies no folding, since it has no
// way to know whether the search is case-insensitive. Package sim folds the
// input byte before calling this, so Symbol (folded at compile time by
// package compiler) and b are compared on equal footing.
func (t Transition) Matches(b byte, atEnd bool) bool {
	switch t.Flag {
	case Epsilon:
		return true
	case Wildcard:
		return !atEnd
	case Literal:
		return !atEnd && b == t.Symbol
	case Invert:
		return !atEnd && b != t.Symbol
	default:
		return false
	}
}

// Viable reports whether the transition can be taken at position pos of buf
// (pos == len(buf) means "past end of input"), with no case folding. Package
// sim does not use this directly (it needs to fold first); it exists for
// callers that only care about the unfolded, case-sensitive shape of the
// automaton, such as arena's own tests.
func (t Transition) Viable(buf []byte, pos int) bool {
	atEnd := pos >= len(buf)
	var b byte
	if !atEnd {
		b = buf[pos]
	}
	return t.Matches(b, atEnd)
}

// State is an identity plus an ordered outgoing transition list. Insertion
// order is observable: the compiler relies on the most recently appended
// transition being "current" for quantifier attachment, and the simulator
// relies on the last viable transition being the one that does not fork a
// new task (see sim's searcher.run).
type State struct {
	id          StateID
	transitions []Transition
}

// ID returns the state's identifier within its Arena.
func (s *State) ID() StateID { return s.id }

// Transitions returns the state's outgoing transitions in insertion order.
// The returned slice must not be mutated by callers outside this package.
func (s *State) Transitions() []Transition { return s.transitions }

// Arena owns every State minted for one compile/search session. It is not
// safe for concurrent mutation, but a read-only Arena (i.e. after compiling
// finishes) may be searched concurrently by multiple sim.Search calls.
type Arena struct {
	states []State
}

// New returns an empty Arena with room for capacity states.
func New(capacity int) *Arena {
	if capacity < 4 {
		capacity = 4
	}
	return &Arena{states: make([]State, 0, capacity)}
}

// NewState allocates a fresh state with no outgoing transitions and returns
// its id.
func (a *Arena) NewState() StateID {
	id := StateID(conv.IntToUint32(len(a.states)))
	a.states = append(a.states, State{id: id})
	return id
}

// AddTransition appends a transition from id to target. It panics if id is
// out of range, since the compiler only ever references states it has
// itself minted from this same Arena.
func (a *Arena) AddTransition(id StateID, target StateID, symbol byte, flag Flag) {
	s := &a.states[id]
	s.transitions = append(s.transitions, Transition{Target: target, Symbol: symbol, Flag: flag})
}

// CopyTransitions appends dst's outgoing edges with every transition
// currently on src, used when a parenthesized subexpression's start state is
// spliced into its parent: copying preserves the "no epsilon leaves q0"
// invariant (see NFA.Start in nfa.go) instead of adding one more epsilon hop.
func (a *Arena) CopyTransitions(dst, src StateID) {
	srcTransitions := a.states[src].transitions
	// Copy before appending: dst and src may be the same underlying slice
	// header if dst == src (never happens in practice, but be defensive),
	// and appending to dst must not observe its own in-flight writes.
	copied := make([]Transition, len(srcTransitions))
	copy(copied, srcTransitions)
	a.states[dst].transitions = append(a.states[dst].transitions, copied...)
}

// State returns a pointer to the state identified by id, or nil if id is out
// of range.
func (a *Arena) State(id StateID) *State {
	if int(id) < 0 || int(id) >= len(a.states) {
		return nil
	}
	return &a.states[id]
}

// Len reports how many states have been minted in this Arena.
func (a *Arena) Len() int { return len(a.states) }

// Free releases the Arena's backing storage. The Arena (and every NFA built
// from it) must not be used afterwards.
func (a *Arena) Free() {
	a.states = nil
}

// Fold lowercases b if caseInsensitive is set and b is an ASCII uppercase
// letter ('A'..'Z'), per the pattern language's "fold pattern bytes at
// compile time, fold input bytes at match time" rule. Shared by package
// compiler (folding pattern bytes) and package sim (folding input bytes) so
// both sides of every comparison use one definition of "fold".
func Fold(b byte, caseInsensitive bool) byte {
	if caseInsensitive && b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
