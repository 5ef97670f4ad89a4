// Package prefilter implements the literal-alternation bypass described in
// SPEC_FULL.md §4.5: when a pattern compiles down to a pure "lit1|lit2|...|
// litN" alternation (compiler.Compile then returns a non-nil LiteralSet), an
// Aho-Corasick automaton names the candidate start positions directly, and
// the NFA simulator runs only at those candidates instead of probing every
// byte.
//
// This is grounded on the teacher engine's own literal-alternation bypass
// (github.com/coregx/coregex/meta's UseAhoCorasick strategy in compile.go/
// find.go): build one github.com/coregx/ahocorasick.Automaton from the
// extracted literals, and call its Find at search time to jump to the next
// candidate start. The teacher's own prefilter package (Teddy SIMD, digit
// runs, sparse-set tracking) is not reused here -- see DESIGN.md for why.
package prefilter

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/pergo/compiler"
	"github.com/coregx/pergo/internal/arena"
)

// Set wraps a compiled Aho-Corasick automaton over a LiteralSet's
// alternatives. It implements sim.Prefilter.
type Set struct {
	automaton       *ahocorasick.Automaton
	caseInsensitive bool
}

// Build constructs a Set from lits, or returns (nil, nil) if lits is nil
// (the pattern wasn't a pure literal alternation, per compiler.LiteralSet).
func Build(lits *compiler.LiteralSet) (*Set, error) {
	if lits == nil {
		return nil, nil
	}
	builder := ahocorasick.NewBuilder()
	for _, lit := range lits.Literals {
		builder.AddPattern(lit)
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Set{automaton: automaton, caseInsensitive: lits.CaseInsensitive}, nil
}

// search returns buf itself, or a freshly folded copy of it when s was built
// case-insensitively: lits.Literals were folded at compile time (see
// compiler.extractLiteralSet), so the automaton only ever matches folded
// bytes, and the raw buffer must be folded the same way before querying it
// or a differently-cased occurrence (e.g. "CAT" against pattern "cat|...")
// would be invisible to Find/IsMatch even though the NFA simulator would
// still accept it. Folding preserves both length and byte position, so
// offsets found against the copy index the original buf unchanged.
func (s *Set) search(buf []byte) []byte {
	if !s.caseInsensitive {
		return buf
	}
	folded := make([]byte, len(buf))
	for i, b := range buf {
		folded[i] = arena.Fold(b, true)
	}
	return folded
}

// Next implements sim.Prefilter: it returns the start of the next literal
// occurrence at or after at, or -1 if none remains in buf.
func (s *Set) Next(buf []byte, at int) int {
	if s == nil || s.automaton == nil {
		return at
	}
	m := s.automaton.Find(s.search(buf), at)
	if m == nil {
		return -1
	}
	return m.Start
}

// IsMatch reports whether any literal occurs anywhere in buf, without
// locating it. Useful for a quick -q/"does this file match at all" probe
// that never needs the NFA simulator.
func (s *Set) IsMatch(buf []byte) bool {
	if s == nil || s.automaton == nil {
		return false
	}
	return s.automaton.IsMatch(s.search(buf))
}
