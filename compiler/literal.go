package compiler

import "bytes"

// LiteralSet is the literal-alternation prefilter opportunity described in
// SPEC_FULL.md §4.5: a pure alternation of complete literal atoms with no
// groups, quantifiers, wildcards, negations, or escapes. Package prefilter
// turns a LiteralSet into an Aho-Corasick automaton via the teacher's own
// dependency, github.com/coregx/ahocorasick.
type LiteralSet struct {
	Literals [][]byte
	// CaseInsensitive records whether Literals were folded at compile time,
	// so package prefilter knows it must fold the search buffer the same
	// way before matching against them (folding preserves byte length and
	// position, so offsets found against a folded copy still index the
	// original buffer correctly).
	CaseInsensitive bool
}

// minPrefilterLiterals is the smallest alternation width worth building an
// automaton for; below it a plain per-position scan against q0's
// transitions is already fast enough, and an automaton build would be pure
// overhead. Chosen conservatively low (unlike the teacher's 32/64-literal
// Teddy/Aho-Corasick thresholds, which amortize a much more expensive SIMD
// kernel selection) since our per-position scan is already O(1) per probed
// byte.
const minPrefilterLiterals = 4

// metacharacters that disqualify a pattern from being a pure literal
// alternation.
const metachars = ".*?+!()\\"

// extractLiteralSet returns a LiteralSet when pattern is exactly
// "lit1|lit2|...|litN" (N >= minPrefilterLiterals), every liti non-empty and
// free of metacharacters. It returns nil otherwise — the compiled NFA is
// always correct on its own; this is purely an optional search accelerator.
func extractLiteralSet(pattern []byte, caseInsensitive bool) *LiteralSet {
	if bytes.ContainsAny(pattern, metachars) {
		return nil
	}
	parts := bytes.Split(pattern, []byte{'|'})
	if len(parts) < minPrefilterLiterals {
		return nil
	}
	lits := make([][]byte, 0, len(parts))
	for _, p := range parts {
		if len(p) == 0 {
			return nil
		}
		folded := make([]byte, len(p))
		for i, b := range p {
			folded[i] = fold(b, caseInsensitive)
		}
		lits = append(lits, folded)
	}
	return &LiteralSet{Literals: lits, CaseInsensitive: caseInsensitive}
}
