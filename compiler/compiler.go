// Package compiler implements the recursive-descent compiler from the
// pattern mini-language (see SPEC_FULL.md §4.1-4.2) to an *arena.NFA. It is
// grounded on the teacher engine's Builder-driven compile pass
// (github.com/coregx/coregex/nfa/compile.go), scaled down to the four
// transition kinds this grammar needs, and on original_source/src/nfa.c's
// build_nfa for the exact cur/prev bookkeeping and per-token semantics.
package compiler

import "github.com/coregx/pergo/internal/arena"

// Compile compiles pattern into an NFA. caseInsensitive folds pattern bytes
// in 'A'..'Z' to lowercase at compile time, so sim only ever needs to fold
// the input side at match time.
//
// Compile also returns a *LiteralSet describing a literal-alternation
// prefilter opportunity when pattern is recognizably "lit1|lit2|...|litN"
// with no groups, quantifiers, wildcards, negations, or escapes; nil
// otherwise. See package prefilter for how the driver loop consumes it.
func Compile(pattern []byte, caseInsensitive bool) (*arena.NFA, *LiteralSet, error) {
	ar := arena.New(2*len(pattern) + 2)
	nfa, err := compileExpr(ar, pattern, caseInsensitive)
	if err != nil {
		return nil, nil, err
	}
	return nfa, extractLiteralSet(pattern, caseInsensitive), nil
}

// fold lowercases b if caseInsensitive is set and b is an ASCII uppercase
// letter, per §4.1's "folds any pattern byte in 0x41..0x5A to lowercase".
// Delegates to arena.Fold so the pattern side and sim's input side share one
// definition of "fold".
func fold(b byte, caseInsensitive bool) byte {
	return arena.Fold(b, caseInsensitive)
}

// compileExpr compiles expr (or a prefix of it, for a parenthesized
// subexpression) into a fresh NFA fragment within ar. It returns when it
// reaches ')' or the end of expr; NFA.ExprLen is the number of bytes of expr
// consumed, exactly as original_source/src/nfa.c's expr_len.
func compileExpr(ar *arena.Arena, expr []byte, caseInsensitive bool) (*arena.NFA, error) {
	q0 := ar.NewState()
	qaccept := ar.NewState()
	cur := q0
	prev := arena.InvalidState

	i := 0
	for i < len(expr) {
		switch c := expr[i]; c {
		case '(':
			next, err := compileGroup(ar, expr, i, cur, prev, caseInsensitive)
			if err != nil {
				return nil, err
			}
			cur, prev, i = next.cur, next.prev, next.i

		case ')':
			ar.AddTransition(cur, qaccept, 0, arena.Epsilon)
			return &arena.NFA{Arena: ar, Start: q0, Accept: qaccept, ExprLen: i}, nil

		case '|':
			if cur != q0 {
				ar.AddTransition(cur, qaccept, 0, arena.Epsilon)
				cur = q0
				prev = arena.InvalidState
			}
			// A leading '|' (cur == q0) matches nothing-consumed; ignored.
			i++

		case '.':
			prev = cur
			cur = ar.NewState()
			ar.AddTransition(prev, cur, 0, arena.Wildcard)
			i++

		case '*':
			if prev != arena.InvalidState && prev != cur {
				ar.AddTransition(cur, prev, 0, arena.Epsilon)
				cur = prev
			}
			// prev == cur (a preceding '*') or prev invalid (nothing yet
			// to repeat): ignored.
			i++

		case '?':
			if prev != arena.InvalidState && prev != cur {
				ar.AddTransition(prev, cur, 0, arena.Epsilon)
			}
			i++

		case '+':
			if prev != arena.InvalidState && prev != cur {
				// X+ == X X*: loop back without the '*'-style bypass that
				// would let the atom be skipped entirely.
				ar.AddTransition(cur, prev, 0, arena.Epsilon)
			}
			i++

		case '!':
			next, err := compileNegation(ar, expr, i, cur, prev, caseInsensitive)
			if err != nil {
				return nil, err
			}
			cur, prev, i = next.cur, next.prev, next.i

		case '\\':
			sym, n, err := readEscape(expr, i)
			if err != nil {
				return nil, err
			}
			prev = cur
			cur = ar.NewState()
			ar.AddTransition(prev, cur, fold(sym, caseInsensitive), arena.Literal)
			i += n

		default:
			prev = cur
			cur = ar.NewState()
			ar.AddTransition(prev, cur, fold(c, caseInsensitive), arena.Literal)
			i++
		}
	}

	ar.AddTransition(cur, qaccept, 0, arena.Epsilon)
	return &arena.NFA{Arena: ar, Start: q0, Accept: qaccept, ExprLen: i}, nil
}

// cursor bundles the (cur, prev, next-index) triple produced by a
// multi-branch token handler so compileExpr's main switch stays flat.
type cursor struct {
	cur, prev arena.StateID
	i         int
}

// compileGroup handles '(' at expr[i]. It special-cases "()" (optionally
// followed by one *, ?, or + which has no effect on an empty match) as a
// true no-op, then otherwise recursively compiles the subexpression and
// splices its start state's transitions directly onto cur.
func compileGroup(ar *arena.Arena, expr []byte, i int, cur, prev arena.StateID, caseInsensitive bool) (cursor, error) {
	start := i
	i++ // move past '('
	if i >= len(expr) {
		return cursor{}, &ParseError{Kind: UnclosedGroup, Offset: start, Pattern: string(expr)}
	}
	if expr[i] == ')' {
		i++ // move past ')'
		if i < len(expr) {
			switch expr[i] {
			case '*', '?', '+':
				i++
			}
		}
		// "()" (plus any swallowed quantifier) has no effect on an empty
		// match: cur and prev both pass through unchanged.
		return cursor{cur: cur, prev: prev, i: i}, nil
	}

	sub, err := compileExpr(ar, expr[i:], caseInsensitive)
	if err != nil {
		return cursor{}, reoffset(err, i)
	}
	// Copy sub.Start's outgoing edges onto cur rather than linking via
	// epsilon, preserving "no epsilon leaves q0" for the whole NFA.
	ar.CopyTransitions(cur, sub.Start)
	prev = cur
	cur = sub.Accept
	i += sub.ExprLen
	if i >= len(expr) || expr[i] != ')' {
		return cursor{}, &ParseError{Kind: UnclosedGroup, Offset: start, Pattern: string(expr)}
	}
	i++ // move past the subexpression's closing ')'
	return cursor{cur: cur, prev: prev, i: i}, nil
}

// compileNegation handles '!' at expr[i]: the following atom is compiled as
// an Invert transition instead of Literal/Wildcard.
func compileNegation(ar *arena.Arena, expr []byte, i int, cur, prev arena.StateID, caseInsensitive bool) (cursor, error) {
	start := i
	i++
	if i >= len(expr) {
		return cursor{}, &ParseError{Kind: TruncatedEscape, Offset: start, Pattern: string(expr)}
	}
	switch expr[i] {
	case '(', ')', '|', '*', '?', '+':
		return cursor{}, &ParseError{Kind: BadNegationTarget, Offset: start, Pattern: string(expr)}
	case '!':
		// Double negative: no-op.
		return cursor{cur: cur, prev: prev, i: i + 1}, nil
	case '.':
		// No byte fails to be any byte: no-op.
		return cursor{cur: cur, prev: prev, i: i + 1}, nil
	case '\\':
		sym, n, err := readEscape(expr, i)
		if err != nil {
			return cursor{}, err
		}
		next := ar.NewState()
		ar.AddTransition(cur, next, fold(sym, caseInsensitive), arena.Invert)
		return cursor{cur: next, prev: cur, i: i + n}, nil
	default:
		next := ar.NewState()
		ar.AddTransition(cur, next, fold(expr[i], caseInsensitive), arena.Invert)
		return cursor{cur: next, prev: cur, i: i + 1}, nil
	}
}

// readEscape reads the escape sequence starting at expr[i] (expr[i] ==
// '\\'), returning the denoted symbol and the number of bytes consumed
// (always 2: the backslash and the escaped byte). '\t' denotes TAB.
func readEscape(expr []byte, i int) (sym byte, consumed int, err error) {
	if i+1 >= len(expr) {
		return 0, 0, &ParseError{Kind: TruncatedEscape, Offset: i, Pattern: string(expr)}
	}
	switch expr[i+1] {
	case 't':
		return '\t', 2, nil
	default:
		return expr[i+1], 2, nil
	}
}

// reoffset rewrites a ParseError's Offset to be relative to the enclosing
// expression rather than the nested subexpression slice it was detected in.
func reoffset(err error, base int) error {
	if pe, ok := err.(*ParseError); ok {
		pe.Offset += base
		return pe
	}
	return err
}
