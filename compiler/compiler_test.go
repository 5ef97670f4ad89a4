package compiler

import (
	"testing"

	"github.com/coregx/pergo/internal/arena"
)

func mustCompile(t *testing.T, pattern string, caseInsensitive bool) *arena.NFA {
	t.Helper()
	nfa, _, err := Compile([]byte(pattern), caseInsensitive)
	if err != nil {
		t.Fatalf("Compile(%q) failed: %v", pattern, err)
	}
	return nfa
}

func TestCompileNoEpsilonLeavesStart(t *testing.T) {
	patterns := []string{"a", "ab", "a*b", "a|b", "(ab)*c", "!a", "a?b+c"}
	for _, p := range patterns {
		t.Run(p, func(t *testing.T) {
			nfa := mustCompile(t, p, false)
			for _, tr := range nfa.StartTransitions() {
				if tr.Flag == arena.Epsilon {
					t.Errorf("pattern %q: epsilon transition leaves start state", p)
				}
			}
		})
	}
}

func TestCompileEmptyPatternEpsilonToAccept(t *testing.T) {
	nfa := mustCompile(t, "", false)
	trs := nfa.StartTransitions()
	if len(trs) != 1 || trs[0].Flag != arena.Epsilon || trs[0].Target != nfa.Accept {
		t.Fatalf("empty pattern: want single epsilon start->accept, got %+v", trs)
	}
}

func TestCompileEmptyGroupEquivalents(t *testing.T) {
	for _, p := range []string{"()", "()*", "()?", "()+"} {
		t.Run(p, func(t *testing.T) {
			nfa := mustCompile(t, p, false)
			trs := nfa.StartTransitions()
			if len(trs) != 1 || trs[0].Flag != arena.Epsilon || trs[0].Target != nfa.Accept {
				t.Errorf("%q: want single epsilon start->accept like empty pattern, got %+v", p, trs)
			}
			if nfa.ExprLen != len(p) {
				t.Errorf("%q: ExprLen = %d, want %d", p, nfa.ExprLen, len(p))
			}
		})
	}
}

func TestCompileExprLenTopLevel(t *testing.T) {
	for _, p := range []string{"", "a", "a*b", "(ab)*c", "a|b|c"} {
		nfa := mustCompile(t, p, false)
		if nfa.ExprLen != len(p) {
			t.Errorf("%q: ExprLen = %d, want %d", p, nfa.ExprLen, len(p))
		}
	}
}

func TestCompileUnclosedGroup(t *testing.T) {
	for _, p := range []string{"(ab", "(a(b)", "("} {
		_, _, err := Compile([]byte(p), false)
		pe, ok := err.(*ParseError)
		if !ok {
			t.Fatalf("%q: expected *ParseError, got %v", p, err)
		}
		if pe.Kind != UnclosedGroup {
			t.Errorf("%q: Kind = %v, want UnclosedGroup", p, pe.Kind)
		}
	}
}

func TestCompileBadNegationTarget(t *testing.T) {
	for _, p := range []string{"!(", "!)", "!|", "!*", "!?", "!+"} {
		_, _, err := Compile([]byte(p), false)
		pe, ok := err.(*ParseError)
		if !ok {
			t.Fatalf("%q: expected *ParseError, got %v", p, err)
		}
		if pe.Kind != BadNegationTarget {
			t.Errorf("%q: Kind = %v, want BadNegationTarget", p, pe.Kind)
		}
	}
}

func TestCompileTruncatedEscape(t *testing.T) {
	for _, p := range []string{"\\", "!\\", "a\\"} {
		_, _, err := Compile([]byte(p), false)
		pe, ok := err.(*ParseError)
		if !ok {
			t.Fatalf("%q: expected *ParseError, got %v", p, err)
		}
		if pe.Kind != TruncatedEscape {
			t.Errorf("%q: Kind = %v, want TruncatedEscape", p, pe.Kind)
		}
	}
}

func TestCompileNegationDoubleAndDot(t *testing.T) {
	// !!a should compile the same shape as "a": one literal transition from
	// start.
	nfaBang := mustCompile(t, "!!a", false)
	nfaPlain := mustCompile(t, "a", false)
	trsBang := nfaBang.StartTransitions()
	trsPlain := nfaPlain.StartTransitions()
	if len(trsBang) != 1 || len(trsPlain) != 1 {
		t.Fatalf("expected single transition each, got %d and %d", len(trsBang), len(trsPlain))
	}
	if trsBang[0].Flag != trsPlain[0].Flag || trsBang[0].Symbol != trsPlain[0].Symbol {
		t.Errorf("!!a and a compiled to different transitions: %+v vs %+v", trsBang[0], trsPlain[0])
	}

	// !. is a no-op: "!.a" behaves like "a".
	nfaDot := mustCompile(t, "!.a", false)
	if len(nfaDot.StartTransitions()) != 1 {
		t.Fatalf("!.a: expected single transition, got %d", len(nfaDot.StartTransitions()))
	}
}

func TestCompileCaseFolding(t *testing.T) {
	nfa := mustCompile(t, "FOO", true)
	trs := nfa.StartTransitions()
	if len(trs) != 1 || trs[0].Symbol != 'f' {
		t.Fatalf("case-insensitive compile of 'FOO': start transition = %+v, want symbol 'f'", trs)
	}
}

func TestCompileEscapeTab(t *testing.T) {
	nfa := mustCompile(t, `\t`, false)
	trs := nfa.StartTransitions()
	if len(trs) != 1 || trs[0].Symbol != '\t' || trs[0].Flag != arena.Literal {
		t.Fatalf(`\t: start transition = %+v, want Literal TAB`, trs)
	}
}

func TestCompileInvertEscape(t *testing.T) {
	nfa := mustCompile(t, `!\t`, false)
	trs := nfa.StartTransitions()
	if len(trs) != 1 || trs[0].Symbol != '\t' || trs[0].Flag != arena.Invert {
		t.Fatalf(`!\t: start transition = %+v, want Invert TAB`, trs)
	}
}
