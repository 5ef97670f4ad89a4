package arena

import "testing"

func TestNewStateIDsAreSequential(t *testing.T) {
	a := New(0)
	s0 := a.NewState()
	s1 := a.NewState()
	s2 := a.NewState()

	if s0 != 0 || s1 != 1 || s2 != 2 {
		t.Fatalf("expected sequential ids 0,1,2; got %d,%d,%d", s0, s1, s2)
	}
	if a.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", a.Len())
	}
}

func TestAddTransitionOrderPreserved(t *testing.T) {
	a := New(0)
	s := a.NewState()
	t0 := a.NewState()
	t1 := a.NewState()
	t2 := a.NewState()

	a.AddTransition(s, t0, 'a', Literal)
	a.AddTransition(s, t1, 'b', Literal)
	a.AddTransition(s, t2, 0, Epsilon)

	got := a.State(s).Transitions()
	if len(got) != 3 {
		t.Fatalf("len(Transitions()) = %d, want 3", len(got))
	}
	want := []StateID{t0, t1, t2}
	for i, tr := range got {
		if tr.Target != want[i] {
			t.Errorf("transition[%d].Target = %d, want %d", i, tr.Target, want[i])
		}
	}
}

func TestCopyTransitions(t *testing.T) {
	a := New(0)
	src := a.NewState()
	dst := a.NewState()
	tgt := a.NewState()
	a.AddTransition(src, tgt, 'x', Literal)
	a.AddTransition(src, tgt, 'y', Literal)

	a.CopyTransitions(dst, src)

	got := a.State(dst).Transitions()
	if len(got) != 2 {
		t.Fatalf("len(dst transitions) = %d, want 2", len(got))
	}
	if got[0].Symbol != 'x' || got[1].Symbol != 'y' {
		t.Errorf("unexpected copied symbols: %+v", got)
	}

	// Mutating src afterwards must not retroactively change dst's copy.
	a.AddTransition(src, tgt, 'z', Literal)
	if len(a.State(dst).Transitions()) != 2 {
		t.Errorf("dst transitions changed after src mutation; copy aliased src")
	}
}

func TestStateOutOfRange(t *testing.T) {
	a := New(0)
	a.NewState()
	if a.State(StateID(5)) != nil {
		t.Errorf("State() for out-of-range id should return nil")
	}
	if a.State(InvalidState) != nil {
		t.Errorf("State(InvalidState) should return nil")
	}
}

func TestTransitionViable(t *testing.T) {
	tests := []struct {
		name string
		tr   Transition
		buf  []byte
		pos  int
		want bool
	}{
		{"epsilon always viable at end", Transition{Flag: Epsilon}, []byte("ab"), 2, true},
		{"literal match", Transition{Flag: Literal, Symbol: 'a'}, []byte("ab"), 0, true},
		{"literal mismatch", Transition{Flag: Literal, Symbol: 'a'}, []byte("ab"), 1, false},
		{"literal past end", Transition{Flag: Literal, Symbol: 'a'}, []byte("ab"), 2, false},
		{"invert differs", Transition{Flag: Invert, Symbol: 'a'}, []byte("ab"), 1, true},
		{"invert equals", Transition{Flag: Invert, Symbol: 'a'}, []byte("ab"), 0, false},
		{"invert past end", Transition{Flag: Invert, Symbol: 'a'}, []byte("ab"), 2, false},
		{"wildcard present", Transition{Flag: Wildcard}, []byte("ab"), 1, true},
		{"wildcard past end", Transition{Flag: Wildcard}, []byte("ab"), 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tr.Viable(tt.buf, tt.pos); got != tt.want {
				t.Errorf("Viable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransitionMatchesFoldedByte(t *testing.T) {
	tr := Transition{Flag: Literal, Symbol: 'a'}
	if !tr.Matches(Fold('A', true), false) {
		t.Errorf("Matches() with a pre-folded byte should equal the folded Symbol")
	}
	if tr.Matches(Fold('A', false), false) {
		t.Errorf("Matches() without folding should not equal Symbol 'a'")
	}
	if tr.Matches('a', true) {
		t.Errorf("Matches() at end of input should never succeed for a Literal transition")
	}
}

func TestFreeClearsStates(t *testing.T) {
	a := New(0)
	a.NewState()
	a.Free()
	if a.Len() != 0 {
		t.Errorf("Len() after Free() = %d, want 0", a.Len())
	}
}
