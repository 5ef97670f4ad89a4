package arena

// NFA is a compiled pattern fragment: a start state, a unique accept state,
// and the number of pattern bytes consumed to build it (so a parent compile
// can resume scanning right after a nested group).
//
// Invariants (enforced by package compiler, not re-checked here):
//   - exactly one Start and one Accept per NFA;
//   - no epsilon transition leaves Start — group splicing copies the
//     sub-NFA's start transitions onto the parent's current state instead of
//     linking through an epsilon, so the per-position viability test in
//     package sim stays purely over labeled edges;
//   - Accept gains no further outgoing edges once the compile finishes.
type NFA struct {
	Arena   *Arena
	Start   StateID
	Accept  StateID
	ExprLen int
}

// StartTransitions returns the Start state's outgoing transitions. Per the
// no-epsilon-out-of-Start invariant this holds for any non-empty match
// alternative, so these are ordinarily Literal, Invert, or Wildcard — except
// for the empty pattern ("") and an empty alternative ("pat|"), where Start
// legitimately has an Epsilon edge straight to Accept.
func (n *NFA) StartTransitions() []Transition {
	return n.Arena.State(n.Start).Transitions()
}
