package sim

import "errors"

// Limits bounds the resources a single Search call may spend. The zero value
// is unbounded, matching original_source/src/nfa.c's behavior (which spawns
// one OS thread per branch with no cap at all).
type Limits struct {
	// MaxTasks caps the total number of (state, position) tasks a single
	// SearchLimited call may create, across every start position and every
	// nested branch. Zero means unbounded. Pathological patterns like
	// "a*a*a*a*a*a*a*a*b" against a long non-matching buffer can otherwise
	// spawn an amount of goroutines proportional to pattern length times
	// buffer length; MaxTasks exists for callers (notably the driver,
	// searching untrusted input against a user-supplied pattern) that need a
	// hard ceiling.
	MaxTasks int
}

// ErrTaskLimitExceeded is returned by SearchLimited when a Limits.MaxTasks
// bound is hit mid-search. The partial match.Record accompanying it is
// incomplete and must be discarded, not treated as a truncated-but-valid
// result.
var ErrTaskLimitExceeded = errors.New("sim: task limit exceeded")
