package sim

import "fmt"

// Status is the outcome of a search, ordered PROGRESS > FOUND > NONE:
// a PROGRESS anywhere in the task tree means the buffer ran out before the
// answer was decided (the caller should refill and re-search), and that
// outranks a FOUND elsewhere in the same tree, which in turn outranks NONE.
type Status int

const (
	// StatusNone means no branch of the search reached the accept state and
	// no branch was left wanting more input: the pattern is absent.
	StatusNone Status = iota
	// StatusFound means at least one branch reached the accept state with
	// input remaining (or exactly at buffer end) and no branch returned
	// PROGRESS.
	StatusFound
	// StatusProgress means at least one branch ran off the end of buf while
	// still on a non-accepting state with further transitions to try: the
	// caller should grow the buffer and search again before trusting the
	// other two statuses.
	StatusProgress
)

func (s Status) String() string {
	switch s {
	case StatusNone:
		return "NONE"
	case StatusFound:
		return "FOUND"
	case StatusProgress:
		return "PROGRESS"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// combineStatus folds two branch outcomes into one via the lattice order
// PROGRESS > FOUND > NONE.
func combineStatus(a, b Status) Status {
	if a == StatusProgress || b == StatusProgress {
		return StatusProgress
	}
	if a == StatusFound || b == StatusFound {
		return StatusFound
	}
	return StatusNone
}
