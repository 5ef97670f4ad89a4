// Package match holds the ordered, append-only interval list the simulator
// produces and the driver consumes: SPEC_FULL.md §3/§4.3's "match record".
package match

// Interval is a half-open byte range [Start, End) with Start < End.
type Interval struct {
	Start, End int
}

// Record is an ordered, append-only list of Intervals. Intervals are always
// appended in ascending Start order (ties broken by first-completed), never
// sorted after the fact: sim.Search appends as it scans start positions left
// to right.
//
// Record does not deduplicate beyond the "longest match wins" rule the
// simulator's join already enforces per start position; the caller owns
// clearing it between buffer refills (SPEC_FULL.md §9's resolution of the
// "must match_list be cleared by the caller" open question).
type Record struct {
	intervals []Interval
}

// Append adds an interval to the end of the record. It panics if start >=
// end, since the simulator must never attempt to record a zero-length or
// inverted span.
func (r *Record) Append(start, end int) {
	if start >= end {
		panic("match: Append requires start < end")
	}
	r.intervals = append(r.intervals, Interval{Start: start, End: end})
}

// Len reports how many intervals are currently recorded.
func (r *Record) Len() int { return len(r.intervals) }

// At returns the i'th recorded interval.
func (r *Record) At(i int) Interval { return r.intervals[i] }

// All returns the recorded intervals in insertion (ascending-start) order.
// The returned slice must not be mutated by callers.
func (r *Record) All() []Interval { return r.intervals }

// Clear empties the record in place so it can be reused for the next buffer
// chunk.
func (r *Record) Clear() { r.intervals = r.intervals[:0] }
