package sim

// Prefilter narrows the set of start positions SearchWithPrefilter tries. It
// is defined here (rather than imported from package prefilter) so that sim
// has no dependency on prefilter; prefilter.Set implements this interface
// instead, keeping the dependency edge one-directional.
type Prefilter interface {
	// Next returns the lowest candidate start position >= at at which a
	// match could possibly begin, or -1 if no further candidate exists in
	// buf. A correct Prefilter never skips a position a real match could
	// start at; it may only skip positions it can prove are impossible.
	Next(buf []byte, at int) int
}
