package compiler

import "fmt"

// ErrorKind enumerates the three ways a pattern can fail to compile.
type ErrorKind int

const (
	// UnclosedGroup means a '(' had no matching ')'.
	UnclosedGroup ErrorKind = iota
	// BadNegationTarget means '!' was followed by one of '(', ')', '|',
	// '*', '?', or '+'.
	BadNegationTarget
	// TruncatedEscape means the pattern ended in '\', '!\', or a bare '!'.
	TruncatedEscape
)

func (k ErrorKind) String() string {
	switch k {
	case UnclosedGroup:
		return "unclosed group"
	case BadNegationTarget:
		return "bad negation target"
	case TruncatedEscape:
		return "truncated escape"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError reports a compilation failure with the byte offset at which it
// was detected, in the style of the teacher engine's CompileError
// (github.com/coregx/coregex/nfa/error.go): a typed sentinel kind plus
// enough context for the driver to format a message. It wraps no other
// error, so it has no Unwrap method.
type ParseError struct {
	Kind    ErrorKind
	Offset  int
	Pattern string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("compile %q at offset %d: %s", e.Pattern, e.Offset, e.Kind)
}
