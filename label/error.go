package label

import "fmt"

// ParseError describes a label line that could not be parsed.
// Per the skip policy, readers log these as warnings and continue;
// the type is exported so callers can inspect them if they collect
// their own diagnostics.
type ParseError struct {
	// Line is the 1-based line number in the source.
	Line int
	// Input is the raw line as read.
	Input string
	// Err is the underlying cause, typically a numeric conversion failure.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: cannot parse label %q: %v", e.Line, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
