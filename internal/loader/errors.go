package loader

import "fmt"

// MalformedInputError reports an input file that cannot be loaded: a
// missing required column, an unparseable numeric field, or a CSV syntax
// error. It is fatal; the run aborts before any output is written.
type MalformedInputError struct {
	Path    string
	Line    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *MalformedInputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed input %s (line %d): %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("malformed input %s: %s", e.Path, e.Message)
}

// Unwrap implements error unwrapping for errors.Is and errors.As.
func (e *MalformedInputError) Unwrap() error {
	return e.Cause
}
