// Package expand implements the header expansion engine: include
// resolution, cursor classification, macro reconstruction, and duplicate
// suppression across one expansion run.
package expand

import "fmt"

// HeaderNotFoundError reports that a header reference matched nothing,
// neither relative to the working context nor on the include search path.
type HeaderNotFoundError struct {
	Ref      string
	Searched []string
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("header %q not found (searched %d include directories)", e.Ref, len(e.Searched))
}

// MalformedIncludeError reports an include directive whose header reference
// has no closing delimiter.
type MalformedIncludeError struct {
	Line string
}

func (e *MalformedIncludeError) Error() string {
	return fmt.Sprintf("malformed include directive: %q", e.Line)
}

// ParseError reports that the front end rejected a header.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SourceRangeReadError reports that the backing file for a reported source
// range could not be read in full. A backing file that does not exist at
// all is not an error; the cursor is treated as a front-end built-in
// instead.
type SourceRangeReadError struct {
	Path       string
	Start, End uint
	Err        error
}

func (e *SourceRangeReadError) Error() string {
	return fmt.Sprintf("failed to read %s[%d:%d]: %v", e.Path, e.Start, e.End, e.Err)
}

func (e *SourceRangeReadError) Unwrap() error {
	return e.Err
}
