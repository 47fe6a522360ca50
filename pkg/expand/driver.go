// Package expand - expansion driver
package expand

import (
	"os"
	"strings"

	"hexpand/pkg/frontend"
)

// Declarer renders one delegated cursor as a declaration in the output
// language. An empty result means the implementation chose not to render
// the cursor. This is the seam the external full-fidelity translator plugs
// into.
type Declarer interface {
	Declare(tu *frontend.TranslationUnit, c, parent *frontend.Cursor) (string, error)
}

// Linkage markers wrapped around every expanded header so downstream
// tooling can recognize machine-generated regions.
const (
	DefaultLinkageBegin = `extern "C" {`
	DefaultLinkageEnd   = `}`
)

const includeKeyword = "#include"

// Options configures a Driver.
type Options struct {
	// Resolver locates headers; nil builds one over DefaultIncludeDirs.
	Resolver *Resolver
	// IgnoreNames extends the classifier's deny-list.
	IgnoreNames []string
	// LinkageBegin/LinkageEnd override the default marker pair.
	LinkageBegin string
	LinkageEnd   string
}

// Driver orchestrates header expansion: include detection, resolution,
// parsing, the cursor walk, and linkage wrapping.
type Driver struct {
	frontend frontend.Frontend
	declarer Declarer
	resolver *Resolver
	classify *Classifier

	linkageBegin string
	linkageEnd   string
}

// NewDriver wires a driver from its collaborators.
func NewDriver(fe frontend.Frontend, declarer Declarer, opts Options) *Driver {
	resolver := opts.Resolver
	if resolver == nil {
		resolver = NewResolver(nil)
	}
	begin := opts.LinkageBegin
	if begin == "" {
		begin = DefaultLinkageBegin
	}
	end := opts.LinkageEnd
	if end == "" {
		end = DefaultLinkageEnd
	}
	return &Driver{
		frontend:     fe,
		declarer:     declarer,
		resolver:     resolver,
		classify:     NewClassifier(opts.IgnoreNames),
		linkageBegin: begin,
		linkageEnd:   end,
	}
}

// Resolver exposes the driver's header resolver.
func (d *Driver) Resolver() *Resolver {
	return d.resolver
}

// GetHeaderName extracts the header reference from an include directive:
// the text between the first quote or angle bracket and its matching
// closer. Non-include lines yield "". A directive with no closing
// delimiter is a defect in the input, not a line to pass through.
func GetHeaderName(line string) (string, error) {
	trimmed := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(trimmed, includeKeyword+" ") {
		return "", nil
	}
	rest := trimmed[len(includeKeyword)+1:]

	open := strings.IndexAny(rest, `"<`)
	if open < 0 {
		return "", &MalformedIncludeError{Line: line}
	}
	closer := byte('"')
	if rest[open] == '<' {
		closer = '>'
	}
	length := strings.IndexByte(rest[open+1:], closer)
	if length < 0 {
		return "", &MalformedIncludeError{Line: line}
	}
	return rest[open+1 : open+1+length], nil
}

// ExpandLine replaces an include line with the expanded contents of the
// referenced header; any other line passes through unchanged. The run
// carries defined-name and dedup state across every include expanded for
// one outer file.
func (d *Driver) ExpandLine(run *Run, line string) (string, error) {
	ref, err := GetHeaderName(line)
	if err != nil {
		return "", err
	}
	if ref == "" {
		return line, nil
	}
	return d.expandHeader(run, ref)
}

// Expand runs the line-by-line pass over outer source text with a fresh
// Run. Any error aborts the whole pass; no partial output is returned.
func (d *Driver) Expand(source string) (string, error) {
	run := NewRun()
	lines := strings.Split(source, "\n")

	var out strings.Builder
	for i, line := range lines {
		expanded, err := d.ExpandLine(run, line)
		if err != nil {
			return "", err
		}
		out.WriteString(expanded)
		// expanded include blocks carry their own trailing newline
		if i < len(lines)-1 && !strings.HasSuffix(expanded, "\n") {
			out.WriteByte('\n')
		}
	}
	return out.String(), nil
}

// ExpandFile expands every include directive of one outer source file and
// returns the finished text.
func (d *Driver) ExpandFile(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return d.Expand(string(src))
}

// expandHeader resolves and parses one header, walks its cursors in
// document order, and wraps the surviving output in the linkage markers.
func (d *Driver) expandHeader(run *Run, ref string) (string, error) {
	path, err := d.resolver.Resolve(ref)
	if err != nil {
		return "", err
	}

	tu, err := d.frontend.Parse(path, nil)
	if err != nil {
		return "", &ParseError{Path: path, Err: err}
	}

	var buf strings.Builder
	buf.WriteString(d.linkageBegin)
	buf.WriteByte('\n')

	err = tu.Visit(func(c, parent *frontend.Cursor) error {
		switch d.classify.Classify(c) {
		case Ignore:
			return nil
		case ReconstructMacro:
			text, err := Reconstruct(run, c)
			if err != nil {
				return err
			}
			buf.WriteString(text)
		case Delegate:
			text, err := d.declarer.Declare(tu, c, parent)
			if err != nil {
				return err
			}
			if text != "" && run.delegated.ShouldEmit(text) {
				buf.WriteString(text)
				if !strings.HasSuffix(text, "\n") {
					buf.WriteByte('\n')
				}
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	buf.WriteString(d.linkageEnd)
	buf.WriteByte('\n')
	return buf.String(), nil
}
