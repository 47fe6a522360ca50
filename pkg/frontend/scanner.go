// Package frontend - built-in header scanner
package frontend

import (
	"fmt"
	"os"
)

// Scanner is the built-in parsing front end. It recognizes macro
// definitions and top-level C declarations, reporting byte-exact extents
// into the scanned file. Conditional compilation is assumed to be already
// resolved; #if/#endif/#undef lines produce no cursor, so a redefined
// macro surfaces as two macro-definition cursors with the same spelling.
//
// When Resolve is set, #include directives found inside a header are
// followed and the included file's cursors are spliced into the same
// translation unit in document order, each keeping an extent into its own
// file. Every file is scanned at most once per Parse call, which stands in
// for header guards.
type Scanner struct {
	// Resolve maps an include reference to a file path. Nil disables
	// nested include expansion.
	Resolve func(ref string) (string, error)
}

// NewScanner creates a scanner with nested include expansion disabled.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Parse reads and scans one header file.
func (s *Scanner) Parse(path string, flags []string) (*TranslationUnit, error) {
	_ = flags // reserved for front ends that take compiler arguments
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	root := &Cursor{
		Extent: SourceRange{Path: path, Start: 0, End: uint(len(src))},
	}
	visited := map[string]bool{path: true}
	children, err := s.scanFile(path, src, visited)
	if err != nil {
		return nil, err
	}
	root.Children = children

	return &TranslationUnit{Path: path, Source: src, Root: root}, nil
}

func (s *Scanner) scanFile(path string, src []byte, visited map[string]bool) ([]*Cursor, error) {
	sc := &scanState{path: path, src: src}
	var cursors []*Cursor

	for {
		sc.skipBlank()
		if sc.eof() {
			return cursors, nil
		}

		if sc.peek() == '#' {
			cur, ref := sc.scanDirective()
			if cur != nil {
				cursors = append(cursors, cur)
			}
			if ref != "" && s.Resolve != nil {
				nested, err := s.expandInclude(ref, visited)
				if err != nil {
					return nil, err
				}
				cursors = append(cursors, nested...)
			}
			continue
		}

		if cur := sc.scanDeclaration(); cur != nil {
			cursors = append(cursors, cur)
		}
	}
}

func (s *Scanner) expandInclude(ref string, visited map[string]bool) ([]*Cursor, error) {
	path, err := s.Resolve(ref)
	if err != nil {
		return nil, err
	}
	if visited[path] {
		return nil, nil
	}
	visited[path] = true

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return s.scanFile(path, src, visited)
}

// cKeywords are excluded when picking a declaration's spelling
var cKeywords = map[string]bool{
	"auto":     true,
	"char":     true,
	"const":    true,
	"double":   true,
	"enum":     true,
	"extern":   true,
	"float":    true,
	"inline":   true,
	"int":      true,
	"long":     true,
	"register": true,
	"restrict": true,
	"short":    true,
	"signed":   true,
	"sizeof":   true,
	"static":   true,
	"struct":   true,
	"typedef":  true,
	"union":    true,
	"unsigned": true,
	"void":     true,
	"volatile": true,
}

// scanState tracks a single pass over one file's bytes
type scanState struct {
	path string
	src  []byte
	pos  int
}

func (s *scanState) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanState) peek() byte {
	return s.src[s.pos]
}

// skipBlank advances over whitespace, newlines, and comments
func (s *scanState) skipBlank() {
	for !s.eof() {
		switch ch := s.src[s.pos]; {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			s.pos++
		case ch == '/' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '/':
			for !s.eof() && s.src[s.pos] != '\n' {
				s.pos++
			}
		case ch == '/' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '*':
			s.pos += 2
			for s.pos+1 < len(s.src) && !(s.src[s.pos] == '*' && s.src[s.pos+1] == '/') {
				s.pos++
			}
			s.pos += 2
			if s.pos > len(s.src) {
				s.pos = len(s.src)
			}
		default:
			return
		}
	}
}

// skipHSpace advances over spaces and tabs only
func (s *scanState) skipHSpace() {
	for !s.eof() && (s.src[s.pos] == ' ' || s.src[s.pos] == '\t') {
		s.pos++
	}
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentChar(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}

func (s *scanState) scanIdent() string {
	start := s.pos
	for !s.eof() && isIdentChar(s.src[s.pos]) {
		s.pos++
	}
	return string(s.src[start:s.pos])
}

// skipLiteral consumes a string or character literal including escapes
func (s *scanState) skipLiteral(quote byte) {
	s.pos++ // opening quote
	for !s.eof() {
		ch := s.src[s.pos]
		s.pos++
		if ch == '\\' && !s.eof() {
			s.pos++
			continue
		}
		if ch == quote {
			return
		}
	}
}

// skipLogicalLine consumes the rest of a directive line, folding backslash
// continuations into it, and returns the offset one past the last
// significant byte.
func (s *scanState) skipLogicalLine() int {
	end := s.pos
	for !s.eof() {
		ch := s.src[s.pos]
		if ch == '\\' {
			j := s.pos + 1
			for j < len(s.src) && (s.src[j] == ' ' || s.src[j] == '\t' || s.src[j] == '\r') {
				j++
			}
			if j < len(s.src) && s.src[j] == '\n' {
				s.pos = j + 1
				continue
			}
		}
		if ch == '\n' {
			s.pos++
			break
		}
		s.pos++
		if ch != ' ' && ch != '\t' && ch != '\r' {
			end = s.pos
		}
	}
	return end
}

// scanDirective consumes one preprocessor line. It returns a cursor for
// #define, the reference for #include, and nothing for every other
// directive.
func (s *scanState) scanDirective() (*Cursor, string) {
	s.pos++ // '#'
	s.skipHSpace()
	word := s.scanIdent()

	switch word {
	case "define":
		return s.scanDefine(), ""
	case "include":
		ref := s.scanIncludeRef()
		s.skipLogicalLine()
		return nil, ref
	default:
		s.skipLogicalLine()
		return nil, ""
	}
}

// scanDefine captures a macro definition. The extent starts at the macro
// name and ends after the body, the same shape a macro-definition cursor
// has in libclang.
func (s *scanState) scanDefine() *Cursor {
	s.skipHSpace()
	if s.eof() || !isIdentStart(s.peek()) {
		s.skipLogicalLine()
		return nil
	}

	start := s.pos
	name := s.scanIdent()
	end := s.skipLogicalLine()
	if end < start {
		end = start
	}

	return &Cursor{
		Kind:     KindMacroDefinition,
		Spelling: name,
		Extent:   SourceRange{Path: s.path, Start: uint(start), End: uint(end)},
	}
}

func (s *scanState) scanIncludeRef() string {
	s.skipHSpace()
	if s.eof() {
		return ""
	}

	var closer byte
	switch s.src[s.pos] {
	case '"':
		closer = '"'
	case '<':
		closer = '>'
	default:
		return ""
	}
	s.pos++

	start := s.pos
	for !s.eof() && s.src[s.pos] != closer && s.src[s.pos] != '\n' {
		s.pos++
	}
	if s.eof() || s.src[s.pos] != closer {
		return ""
	}
	ref := string(s.src[start:s.pos])
	s.pos++
	return ref
}

// scanDeclaration consumes one top-level declaration: everything up to a
// semicolon at depth zero, or up to the closing brace of a function body.
// Kind and spelling are best-effort; an unnamed aggregate yields an empty
// spelling.
func (s *scanState) scanDeclaration() *Cursor {
	start := s.pos

	var (
		braceDepth, parenDepth, bracketDepth int

		firstWord    string
		blockKeyword string // struct/union/enum introducing a brace block
		tag          string // identifier following the block keyword
		wantTag      bool

		lastIdent0 string // last non-keyword ident at depth zero
		lastIdentP string // last non-keyword ident outside braces, any paren depth
		funcName   string

		sawParen        bool
		sawEquals       bool
		prevClosedParen bool
		bodyLo, bodyHi  int
		funcBody        bool
	)

	finish := func() *Cursor {
		end := s.pos
		if end <= start {
			return nil
		}

		kind := KindVariable
		spelling := lastIdent0
		switch {
		case firstWord == "typedef":
			kind = KindTypedef
			if spelling == "" {
				spelling = lastIdentP
			}
		case firstWord == "struct":
			kind, spelling = KindStruct, tag
		case firstWord == "union":
			kind, spelling = KindUnion, tag
		case firstWord == "enum":
			kind, spelling = KindEnum, tag
		case sawParen:
			kind, spelling = KindFunction, funcName
		}

		cur := &Cursor{
			Kind:     kind,
			Spelling: spelling,
			Extent:   SourceRange{Path: s.path, Start: uint(start), End: uint(end)},
		}
		if blockKeyword != "" && bodyHi > bodyLo {
			cur.Children = scanMembers(s.path, s.src, bodyLo, bodyHi, blockKeyword == "enum")
		}
		return cur
	}

	for !s.eof() {
		s.skipBlank()
		if s.eof() {
			break
		}

		ch := s.peek()
		switch {
		case isIdentStart(ch):
			id := s.scanIdent()
			if firstWord == "" {
				firstWord = id
			}
			switch id {
			case "struct", "union", "enum":
				if braceDepth == 0 && blockKeyword == "" {
					wantTag = true
					blockKeyword = id
				}
			default:
				if wantTag {
					tag = id
					wantTag = false
				}
				if !cKeywords[id] && !sawEquals {
					if braceDepth == 0 {
						lastIdentP = id
						if parenDepth == 0 && bracketDepth == 0 {
							lastIdent0 = id
						}
					}
				}
			}
			prevClosedParen = false
		case ch == '"' || ch == '\'':
			s.skipLiteral(ch)
			prevClosedParen = false
		case ch == '(':
			if braceDepth == 0 && parenDepth == 0 && !sawParen {
				sawParen = true
				funcName = lastIdentP
			}
			parenDepth++
			s.pos++
			prevClosedParen = false
		case ch == ')':
			parenDepth--
			s.pos++
			prevClosedParen = true
		case ch == '[':
			bracketDepth++
			s.pos++
			prevClosedParen = false
		case ch == ']':
			bracketDepth--
			s.pos++
			prevClosedParen = false
		case ch == '{':
			if braceDepth == 0 {
				funcBody = prevClosedParen
				bodyLo = s.pos + 1
				wantTag = false
			}
			braceDepth++
			s.pos++
			prevClosedParen = false
		case ch == '}':
			braceDepth--
			s.pos++
			if braceDepth == 0 {
				bodyHi = s.pos - 1
				if funcBody {
					return finish()
				}
			}
			prevClosedParen = false
		case ch == ';':
			s.pos++
			if braceDepth == 0 && parenDepth == 0 {
				return finish()
			}
		case ch == '=':
			if braceDepth == 0 {
				sawEquals = true
			}
			s.pos++
			prevClosedParen = false
		default:
			s.pos++
			prevClosedParen = false
		}
	}
	return finish()
}

// scanMembers builds child cursors for the body of a braced aggregate.
func scanMembers(path string, src []byte, lo, hi int, enum bool) []*Cursor {
	sc := &scanState{path: path, src: src[:hi], pos: lo}
	if enum {
		return sc.scanEnumConstants()
	}
	return sc.scanFields()
}

func (s *scanState) scanEnumConstants() []*Cursor {
	var out []*Cursor
	for {
		s.skipBlank()
		if s.eof() {
			return out
		}
		if !isIdentStart(s.peek()) {
			s.pos++
			continue
		}

		start := s.pos
		name := s.scanIdent()
		end := s.pos

		depth := 0
		for !s.eof() {
			ch := s.peek()
			if ch == ',' && depth == 0 {
				break
			}
			if ch == '(' {
				depth++
			} else if ch == ')' {
				depth--
			}
			s.pos++
			if ch != ' ' && ch != '\t' && ch != '\r' && ch != '\n' {
				end = s.pos
			}
		}

		out = append(out, &Cursor{
			Kind:     KindEnumConstant,
			Spelling: name,
			Extent:   SourceRange{Path: s.path, Start: uint(start), End: uint(end)},
		})
		if !s.eof() {
			s.pos++ // ','
		}
	}
}

func (s *scanState) scanFields() []*Cursor {
	var out []*Cursor
	for {
		s.skipBlank()
		if s.eof() {
			return out
		}

		start := s.pos
		last := ""
		depth := 0
		brackets := 0
		for !s.eof() {
			ch := s.peek()
			if ch == ';' && depth == 0 {
				break
			}
			switch {
			case isIdentStart(ch):
				id := s.scanIdent()
				if !cKeywords[id] && depth == 0 && brackets == 0 {
					last = id
				}
				continue
			case ch == '"' || ch == '\'':
				s.skipLiteral(ch)
				continue
			case ch == '{' || ch == '(':
				depth++
			case ch == '}' || ch == ')':
				depth--
			case ch == '[':
				brackets++
			case ch == ']':
				brackets--
			}
			s.pos++
		}
		if s.eof() {
			return out
		}
		s.pos++ // ';'

		out = append(out, &Cursor{
			Kind:     KindField,
			Spelling: last,
			Extent:   SourceRange{Path: s.path, Start: uint(start), End: uint(s.pos)},
		})
	}
}
