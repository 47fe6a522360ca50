// Package frontend defines the parsing surface the expansion engine
// consumes: cursors, source ranges, translation units, and a built-in
// scanner that produces them from C headers.
package frontend

// CursorKind represents the syntactic kind of a cursor
type CursorKind int

const (
	KindUnknown CursorKind = iota
	KindMacroDefinition
	KindTypedef
	KindStruct
	KindUnion
	KindEnum
	KindEnumConstant
	KindFunction
	KindVariable
	KindField
)

func (k CursorKind) String() string {
	switch k {
	case KindMacroDefinition:
		return "macro"
	case KindTypedef:
		return "typedef"
	case KindStruct:
		return "struct"
	case KindUnion:
		return "union"
	case KindEnum:
		return "enum"
	case KindEnumConstant:
		return "enum-constant"
	case KindFunction:
		return "function"
	case KindVariable:
		return "variable"
	case KindField:
		return "field"
	default:
		return "unknown"
	}
}

// SourceRange is a byte-offset span within one file. An empty Path marks a
// synthetic location with no backing file. Invariant: Start <= End.
type SourceRange struct {
	Path  string
	Start uint
	End   uint
}

// Cursor is one node of a parsed header. Consumers never mutate cursors;
// they only classify and re-render them. A cursor's parent is supplied by
// the traversal, not stored on the node.
type Cursor struct {
	Kind       CursorKind
	Spelling   string
	Extent     SourceRange
	Predefined bool // entity originates from the front end, not user source
	Children   []*Cursor
}

// TranslationUnit owns the full cursor tree for one parsed file. Cursors
// and their source ranges are valid only while the unit is alive.
type TranslationUnit struct {
	Path   string
	Source []byte
	Root   *Cursor
}

// Visit walks the cursor tree in document order, calling fn for each cursor
// paired with its immediate parent. The root is paired with itself. A
// non-nil error from fn stops the walk and is returned unchanged.
func (tu *TranslationUnit) Visit(fn func(c, parent *Cursor) error) error {
	if tu.Root == nil {
		return nil
	}
	return visit(tu.Root, tu.Root, fn)
}

func visit(c, parent *Cursor, fn func(c, parent *Cursor) error) error {
	if err := fn(c, parent); err != nil {
		return err
	}
	for _, child := range c.Children {
		if err := visit(child, c, fn); err != nil {
			return err
		}
	}
	return nil
}

// Text returns the source bytes covered by the cursor's extent, or "" when
// the extent points outside this unit's own file.
func (tu *TranslationUnit) Text(c *Cursor) string {
	ext := c.Extent
	if ext.Path != tu.Path || ext.Start > ext.End || int(ext.End) > len(tu.Source) {
		return ""
	}
	return string(tu.Source[ext.Start:ext.End])
}

// Frontend parses one file into a translation unit. The flags argument
// carries extra front-end arguments; implementations may ignore it.
type Frontend interface {
	Parse(path string, flags []string) (*TranslationUnit, error)
}
