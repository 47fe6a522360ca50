package translate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexpand/pkg/frontend"
)

func unitFor(path, content string) *frontend.TranslationUnit {
	root := &frontend.Cursor{
		Extent: frontend.SourceRange{Path: path, Start: 0, End: uint(len(content))},
	}
	return &frontend.TranslationUnit{Path: path, Source: []byte(content), Root: root}
}

func TestDeclareCopiesRootLevelExtent(t *testing.T) {
	content := "int answer(void);\n"
	tu := unitFor("h.h", content)
	cur := &frontend.Cursor{
		Kind:     frontend.KindFunction,
		Spelling: "answer",
		Extent:   frontend.SourceRange{Path: "h.h", Start: 0, End: 17},
	}
	tu.Root.Children = []*frontend.Cursor{cur}

	got, err := New().Declare(tu, cur, tu.Root)
	require.NoError(t, err)
	assert.Equal(t, "int answer(void);", got)
}

func TestDeclareRendersNestedCursorsEmpty(t *testing.T) {
	content := "struct s { int x; };\n"
	tu := unitFor("h.h", content)
	field := &frontend.Cursor{
		Kind:     frontend.KindField,
		Spelling: "x",
		Extent:   frontend.SourceRange{Path: "h.h", Start: 11, End: 17},
	}
	strct := &frontend.Cursor{
		Kind:     frontend.KindStruct,
		Spelling: "s",
		Extent:   frontend.SourceRange{Path: "h.h", Start: 0, End: 20},
		Children: []*frontend.Cursor{field},
	}
	tu.Root.Children = []*frontend.Cursor{strct}

	got, err := New().Declare(tu, field, strct)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeclareReadsForeignExtent(t *testing.T) {
	dir := t.TempDir()
	other := filepath.Join(dir, "other.h")
	require.NoError(t, os.WriteFile(other, []byte("int from_other;\n"), 0644))

	tu := unitFor("h.h", "")
	cur := &frontend.Cursor{
		Kind:     frontend.KindVariable,
		Spelling: "from_other",
		Extent:   frontend.SourceRange{Path: other, Start: 0, End: 15},
	}
	tu.Root.Children = []*frontend.Cursor{cur}

	got, err := New().Declare(tu, cur, tu.Root)
	require.NoError(t, err)
	assert.Equal(t, "int from_other;", got)
}

func TestDeclareSyntheticLocationEmpty(t *testing.T) {
	tu := unitFor("h.h", "")
	cur := &frontend.Cursor{Kind: frontend.KindVariable, Spelling: "builtin"}
	tu.Root.Children = []*frontend.Cursor{cur}

	got, err := New().Declare(tu, cur, tu.Root)
	require.NoError(t, err)
	assert.Empty(t, got)
}
