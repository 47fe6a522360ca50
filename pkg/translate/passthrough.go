// Package translate provides the default declaration renderer used when no
// external translator is wired into the driver.
package translate

import (
	"hexpand/pkg/expand"
	"hexpand/pkg/frontend"
)

// Passthrough renders a delegated cursor by copying its extent text
// verbatim. Only cursors sitting directly under the translation unit root
// produce output; nested cursors are already covered by their parent's
// text and render empty.
type Passthrough struct{}

// New creates a passthrough renderer.
func New() *Passthrough {
	return &Passthrough{}
}

// Declare implements expand.Declarer.
func (p *Passthrough) Declare(tu *frontend.TranslationUnit, c, parent *frontend.Cursor) (string, error) {
	if c == tu.Root || parent != tu.Root {
		return "", nil
	}
	ext := c.Extent
	if ext.Path == "" || ext.Start >= ext.End {
		return "", nil
	}
	// cursors spliced in from a nested header carry extents into their
	// own file, not the unit's
	if ext.Path == tu.Path {
		return tu.Text(c), nil
	}
	body, err := expand.ReadRange(ext.Path, ext.Start, ext.End)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
