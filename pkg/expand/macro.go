// Package expand - macro reconstruction
package expand

import (
	"os"
	"strings"

	"hexpand/pkg/frontend"
)

// Reconstruct rebuilds a macro definition from the original header bytes.
//
// A macro with no backing file, a backing file that does not exist, or a
// reserved double-underscore spelling is a front-end built-in; those can
// only be told apart once the extent is inspected, so they are dropped
// here rather than in the classifier. The returned text is empty for
// dropped and already-emitted macros.
//
// When the same spelling was already defined earlier in the run, a
// synthesized #undef precedes the new definition, standing in for the
// undefine event the front end cannot report.
func Reconstruct(run *Run, cur *frontend.Cursor) (string, error) {
	ext := cur.Extent
	if ext.Path == "" || strings.HasPrefix(cur.Spelling, "__") {
		return "", nil
	}
	if _, err := os.Stat(ext.Path); err != nil {
		return "", nil
	}

	body, err := ReadRange(ext.Path, ext.Start, ext.End)
	if err != nil {
		return "", err
	}

	definition := "#define " + string(body) + "\n"
	if !run.ownOutput.ShouldEmit(definition) {
		return "", nil
	}
	if run.MacroDefined(cur.Spelling) {
		return "#undef " + cur.Spelling + "\n" + definition, nil
	}
	return definition, nil
}
