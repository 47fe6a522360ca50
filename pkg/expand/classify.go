// Package expand - cursor classification
package expand

import (
	"strings"

	"hexpand/pkg/frontend"
)

// Outcome is the classifier's ternary decision for one cursor. It is
// produced once per cursor and never revisited.
type Outcome int

const (
	// Ignore drops the cursor with no output.
	Ignore Outcome = iota
	// ReconstructMacro re-synthesizes the cursor from original source bytes.
	ReconstructMacro
	// Delegate hands the cursor to the external declaration translator.
	Delegate
)

func (o Outcome) String() string {
	switch o {
	case ReconstructMacro:
		return "reconstruct-macro"
	case Delegate:
		return "delegate"
	default:
		return "ignore"
	}
}

// deniedSpellings lists primitive-alias names the front end redeclares on
// its own; they never come from user source and must not be re-emitted.
var deniedSpellings = []string{
	"va_list",
	"__builtin_va_list",
	"__gnuc_va_list",
	"__int128_t",
	"__uint128_t",
}

// Classifier decides, cursor by cursor, how the driver treats an AST node.
type Classifier struct {
	deny map[string]bool
}

// NewClassifier builds a classifier from the fixed deny-list plus any
// extra spellings supplied by configuration.
func NewClassifier(extra []string) *Classifier {
	deny := make(map[string]bool, len(deniedSpellings)+len(extra))
	for _, name := range deniedSpellings {
		deny[name] = true
	}
	for _, name := range extra {
		deny[name] = true
	}
	return &Classifier{deny: deny}
}

// Classify applies the filtering rules in order; the first match wins. The
// kind check runs last, so a macro with a reserved spelling is still
// dropped by the prefix rule. Empty spellings cover anonymous aggregates
// too; legitimate unnamed structs are dropped with them (known
// approximation).
func (c *Classifier) Classify(cur *frontend.Cursor) Outcome {
	switch {
	case c.deny[cur.Spelling]:
		return Ignore
	case cur.Predefined:
		return Ignore
	case cur.Spelling == "":
		return Ignore
	case strings.HasPrefix(cur.Spelling, "__"):
		return Ignore
	case cur.Kind == frontend.KindMacroDefinition:
		return ReconstructMacro
	default:
		return Delegate
	}
}
