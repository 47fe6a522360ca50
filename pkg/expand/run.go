// Package expand - per-run expansion state
package expand

// Run owns all mutable state of one top-level file expansion: the macro
// defined-names map and the two seen-text trackers. Every include expanded
// within one outer file, nested ones included, shares the same Run; a new
// outer file gets a fresh one, so unrelated expansions never see each
// other's state. A Run must not be shared across goroutines.
type Run struct {
	defined   map[string]bool
	ownOutput *Tracker // gates text rendered by the engine itself
	delegated *Tracker // gates text rendered by the external translator
}

// NewRun creates empty expansion state.
func NewRun() *Run {
	return &Run{
		defined:   make(map[string]bool),
		ownOutput: NewTracker(),
		delegated: NewTracker(),
	}
}

// MacroDefined records name as defined and reports whether it already was.
// Recording is idempotent.
func (r *Run) MacroDefined(name string) bool {
	seen := r.defined[name]
	r.defined[name] = true
	return seen
}
