// Package expand - duplicate suppression
package expand

// Tracker remembers every rendered declaration it has been shown. Entries
// live for the duration of one Run and are never removed.
type Tracker struct {
	seen map[string]bool
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[string]bool)}
}

// ShouldEmit returns true exactly once per distinct text: the first call
// marks the text seen, every later call with the same text returns false.
func (t *Tracker) ShouldEmit(text string) bool {
	if t.seen[text] {
		return false
	}
	t.seen[text] = true
	return true
}
