package expand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerEmitsEachTextOnce(t *testing.T) {
	tracker := NewTracker()

	assert.True(t, tracker.ShouldEmit("int a;"))
	assert.False(t, tracker.ShouldEmit("int a;"))
	assert.True(t, tracker.ShouldEmit("int b;"))
	assert.False(t, tracker.ShouldEmit("int a;"))
}

func TestRunMacroDefinedIsIdempotent(t *testing.T) {
	run := NewRun()

	assert.False(t, run.MacroDefined("FOO"))
	assert.True(t, run.MacroDefined("FOO"))
	assert.True(t, run.MacroDefined("FOO"))
	assert.False(t, run.MacroDefined("BAR"))
}

// Trackers belong to one run; a fresh run has no memory of earlier text.
func TestFreshRunForgetsSeenText(t *testing.T) {
	first := NewRun()
	assert.True(t, first.ownOutput.ShouldEmit("#define FOO 1\n"))

	second := NewRun()
	assert.True(t, second.ownOutput.ShouldEmit("#define FOO 1\n"))
}
