package expand

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hexpand/pkg/frontend"
)

func TestClassifyRules(t *testing.T) {
	classifier := NewClassifier(nil)

	tests := []struct {
		name   string
		cursor *frontend.Cursor
		want   Outcome
	}{
		{
			name:   "deny-list spelling",
			cursor: &frontend.Cursor{Kind: frontend.KindTypedef, Spelling: "va_list"},
			want:   Ignore,
		},
		{
			name:   "predefined entity",
			cursor: &frontend.Cursor{Kind: frontend.KindMacroDefinition, Spelling: "STDC", Predefined: true},
			want:   Ignore,
		},
		{
			name:   "anonymous entity",
			cursor: &frontend.Cursor{Kind: frontend.KindStruct, Spelling: ""},
			want:   Ignore,
		},
		{
			name:   "reserved prefix",
			cursor: &frontend.Cursor{Kind: frontend.KindTypedef, Spelling: "__off_t"},
			want:   Ignore,
		},
		{
			name:   "macro definition",
			cursor: &frontend.Cursor{Kind: frontend.KindMacroDefinition, Spelling: "FOO"},
			want:   ReconstructMacro,
		},
		{
			name:   "plain struct delegates",
			cursor: &frontend.Cursor{Kind: frontend.KindStruct, Spelling: "point"},
			want:   Delegate,
		},
		{
			name:   "plain function delegates",
			cursor: &frontend.Cursor{Kind: frontend.KindFunction, Spelling: "do_work"},
			want:   Delegate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.cursor))
		})
	}
}

// A macro whose spelling carries the reserved prefix must be dropped by the
// prefix rule before the kind rule can see it.
func TestClassifyFilterRulesPrecedeKindRule(t *testing.T) {
	classifier := NewClassifier(nil)
	cursor := &frontend.Cursor{Kind: frontend.KindMacroDefinition, Spelling: "__GNUC_PREREQ"}
	assert.Equal(t, Ignore, classifier.Classify(cursor))
}

func TestClassifyExtraDenyNames(t *testing.T) {
	classifier := NewClassifier([]string{"wchar_t"})
	cursor := &frontend.Cursor{Kind: frontend.KindTypedef, Spelling: "wchar_t"}
	assert.Equal(t, Ignore, classifier.Classify(cursor))
}
