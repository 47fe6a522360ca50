package expand

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRangeExactBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "h.h")
	content := "#define FOO 1\nint x;\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	got, err := ReadRange(path, 8, 13)
	require.NoError(t, err)
	assert.Equal(t, "FOO 1", string(got))

	whole, err := ReadRange(path, 0, uint(len(content)))
	require.NoError(t, err)
	assert.Equal(t, content, string(whole))
}

func TestReadRangeMissingFile(t *testing.T) {
	_, err := ReadRange(filepath.Join(t.TempDir(), "gone.h"), 0, 4)

	var rangeErr *SourceRangeReadError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, uint(0), rangeErr.Start)
	assert.Equal(t, uint(4), rangeErr.End)
}

func TestReadRangePastEOF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.h")
	require.NoError(t, os.WriteFile(path, []byte("int x;"), 0644))

	_, err := ReadRange(path, 0, 100)
	var rangeErr *SourceRangeReadError
	assert.True(t, errors.As(err, &rangeErr))
}

func TestReadRangeInverted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "h.h")
	require.NoError(t, os.WriteFile(path, []byte("int x;"), 0644))

	_, err := ReadRange(path, 5, 2)
	var rangeErr *SourceRangeReadError
	assert.True(t, errors.As(err, &rangeErr))
}
