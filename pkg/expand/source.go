// Package expand - source range reading
package expand

import (
	"errors"
	"os"
)

var errInvertedRange = errors.New("range end precedes start")

// ReadRange returns the exact bytes of path in [start, end). The file is
// opened, read, and closed within the call; the bytes are copied opaquely
// with no decoding. A short read counts as a failure.
func ReadRange(path string, start, end uint) ([]byte, error) {
	if end < start {
		return nil, &SourceRangeReadError{Path: path, Start: start, End: end, Err: errInvertedRange}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceRangeReadError{Path: path, Start: start, End: end, Err: err}
	}
	defer f.Close()

	buf := make([]byte, end-start)
	if _, err := f.ReadAt(buf, int64(start)); err != nil {
		return nil, &SourceRangeReadError{Path: path, Start: start, End: end, Err: err}
	}
	return buf, nil
}
