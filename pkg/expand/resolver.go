// Package expand - header reference resolution
package expand

import (
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultIncludeDirs is the fixed system include search list used when no
// configuration overrides it.
var DefaultIncludeDirs = []string{"/usr/include"}

// resolverCacheSize bounds the reference -> path memoization cache.
const resolverCacheSize = 256

// Resolver maps textual header references to concrete file paths. A
// reference that names an existing file relative to the working context
// resolves to itself; otherwise it is joined against each include
// directory in order and the first existing candidate wins. The mapping is
// pure within one process run, so results are memoized.
type Resolver struct {
	includeDirs []string
	cache       *lru.Cache[string, string]
}

// NewResolver creates a resolver over the given search list; nil selects
// DefaultIncludeDirs.
func NewResolver(includeDirs []string) *Resolver {
	if includeDirs == nil {
		includeDirs = DefaultIncludeDirs
	}
	cache, _ := lru.New[string, string](resolverCacheSize)
	return &Resolver{includeDirs: includeDirs, cache: cache}
}

// Resolve returns the first existing candidate for ref, or a
// HeaderNotFoundError when the search list is exhausted.
func (r *Resolver) Resolve(ref string) (string, error) {
	if path, ok := r.cache.Get(ref); ok {
		return path, nil
	}

	if fileExists(ref) {
		r.cache.Add(ref, ref)
		return ref, nil
	}

	searched := make([]string, 0, len(r.includeDirs))
	for _, dir := range r.includeDirs {
		searched = append(searched, dir)
		candidate := filepath.Join(dir, ref)
		if fileExists(candidate) {
			r.cache.Add(ref, candidate)
			return candidate, nil
		}
	}

	return "", &HeaderNotFoundError{Ref: ref, Searched: searched}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
