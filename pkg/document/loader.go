package document

import (
	"fmt"
	"os"
	"path/filepath"
)

// Cache memoizes loaded Markdown files by canonical absolute path for
// the lifetime of a run. Entries are never invalidated or reloaded;
// files are assumed immutable during a single invocation. The cache is
// an explicit object owned by the orchestrating component, not a hidden
// singleton, and requires no locking while execution stays
// single-threaded.
type Cache struct {
	entries map[string]*LoadedFile
}

// NewCache creates an empty loader cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]*LoadedFile),
	}
}

// Load returns the parsed representation of the file at path, reading
// and parsing it on first access and serving the cached result on every
// subsequent one.
//
// path must already be absolute and canonical; passing anything else is
// a programming-contract violation reported as an internal error, not a
// user-facing diagnostic.
func (c *Cache) Load(path string) (*LoadedFile, error) {
	if !filepath.IsAbs(path) {
		return nil, fmt.Errorf("internal error: loader requires an absolute path, got %q", path)
	}

	if loaded, ok := c.entries[path]; ok {
		return loaded, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc := Parse(path, content)
	loaded := &LoadedFile{
		Doc:        doc,
		HeadingIDs: doc.HeadingIDs(),
	}

	c.entries[path] = loaded

	return loaded, nil
}

// Len returns the number of distinct files parsed so far. Read at the
// end of a run to report how many files were parsed only because they
// were referenced, beyond the ones explicitly checked.
func (c *Cache) Len() int {
	return len(c.entries)
}
