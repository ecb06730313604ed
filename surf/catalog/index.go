package catalog

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/armon/go-radix"
)

// PathIndex maps file paths to their catalog entries in a patricia tree,
// so prefix queries cost O(prefix) plus the matches.
type PathIndex struct {
	mu   sync.RWMutex
	tree *radix.Tree
}

func NewPathIndex() *PathIndex {
	return &PathIndex{tree: radix.New()}
}

func normalizePath(p string) string {
	if p == "" {
		return ""
	}
	return filepath.ToSlash(filepath.Clean(p))
}

// Put replaces the entries stored for path.
func (idx *PathIndex) Put(path string, entries []Entry) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	if len(entries) == 0 {
		idx.tree.Delete(normalizePath(path))
		return
	}
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	idx.tree.Insert(normalizePath(path), cp)
}

// Add appends one entry under its path.
func (idx *PathIndex) Add(e Entry) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	key := normalizePath(e.Path)
	var list []Entry
	if v, ok := idx.tree.Get(key); ok {
		list = v.([]Entry)
	}
	idx.tree.Insert(key, append(list, e))
}

// Remove drops path and reports whether it was present.
func (idx *PathIndex) Remove(path string) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	_, ok := idx.tree.Delete(normalizePath(path))
	return ok
}

// Get returns the entries of one path.
func (idx *PathIndex) Get(path string) []Entry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	v, ok := idx.tree.Get(normalizePath(path))
	if !ok {
		return nil
	}
	list := v.([]Entry)
	out := make([]Entry, len(list))
	copy(out, list)
	return out
}

// Prefix returns the entries of every path under prefix, in path order.
// A prefix ending in a separator only matches whole directory names.
func (idx *PathIndex) Prefix(prefix string) []Entry {
	key := filepath.ToSlash(prefix)
	if key != "" && !strings.HasSuffix(key, "/") {
		key = normalizePath(key)
	}
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	var out []Entry
	idx.tree.WalkPrefix(key, func(_ string, v interface{}) bool {
		out = append(out, v.([]Entry)...)
		return false
	})
	return out
}

// Len is the number of distinct paths.
func (idx *PathIndex) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.tree.Len()
}
