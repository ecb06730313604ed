// Package scan finds metrology files under a directory.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// Options controls a scan.
type Options struct {
	Extensions []string // compared case-insensitively, with the leading dot
	IgnoreFile string   // name of a gitignore-syntax file in the root; empty disables
	Recursive  bool
}

// Find returns the absolute paths of matching files under root, sorted.
func Find(root string, opts Options) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", root, err)
	}
	st, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", abs)
	}

	ignored, err := loadIgnore(abs, opts.IgnoreFile)
	if err != nil {
		return nil, err
	}
	exts := make(map[string]bool, len(opts.Extensions))
	for _, e := range opts.Extensions {
		exts[normalizeExt(e)] = true
	}

	var out []string
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == abs {
			return nil
		}
		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if !opts.Recursive || (ignored != nil && ignored.MatchesPath(rel+"/")) {
				return filepath.SkipDir
			}
			return nil
		}
		if ignored != nil && ignored.MatchesPath(rel) {
			return nil
		}
		if exts[strings.ToLower(filepath.Ext(path))] {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(out)
	return out, nil
}

// Match reports whether path has one of the extensions.
func Match(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if normalizeExt(e) == ext {
			return true
		}
	}
	return false
}

func normalizeExt(e string) string {
	e = strings.ToLower(strings.TrimSpace(e))
	if e != "" && !strings.HasPrefix(e, ".") {
		e = "." + e
	}
	return e
}

func loadIgnore(root, name string) (*ignore.GitIgnore, error) {
	if name == "" {
		return nil, nil
	}
	ignorePath := filepath.Join(root, name)
	if _, err := os.Stat(ignorePath); err == nil {
		ignored, err := ignore.CompileIgnoreFile(ignorePath)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", name, err)
		}
		return ignored, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error checking for %s: %w", name, err)
	}
	return nil, nil
}
