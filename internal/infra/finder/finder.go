// Package finder scans the project source tree for devices, domains and
// the units they own, and ranks units by name similarity for fuzzy lookups.
package finder

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/vivid-arch/laravel-console/internal/app/layout"
	"github.com/vivid-arch/laravel-console/internal/domain"
	"github.com/vivid-arch/laravel-console/internal/ports"
)

// Finder is read-only: it never writes to the tree it scans.
type Finder struct {
	layout *layout.Layout
	fs     ports.Filesystem
}

var _ ports.UnitFinder = (*Finder)(nil)

func New(l *layout.Layout, fsys ports.Filesystem) *Finder {
	return &Finder{layout: l, fs: fsys}
}

// glob returns the matches of pattern under root as absolute paths, ordered
// shallowest first and then lexically. A missing root yields no matches; any
// other failure to stat it is an error.
func glob(root, pattern string, opts ...doublestar.GlobOption) ([]string, error) {
	info, err := os.Stat(root)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, nil
	case err != nil:
		return nil, &domain.OpError{Op: "finder.glob", Kind: domain.KindExecution, Path: root, Err: err}
	case !info.IsDir():
		return nil, nil
	}

	matches, err := doublestar.Glob(os.DirFS(root), pattern, opts...)
	if err != nil {
		return nil, &domain.OpError{Op: "finder.glob", Kind: domain.KindExecution, Path: root, Err: err}
	}

	slices.SortFunc(matches, func(a, b string) int {
		if d := strings.Count(a, "/") - strings.Count(b, "/"); d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, filepath.Join(root, filepath.FromSlash(m)))
	}
	return out, nil
}

func globFiles(root, pattern string) ([]string, error) {
	return glob(root, pattern, doublestar.WithFilesOnly())
}

// globDirs keeps only the directory matches of pattern.
func globDirs(root, pattern string) ([]string, error) {
	matches, err := glob(root, pattern)
	if err != nil {
		return nil, err
	}
	dirs := matches[:0]
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && info.IsDir() {
			dirs = append(dirs, m)
		}
	}
	return dirs, nil
}

// firstSegment is the top-level directory of path below root.
func firstSegment(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return ""
	}
	seg, _, _ := strings.Cut(filepath.ToSlash(rel), "/")
	return seg
}

func (f *Finder) read(path string) (string, error) {
	b, err := f.fs.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (f *Finder) ext() string { return f.layout.Extension() }
