//file: internal/pathmatch/pathmatch.go

// Package pathmatch expands doublestar glob patterns into file lists,
// filtered through ignore patterns.
package pathmatch

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Match expands pattern and returns the absolute paths of matching
// files, excluding anything matched by an ignore pattern. Directories
// are never returned.
func Match(pattern string, ignore []string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("bad glob pattern %q: %w", pattern, err)
	}

	var files []string
	for _, m := range matches {
		abs, err := filepath.Abs(m)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", m, err)
		}
		if Ignored(abs, ignore) {
			continue
		}
		files = append(files, abs)
	}
	return files, nil
}

// Ignored reports whether path is matched by any ignore pattern. Each
// pattern is tried against the slash-form of the full path, the path
// relative to the working directory, and the base name, so both
// "**/*.test.*" and "fixtures/broken.yaml" behave the way users expect.
func Ignored(path string, ignore []string) bool {
	slashed := filepath.ToSlash(path)
	base := filepath.Base(path)

	rel := slashed
	if wd, err := filepath.Abs("."); err == nil {
		if r, err := filepath.Rel(wd, path); err == nil {
			rel = filepath.ToSlash(r)
		}
	}

	for _, pattern := range ignore {
		for _, candidate := range []string{slashed, rel, base} {
			if ok, err := doublestar.Match(pattern, candidate); err == nil && ok {
				return true
			}
		}
	}
	return false
}

// BaseDirs returns the deepest non-wildcard directory prefix of each
// pattern. The watcher uses these as its recursive watch roots.
func BaseDirs(patterns []string) []string {
	seen := map[string]bool{}
	var dirs []string
	for _, p := range patterns {
		base, _ := doublestar.SplitPattern(filepath.ToSlash(p))
		if base == "" {
			base = "."
		}
		if !seen[base] {
			seen[base] = true
			dirs = append(dirs, filepath.FromSlash(base))
		}
	}
	return dirs
}

// MatchesAny reports whether path matches at least one of the glob
// patterns while not being ignored. The watcher uses this to filter
// raw filesystem events down to relevant files.
func MatchesAny(path string, patterns, ignore []string) bool {
	if Ignored(path, ignore) {
		return false
	}
	slashed := filepath.ToSlash(path)

	rel := slashed
	if wd, err := filepath.Abs("."); err == nil {
		if r, err := filepath.Rel(wd, path); err == nil {
			rel = filepath.ToSlash(r)
		}
	}

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		for _, candidate := range []string{slashed, rel} {
			if ok, err := doublestar.Match(pattern, candidate); err == nil && ok {
				return true
			}
		}
	}
	return false
}
