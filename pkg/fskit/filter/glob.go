package filter

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

type globFilter struct {
	patterns []string
}

var _ Filter = (*globFilter)(nil)

// Glob matches the slash form of an item's path against doublestar
// patterns, so `**` spans directory levels. A pattern with no slash also
// matches against the base name alone, which lets `*.go` match files at
// any depth. Invalid patterns are rejected up front.
func Glob(patterns ...string) (Filter, error) {
	for _, p := range patterns {
		if _, err := doublestar.Match(p, "a"); err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", p, err)
		}
	}
	f := &globFilter{patterns: make([]string, len(patterns))}
	copy(f.patterns, patterns)
	return f, nil
}

func (g *globFilter) matches(p string) bool {
	p = filepath.ToSlash(p)
	for _, pattern := range g.patterns {
		// Patterns were validated at construction, so Match cannot fail.
		if ok, _ := doublestar.Match(pattern, p); ok {
			return true
		}
		if !strings.Contains(pattern, "/") {
			if ok, _ := doublestar.Match(pattern, path.Base(p)); ok {
				return true
			}
		}
	}
	return false
}

func (g *globFilter) Accept(path string) bool {
	return g.matches(path)
}

func (g *globFilter) AcceptName(dir, name string) bool {
	return g.matches(filepath.Join(dir, name))
}

func (g *globFilter) AcceptEntry(path string, entry fs.DirEntry) (VisitResult, error) {
	return verdict(g.matches(path)), nil
}

func (g *globFilter) String() string {
	return "Glob(" + strings.Join(g.patterns, ",") + ")"
}
