package filter

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
)

type regexFilter struct {
	re *regexp.Regexp
}

var _ Filter = (*regexFilter)(nil)

// Regex matches the slash form of an item's path against a regular
// expression in Go syntax.
func Regex(pattern string) (Filter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("regex filter: %w", err)
	}
	return &regexFilter{re: re}, nil
}

func (r *regexFilter) matches(p string) bool {
	return r.re.MatchString(filepath.ToSlash(p))
}

func (r *regexFilter) Accept(path string) bool {
	return r.matches(path)
}

func (r *regexFilter) AcceptName(dir, name string) bool {
	return r.matches(filepath.Join(dir, name))
}

func (r *regexFilter) AcceptEntry(path string, entry fs.DirEntry) (VisitResult, error) {
	return verdict(r.matches(path)), nil
}

func (r *regexFilter) String() string {
	return fmt.Sprintf("Regex(%s)", r.re)
}
