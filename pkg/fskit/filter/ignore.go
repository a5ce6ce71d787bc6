package filter

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/denormal/go-gitignore"
)

type ignoreFilter struct {
	rules  gitignore.GitIgnore
	base   string
	source string
}

var _ Filter = (*ignoreFilter)(nil)

// NewIgnore compiles gitignore rules from r and returns a filter that
// accepts items the rules do not ignore. Paths are matched relative to
// base; paths outside base are accepted, since the rules do not govern
// them. Relative paths are taken as already relative to base.
func NewIgnore(r io.Reader, base string) (Filter, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ignore rules: %w", err)
	}
	rules := gitignore.New(bytes.NewReader(data), base, nil)
	return &ignoreFilter{rules: rules, base: base, source: "rules"}, nil
}

// NewIgnoreFile loads gitignore rules from the file at path. Matching is
// relative to the file's directory, as git itself would apply them.
func NewIgnoreFile(path string) (Filter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ignore file: %w", err)
	}
	base := filepath.Dir(path)
	rules := gitignore.New(bytes.NewReader(data), base, nil)
	return &ignoreFilter{rules: rules, base: base, source: filepath.Base(path)}, nil
}

// rel maps p onto the rule base. The second result is false when p lies
// outside the base and the rules therefore do not apply.
func (ig *ignoreFilter) rel(p string) (string, bool) {
	if filepath.IsAbs(p) {
		r, err := filepath.Rel(ig.base, p)
		if err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
			return "", false
		}
		p = r
	}
	return filepath.ToSlash(p), true
}

func (ig *ignoreFilter) ignored(p string, isDir bool) bool {
	rel, ok := ig.rel(p)
	if !ok || rel == "." {
		return false
	}
	if match := ig.rules.Relative(rel, isDir); match != nil {
		return match.Ignore()
	}
	return false
}

func (ig *ignoreFilter) Accept(path string) bool {
	return !ig.ignored(path, false)
}

func (ig *ignoreFilter) AcceptName(dir, name string) bool {
	return !ig.ignored(filepath.Join(dir, name), false)
}

func (ig *ignoreFilter) AcceptEntry(path string, entry fs.DirEntry) (VisitResult, error) {
	return verdict(!ig.ignored(path, entry.IsDir())), nil
}

func (ig *ignoreFilter) String() string {
	return fmt.Sprintf("Ignore(%s)", ig.source)
}
