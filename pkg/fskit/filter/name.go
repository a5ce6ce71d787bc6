package filter

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

// baseName returns the final element of p with OS separators normalized,
// so the name filters behave the same for slash paths and native paths.
func baseName(p string) string {
	return path.Base(filepath.ToSlash(p))
}

type nameFilter struct {
	names []string
}

var _ Filter = (*nameFilter)(nil)

// Name matches items whose base name equals any of names.
func Name(names ...string) Filter {
	f := &nameFilter{names: make([]string, len(names))}
	copy(f.names, names)
	return f
}

func (f *nameFilter) matches(name string) bool {
	for _, n := range f.names {
		if name == n {
			return true
		}
	}
	return false
}

func (f *nameFilter) Accept(path string) bool {
	return f.matches(baseName(path))
}

func (f *nameFilter) AcceptName(dir, name string) bool {
	return f.matches(name)
}

func (f *nameFilter) AcceptEntry(path string, entry fs.DirEntry) (VisitResult, error) {
	return verdict(f.matches(entry.Name())), nil
}

func (f *nameFilter) String() string {
	return "Name(" + strings.Join(f.names, ",") + ")"
}

type prefixFilter struct {
	prefixes []string
}

var _ Filter = (*prefixFilter)(nil)

// Prefix matches items whose base name starts with any of prefixes.
func Prefix(prefixes ...string) Filter {
	f := &prefixFilter{prefixes: make([]string, len(prefixes))}
	copy(f.prefixes, prefixes)
	return f
}

func (f *prefixFilter) matches(name string) bool {
	for _, p := range f.prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

func (f *prefixFilter) Accept(path string) bool {
	return f.matches(baseName(path))
}

func (f *prefixFilter) AcceptName(dir, name string) bool {
	return f.matches(name)
}

func (f *prefixFilter) AcceptEntry(path string, entry fs.DirEntry) (VisitResult, error) {
	return verdict(f.matches(entry.Name())), nil
}

func (f *prefixFilter) String() string {
	return "Prefix(" + strings.Join(f.prefixes, ",") + ")"
}

type suffixFilter struct {
	suffixes []string
}

var _ Filter = (*suffixFilter)(nil)

// Suffix matches items whose base name ends with any of suffixes. Passing
// an extension such as ".go" matches files of that type.
func Suffix(suffixes ...string) Filter {
	f := &suffixFilter{suffixes: make([]string, len(suffixes))}
	copy(f.suffixes, suffixes)
	return f
}

func (f *suffixFilter) matches(name string) bool {
	for _, s := range f.suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

func (f *suffixFilter) Accept(path string) bool {
	return f.matches(baseName(path))
}

func (f *suffixFilter) AcceptName(dir, name string) bool {
	return f.matches(name)
}

func (f *suffixFilter) AcceptEntry(path string, entry fs.DirEntry) (VisitResult, error) {
	return verdict(f.matches(entry.Name())), nil
}

func (f *suffixFilter) String() string {
	return "Suffix(" + strings.Join(f.suffixes, ",") + ")"
}
