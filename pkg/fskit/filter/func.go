package filter

import (
	"io/fs"
	"path/filepath"
)

type funcFilter struct {
	name string
	fn   func(path string) bool
}

var _ Filter = (*funcFilter)(nil)

// FromFunc adapts a path predicate into a Filter. The name appears in the
// display string. The directory/name shape joins its arguments before
// calling fn, and the entry shape applies fn to the walked path.
func FromFunc(name string, fn func(path string) bool) Filter {
	return &funcFilter{name: name, fn: fn}
}

func (f *funcFilter) Accept(path string) bool {
	return f.fn(path)
}

func (f *funcFilter) AcceptName(dir, name string) bool {
	return f.fn(filepath.Join(dir, name))
}

func (f *funcFilter) AcceptEntry(path string, entry fs.DirEntry) (VisitResult, error) {
	return verdict(f.fn(path)), nil
}

func (f *funcFilter) String() string {
	return f.name
}
