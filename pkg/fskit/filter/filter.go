// Package filter provides composable accept/reject predicates for
// filesystem items.
//
// A filter can be consulted through three shapes: by path alone, by a
// directory plus a base name, and by a walked directory entry with its
// metadata. The composite filters (And, Or, NewNot) combine other filters
// with short-circuit evaluation, and the walk helpers (Find, WalkDirFunc,
// List) apply filters to fs.FS trees.
package filter

import (
	"fmt"
	"io/fs"
)

// PathFilter judges an item by its path alone.
type PathFilter interface {
	// Accept reports whether the item at path passes the filter.
	Accept(path string) bool
}

// NameFilter judges a directory entry by its parent directory and base
// name, the shape produced by directory listings.
type NameFilter interface {
	// AcceptName reports whether the entry name in directory dir passes
	// the filter.
	AcceptName(dir, name string) bool
}

// EntryFilter judges a directory entry during a walk, with access to the
// entry's metadata. Reading metadata can fail, so this shape can return an
// error; composites propagate it to the caller unchanged.
type EntryFilter interface {
	// AcceptEntry returns the verdict for the entry at path. Continue
	// accepts the entry; any other result rejects it.
	AcceptEntry(path string, entry fs.DirEntry) (VisitResult, error)
}

// Filter is the full three-shape interface implemented by every filter in
// this package, along with a display string for logs and composite
// rendering. The shapes agree with each other: a filter that accepts a
// path through Accept gives the same answer through the other two shapes,
// up to the metadata available to each.
type Filter interface {
	PathFilter
	NameFilter
	EntryFilter
	fmt.Stringer
}
