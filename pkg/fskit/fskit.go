// Package fskit is a toolkit for filesystem selection and plumbing. It
// bundles composable filters, walk helpers that apply them to real or
// in-memory trees, and panic-based wrappers for contexts where error
// returns get in the way.
package fskit

import (
	"os"

	"github.com/arthur-debert/fskit/pkg/fskit/filesystem"
	"github.com/arthur-debert/fskit/pkg/fskit/filter"
)

// Find walks the tree rooted at root on the host filesystem and returns
// the paths accepted by f, relative to root in io/fs form. The root
// itself appears as "." when accepted.
func Find(root string, f filter.EntryFilter) ([]string, error) {
	return filter.Find(filesystem.NewOSFileSystem(root), ".", f)
}

// List returns the names in the host directory dir accepted by f, in
// directory order.
func List(dir string, f filter.NameFilter) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if f.AcceptName(dir, entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
