package filter

import (
	"io/fs"
	"os"
	"path/filepath"
)

type typeFilter struct {
	dir  bool
	name string
}

var _ Filter = (*typeFilter)(nil)

var (
	// Dirs accepts directories only.
	Dirs Filter = &typeFilter{dir: true, name: "Dirs"}

	// Files accepts regular files only. Symlinks, devices and other
	// special files are rejected.
	Files Filter = &typeFilter{dir: false, name: "Files"}
)

// Accept judges the item itself without following symlinks, matching the
// entry shape.
func (t *typeFilter) Accept(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	if t.dir {
		return info.IsDir()
	}
	return info.Mode().IsRegular()
}

func (t *typeFilter) AcceptName(dir, name string) bool {
	return t.Accept(filepath.Join(dir, name))
}

// AcceptEntry uses the entry's type bits, so no extra metadata read is
// needed.
func (t *typeFilter) AcceptEntry(path string, entry fs.DirEntry) (VisitResult, error) {
	if t.dir {
		return verdict(entry.IsDir()), nil
	}
	return verdict(entry.Type().IsRegular()), nil
}

func (t *typeFilter) String() string {
	return t.name
}
