package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
)

// OSFileSystem exposes one directory of the host filesystem through the
// FullFileSystem interface. Names follow io/fs conventions: slash
// separated, relative to the root, with "." naming the root itself.
type OSFileSystem struct {
	root string
}

// NewOSFileSystem creates an OS-backed filesystem rooted at the given
// path.
func NewOSFileSystem(root string) *OSFileSystem {
	return &OSFileSystem{root: root}
}

// resolve validates name against io/fs path rules and maps it to a host
// path under the root. Invalid names fail with fs.ErrInvalid inside a
// *fs.PathError.
func (osfs *OSFileSystem) resolve(op, name string) (string, error) {
	if !fs.ValidPath(name) {
		return "", &fs.PathError{Op: op, Path: name, Err: fs.ErrInvalid}
	}
	return filepath.Join(osfs.root, filepath.FromSlash(name)), nil
}

// Open implements fs.FS.
func (osfs *OSFileSystem) Open(name string) (fs.File, error) {
	path, err := osfs.resolve("open", name)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

// Stat implements StatFS.
func (osfs *OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	path, err := osfs.resolve("stat", name)
	if err != nil {
		return nil, err
	}
	return os.Stat(path)
}

// ReadDir implements fs.ReadDirFS, so walks list directories directly.
func (osfs *OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	path, err := osfs.resolve("readdir", name)
	if err != nil {
		return nil, err
	}
	return os.ReadDir(path)
}

// WriteFile implements WriteFS.
func (osfs *OSFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	path, err := osfs.resolve("writefile", name)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, perm)
}

// MkdirAll implements WriteFS.
func (osfs *OSFileSystem) MkdirAll(name string, perm fs.FileMode) error {
	path, err := osfs.resolve("mkdirall", name)
	if err != nil {
		return err
	}
	return os.MkdirAll(path, perm)
}

// Remove implements WriteFS.
func (osfs *OSFileSystem) Remove(name string) error {
	path, err := osfs.resolve("remove", name)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

// RemoveAll implements WriteFS.
func (osfs *OSFileSystem) RemoveAll(name string) error {
	path, err := osfs.resolve("removeall", name)
	if err != nil {
		return err
	}
	return os.RemoveAll(path)
}

// Rename implements WriteFS.
func (osfs *OSFileSystem) Rename(oldpath, newpath string) error {
	oldFull, err := osfs.resolve("rename", oldpath)
	if err != nil {
		return err
	}
	newFull, err := osfs.resolve("rename", newpath)
	if err != nil {
		return err
	}
	return os.Rename(oldFull, newFull)
}
