package filesystem

import (
	"io/fs"
	"testing"
	"testing/fstest"
)

// TestFileSystem backs the FullFileSystem interface with an in-memory
// fstest.MapFS, giving tests a writable tree that never touches disk.
// Reads, Stat and ReadDir come from the embedded MapFS.
type TestFileSystem struct {
	fstest.MapFS
}

// NewTestFileSystem creates an empty in-memory filesystem.
func NewTestFileSystem() *TestFileSystem {
	return &TestFileSystem{
		MapFS: make(fstest.MapFS),
	}
}

// NewTestFileSystemFromMap creates an in-memory filesystem over an
// existing map.
func NewTestFileSystemFromMap(files map[string]*fstest.MapFile) *TestFileSystem {
	return &TestFileSystem{
		MapFS: files,
	}
}

// WriteFile stores data under name, replacing any existing entry.
func (tfs *TestFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if !fs.ValidPath(name) {
		return &fs.PathError{Op: "writefile", Path: name, Err: fs.ErrInvalid}
	}
	tfs.MapFS[name] = &fstest.MapFile{
		Data: data,
		Mode: perm,
	}
	return nil
}

// MkdirAll records a directory entry. MapFS already treats path prefixes
// as implicit directories, so an explicit entry matters only for empty
// directories and their modes.
func (tfs *TestFileSystem) MkdirAll(name string, perm fs.FileMode) error {
	if !fs.ValidPath(name) {
		return &fs.PathError{Op: "mkdirall", Path: name, Err: fs.ErrInvalid}
	}
	tfs.MapFS[name] = &fstest.MapFile{
		Mode: perm | fs.ModeDir,
	}
	return nil
}

// Remove deletes a single entry.
func (tfs *TestFileSystem) Remove(name string) error {
	if !fs.ValidPath(name) {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrInvalid}
	}
	if _, exists := tfs.MapFS[name]; !exists {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	delete(tfs.MapFS, name)
	return nil
}

// RemoveAll deletes an entry and everything beneath it. Removing a path
// that does not exist is not an error, matching os.RemoveAll.
func (tfs *TestFileSystem) RemoveAll(name string) error {
	if !fs.ValidPath(name) {
		return &fs.PathError{Op: "removeall", Path: name, Err: fs.ErrInvalid}
	}
	for path := range tfs.MapFS {
		if path == name || isSubPath(name, path) {
			delete(tfs.MapFS, path)
		}
	}
	return nil
}

// Rename moves an entry to a new name. The destination must not already
// exist.
func (tfs *TestFileSystem) Rename(oldpath, newpath string) error {
	if !fs.ValidPath(oldpath) || !fs.ValidPath(newpath) {
		return &fs.PathError{Op: "rename", Path: newpath, Err: fs.ErrInvalid}
	}
	file, exists := tfs.MapFS[oldpath]
	if !exists {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: fs.ErrNotExist}
	}
	if _, exists := tfs.MapFS[newpath]; exists {
		return &fs.PathError{Op: "rename", Path: newpath, Err: fs.ErrExist}
	}
	tfs.MapFS[newpath] = file
	delete(tfs.MapFS, oldpath)
	return nil
}

// isSubPath returns true if child lies beneath parent.
func isSubPath(parent, child string) bool {
	if parent == "" || parent == "." {
		return true
	}
	if child == parent {
		return true
	}
	if len(child) <= len(parent) {
		return false
	}
	return child[:len(parent)+1] == parent+"/"
}

// TestHelper bundles a fresh TestFileSystem with fixture and assertion
// shortcuts for tests built on it.
type TestHelper struct {
	t  *testing.T
	fs *TestFileSystem
}

// NewTestHelper creates a helper around an empty filesystem.
func NewTestHelper(t *testing.T) *TestHelper {
	return &TestHelper{
		t:  t,
		fs: NewTestFileSystem(),
	}
}

// NewTestHelperWithFiles creates a helper around predefined files.
func NewTestHelperWithFiles(t *testing.T, files map[string]*fstest.MapFile) *TestHelper {
	return &TestHelper{
		t:  t,
		fs: NewTestFileSystemFromMap(files),
	}
}

// FileSystem returns the helper's filesystem.
func (th *TestHelper) FileSystem() *TestFileSystem {
	return th.fs
}

// WriteFile writes a file and fails the test on error.
func (th *TestHelper) WriteFile(name string, data []byte, perm fs.FileMode) {
	th.t.Helper()
	if err := th.fs.WriteFile(name, data, perm); err != nil {
		th.t.Fatalf("Failed to write file %s: %v", name, err)
	}
}

// MkdirAll creates a directory and fails the test on error.
func (th *TestHelper) MkdirAll(name string, perm fs.FileMode) {
	th.t.Helper()
	if err := th.fs.MkdirAll(name, perm); err != nil {
		th.t.Fatalf("Failed to create directory %s: %v", name, err)
	}
}

// ReadFile reads a file and fails the test on error.
func (th *TestHelper) ReadFile(name string) []byte {
	th.t.Helper()
	data, err := fs.ReadFile(th.fs, name)
	if err != nil {
		th.t.Fatalf("Failed to read file %s: %v", name, err)
	}
	return data
}

// FileExists checks if a file exists.
func (th *TestHelper) FileExists(name string) bool {
	_, err := th.fs.Stat(name)
	return err == nil
}

// AssertFileContent checks that a file has the expected content.
func (th *TestHelper) AssertFileContent(name string, expected []byte) {
	th.t.Helper()
	actual := th.ReadFile(name)
	if string(actual) != string(expected) {
		th.t.Errorf("File %s content mismatch:\nExpected: %q\nActual: %q", name, expected, actual)
	}
}

// AssertFileNotExists checks that a file does not exist.
func (th *TestHelper) AssertFileNotExists(name string) {
	th.t.Helper()
	if th.FileExists(name) {
		th.t.Errorf("Expected file %s to not exist, but it does", name)
	}
}
