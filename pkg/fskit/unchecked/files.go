package unchecked

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Create is os.Create without the error return.
func Create(name string) *os.File {
	return Must(os.Create(name))
}

// Open is os.Open without the error return.
func Open(name string) *os.File {
	return Must(os.Open(name))
}

// OpenFile is os.OpenFile without the error return.
func OpenFile(name string, flag int, perm fs.FileMode) *os.File {
	return Must(os.OpenFile(name, flag, perm))
}

// CreateTemp is os.CreateTemp without the error return.
func CreateTemp(dir, pattern string) *os.File {
	return Must(os.CreateTemp(dir, pattern))
}

// ReadFile returns the contents of the named file.
func ReadFile(name string) []byte {
	return Must(os.ReadFile(name))
}

// ReadLines returns the contents of the named file split into lines,
// without their line endings. An empty file yields nil.
func ReadLines(name string) []string {
	data := ReadFile(name)
	if len(data) == 0 {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// WriteFile writes data to the named file, creating it if necessary.
func WriteFile(name string, data []byte, perm fs.FileMode) {
	Check(os.WriteFile(name, data, perm))
}

// ReadDir returns the entries of the named directory, sorted by name.
func ReadDir(name string) []fs.DirEntry {
	return Must(os.ReadDir(name))
}

// Mkdir is os.Mkdir without the error return.
func Mkdir(name string, perm fs.FileMode) {
	Check(os.Mkdir(name, perm))
}

// MkdirAll is os.MkdirAll without the error return.
func MkdirAll(path string, perm fs.FileMode) {
	Check(os.MkdirAll(path, perm))
}

// MkdirTemp creates a fresh temporary directory and returns its path.
func MkdirTemp(dir, pattern string) string {
	return Must(os.MkdirTemp(dir, pattern))
}

// Remove is os.Remove without the error return.
func Remove(name string) {
	Check(os.Remove(name))
}

// RemoveAll is os.RemoveAll without the error return.
func RemoveAll(path string) {
	Check(os.RemoveAll(path))
}

// RemoveIfExists removes the named file and reports whether it existed.
// Unlike Remove, a missing file is not an error.
func RemoveIfExists(name string) bool {
	err := os.Remove(name)
	if errors.Is(err, fs.ErrNotExist) {
		return false
	}
	Check(err)
	return true
}

// Rename is os.Rename without the error return.
func Rename(oldpath, newpath string) {
	Check(os.Rename(oldpath, newpath))
}

// Stat is os.Stat without the error return.
func Stat(name string) fs.FileInfo {
	return Must(os.Stat(name))
}

// Lstat is os.Lstat without the error return.
func Lstat(name string) fs.FileInfo {
	return Must(os.Lstat(name))
}

// Size returns the size of the named file in bytes.
func Size(name string) int64 {
	return Stat(name).Size()
}

// SameFile reports whether the two named files are the same file, as by
// os.SameFile.
func SameFile(name1, name2 string) bool {
	return os.SameFile(Stat(name1), Stat(name2))
}

// Symlink is os.Symlink without the error return.
func Symlink(oldname, newname string) {
	Check(os.Symlink(oldname, newname))
}

// Readlink returns the destination of the named symbolic link.
func Readlink(name string) string {
	return Must(os.Readlink(name))
}

// Link is os.Link without the error return.
func Link(oldname, newname string) {
	Check(os.Link(oldname, newname))
}

// Chmod is os.Chmod without the error return.
func Chmod(name string, mode fs.FileMode) {
	Check(os.Chmod(name, mode))
}

// Chtimes is os.Chtimes without the error return.
func Chtimes(name string, atime, mtime time.Time) {
	Check(os.Chtimes(name, atime, mtime))
}

// Truncate is os.Truncate without the error return.
func Truncate(name string, size int64) {
	Check(os.Truncate(name, size))
}

// Getwd returns the current working directory.
func Getwd() string {
	return Must(os.Getwd())
}

// Abs returns the absolute form of path.
func Abs(path string) string {
	return Must(filepath.Abs(path))
}

// Glob returns the names matching pattern, as by filepath.Glob.
func Glob(pattern string) []string {
	return Must(filepath.Glob(pattern))
}

// WalkDir walks the tree rooted at root on the host filesystem, panicking
// when the walk fails.
func WalkDir(root string, fn fs.WalkDirFunc) {
	Check(filepath.WalkDir(root, fn))
}
