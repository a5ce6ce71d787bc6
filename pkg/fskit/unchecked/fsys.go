package unchecked

import (
	"io"
	"io/fs"
	"os"
)

// ReadAll returns everything read from r.
func ReadAll(r io.Reader) []byte {
	return Must(io.ReadAll(r))
}

// Copy copies from src to dst and returns the number of bytes copied.
func Copy(dst io.Writer, src io.Reader) int64 {
	return Must(io.Copy(dst, src))
}

// CopyFS copies the filesystem fsys into the host directory dir, as by
// os.CopyFS.
func CopyFS(dir string, fsys fs.FS) {
	Check(os.CopyFS(dir, fsys))
}

// ReadFileFS is fs.ReadFile without the error return.
func ReadFileFS(fsys fs.FS, name string) []byte {
	return Must(fs.ReadFile(fsys, name))
}

// StatFS is fs.Stat without the error return.
func StatFS(fsys fs.FS, name string) fs.FileInfo {
	return Must(fs.Stat(fsys, name))
}

// ReadDirFS is fs.ReadDir without the error return.
func ReadDirFS(fsys fs.FS, name string) []fs.DirEntry {
	return Must(fs.ReadDir(fsys, name))
}

// GlobFS is fs.Glob without the error return.
func GlobFS(fsys fs.FS, pattern string) []string {
	return Must(fs.Glob(fsys, pattern))
}

// SubFS returns the subtree of fsys rooted at dir, as by fs.Sub.
func SubFS(fsys fs.FS, dir string) fs.FS {
	return Must(fs.Sub(fsys, dir))
}

// WalkDirFS walks fsys from root, panicking when the walk fails.
func WalkDirFS(fsys fs.FS, root string, fn fs.WalkDirFunc) {
	Check(fs.WalkDir(fsys, root, fn))
}
