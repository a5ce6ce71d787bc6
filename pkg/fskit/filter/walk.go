package filter

import (
	"io/fs"
)

// Find walks fsys from root and returns the paths whose verdict from f is
// Continue, in walk order. A SkipDir verdict on a directory prunes its
// subtree, a SkipAll verdict ends the walk with the matches collected so
// far, and a Terminate verdict drops the entry while the walk goes on.
// Filter errors abort the walk, as do errors from the walk itself.
func Find(fsys fs.FS, root string, f EntryFilter) ([]string, error) {
	var matches []string
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		result, err := f.AcceptEntry(p, d)
		if err != nil {
			return err
		}
		switch result {
		case Continue:
			matches = append(matches, p)
		case SkipDir:
			if d.IsDir() {
				return fs.SkipDir
			}
		case SkipAll:
			return fs.SkipAll
		}
		return nil
	})
	return matches, err
}

// WalkDirFunc wraps fn so that only entries f accepts reach it. Walk
// errors pass through to fn untouched so it can decide how to handle
// them. SkipDir and SkipAll verdicts become the matching fs controls, a
// Terminate verdict drops the entry, and filter errors abort the walk.
func WalkDirFunc(f EntryFilter, fn fs.WalkDirFunc) fs.WalkDirFunc {
	return func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fn(p, d, walkErr)
		}
		result, err := f.AcceptEntry(p, d)
		if err != nil {
			return err
		}
		switch result {
		case Continue:
			return fn(p, d, nil)
		case SkipDir:
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		case SkipAll:
			return fs.SkipAll
		default:
			return nil
		}
	}
}

// List reads the directory dir within fsys and returns the names f
// accepts, in directory order.
func List(fsys fs.FS, dir string, f NameFilter) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
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

// FilterPaths returns the members of paths accepted by f, preserving
// order. The input slice is not modified.
func FilterPaths(paths []string, f PathFilter) []string {
	var out []string
	for _, p := range paths {
		if f.Accept(p) {
			out = append(out, p)
		}
	}
	return out
}
