package filter

import (
	"io/fs"
	"path/filepath"
	"strings"
)

type hiddenFilter struct{}

var _ Filter = (*hiddenFilter)(nil)

// Hidden accepts items whose base name starts with a dot. The special
// names "." and ".." are not considered hidden.
var Hidden Filter = &hiddenFilter{}

func isHiddenName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}

func (h *hiddenFilter) Accept(path string) bool {
	return isHiddenName(baseName(path))
}

func (h *hiddenFilter) AcceptName(dir, name string) bool {
	return isHiddenName(name)
}

func (h *hiddenFilter) AcceptEntry(path string, entry fs.DirEntry) (VisitResult, error) {
	return verdict(isHiddenName(entry.Name())), nil
}

func (h *hiddenFilter) String() string {
	return "Hidden"
}

type skipHiddenFilter struct{}

var _ Filter = (*skipHiddenFilter)(nil)

// SkipHidden accepts items with no hidden segment anywhere in their path.
// Walked directly, it answers SkipDir for hidden directories so the walk
// never descends into them; inside a composite the subtree is still
// excluded entry by entry.
var SkipHidden Filter = &skipHiddenFilter{}

func hasHiddenSegment(p string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(p), "/") {
		if isHiddenName(seg) {
			return true
		}
	}
	return false
}

func (s *skipHiddenFilter) Accept(path string) bool {
	return !hasHiddenSegment(path)
}

func (s *skipHiddenFilter) AcceptName(dir, name string) bool {
	return !hasHiddenSegment(filepath.Join(dir, name))
}

func (s *skipHiddenFilter) AcceptEntry(path string, entry fs.DirEntry) (VisitResult, error) {
	if !hasHiddenSegment(path) {
		return Continue, nil
	}
	if entry.IsDir() {
		return SkipDir, nil
	}
	return Terminate, nil
}

func (s *skipHiddenFilter) String() string {
	return "SkipHidden"
}
