package filter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

type sizeFilter struct {
	min, max int64
}

var _ Filter = (*sizeFilter)(nil)

// Size matches items whose size in bytes lies in [min, max]. A negative
// max leaves the range unbounded above. Directories match on their
// reported size, which is rarely meaningful; combine with Files when only
// regular files are wanted.
func Size(min, max int64) Filter {
	return &sizeFilter{min: min, max: max}
}

// MinSize matches items of at least n bytes.
func MinSize(n int64) Filter {
	return Size(n, -1)
}

// MaxSize matches items of at most n bytes.
func MaxSize(n int64) Filter {
	return Size(0, n)
}

func (s *sizeFilter) inRange(size int64) bool {
	if size < s.min {
		return false
	}
	if s.max >= 0 && size > s.max {
		return false
	}
	return true
}

// Accept stats path on the host filesystem; items that cannot be statted
// are rejected.
func (s *sizeFilter) Accept(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return s.inRange(info.Size())
}

func (s *sizeFilter) AcceptName(dir, name string) bool {
	return s.Accept(filepath.Join(dir, name))
}

// AcceptEntry reads the entry's metadata. A metadata read failure is
// returned as the error rather than treated as a rejection.
func (s *sizeFilter) AcceptEntry(path string, entry fs.DirEntry) (VisitResult, error) {
	info, err := entry.Info()
	if err != nil {
		return Terminate, err
	}
	return verdict(s.inRange(info.Size())), nil
}

func (s *sizeFilter) String() string {
	if s.max < 0 {
		return fmt.Sprintf("Size(>=%d)", s.min)
	}
	return fmt.Sprintf("Size(%d..%d)", s.min, s.max)
}
