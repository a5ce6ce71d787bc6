package filter_test

import (
	"errors"
	"io/fs"
	"slices"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/fskit/pkg/fskit/filter"
)

// skipFilter returns a fixed verdict for entries with a given name and
// Continue for everything else.
type skipFilter struct {
	name   string
	result filter.VisitResult
}

func (s *skipFilter) AcceptEntry(path string, entry fs.DirEntry) (filter.VisitResult, error) {
	if entry.Name() == s.name {
		return s.result, nil
	}
	return filter.Continue, nil
}

// errEntryFilter fails when it reaches an entry with a given name.
type errEntryFilter struct {
	name string
	err  error
}

func (e *errEntryFilter) AcceptEntry(path string, entry fs.DirEntry) (filter.VisitResult, error) {
	if entry.Name() == e.name {
		return filter.Terminate, e.err
	}
	return filter.Continue, nil
}

func walkFS() fstest.MapFS {
	return fstest.MapFS{
		"README.md":         &fstest.MapFile{Data: []byte("x")},
		"main.go":           &fstest.MapFile{Data: []byte("x")},
		"src/lib.go":        &fstest.MapFile{Data: []byte("x")},
		"src/lib_test.go":   &fstest.MapFile{Data: []byte("x")},
		"vendor/dep/dep.go": &fstest.MapFile{Data: []byte("x")},
	}
}

func TestFind(t *testing.T) {
	t.Run("collects accepted paths in walk order", func(t *testing.T) {
		matches, err := filter.Find(walkFS(), ".", filter.Suffix(".go"))
		if err != nil {
			t.Fatalf("Find failed: %v", err)
		}

		want := []string{"main.go", "src/lib.go", "src/lib_test.go", "vendor/dep/dep.go"}
		if !slices.Equal(matches, want) {
			t.Errorf("Find returned %v, want %v", matches, want)
		}
	})

	t.Run("SkipDir prunes the subtree", func(t *testing.T) {
		matches, err := filter.Find(walkFS(), ".", &skipFilter{name: "vendor", result: filter.SkipDir})
		if err != nil {
			t.Fatalf("Find failed: %v", err)
		}

		want := []string{".", "README.md", "main.go", "src", "src/lib.go", "src/lib_test.go"}
		if !slices.Equal(matches, want) {
			t.Errorf("Find returned %v, want %v", matches, want)
		}
	})

	t.Run("Terminate drops the entry but the walk goes on", func(t *testing.T) {
		matches, err := filter.Find(walkFS(), ".", &skipFilter{name: "README.md", result: filter.Terminate})
		if err != nil {
			t.Fatalf("Find failed: %v", err)
		}

		if slices.Contains(matches, "README.md") {
			t.Error("rejected entry was collected")
		}
		if !slices.Contains(matches, "vendor/dep/dep.go") {
			t.Error("walk did not continue past the rejected entry")
		}
	})

	t.Run("SkipAll ends the walk early", func(t *testing.T) {
		matches, err := filter.Find(walkFS(), ".", &skipFilter{name: "main.go", result: filter.SkipAll})
		if err != nil {
			t.Fatalf("Find failed: %v", err)
		}

		want := []string{".", "README.md"}
		if !slices.Equal(matches, want) {
			t.Errorf("Find returned %v, want %v", matches, want)
		}
	})

	t.Run("SkipHidden prunes hidden directories", func(t *testing.T) {
		fsys := fstest.MapFS{
			".git/objects/ab": &fstest.MapFile{Data: []byte("x")},
			"main.go":         &fstest.MapFile{Data: []byte("x")},
		}

		matches, err := filter.Find(fsys, ".", filter.SkipHidden)
		if err != nil {
			t.Fatalf("Find failed: %v", err)
		}

		want := []string{".", "main.go"}
		if !slices.Equal(matches, want) {
			t.Errorf("Find returned %v, want %v", matches, want)
		}
	})

	t.Run("filter error aborts the walk", func(t *testing.T) {
		wantErr := errors.New("metadata unavailable")
		_, err := filter.Find(walkFS(), ".", &errEntryFilter{name: "src", err: wantErr})
		if !errors.Is(err, wantErr) {
			t.Errorf("got error %v, want the filter's error", err)
		}
	})

	t.Run("walk error aborts", func(t *testing.T) {
		_, err := filter.Find(walkFS(), "missing", filter.True)
		if err == nil {
			t.Error("walking a missing root did not fail")
		}
	})
}

func TestWalkDirFunc(t *testing.T) {
	t.Run("forwards only accepted entries", func(t *testing.T) {
		var seen []string
		fn := filter.WalkDirFunc(filter.Suffix(".go"), func(p string, d fs.DirEntry, err error) error {
			seen = append(seen, p)
			return nil
		})

		if err := fs.WalkDir(walkFS(), ".", fn); err != nil {
			t.Fatalf("WalkDir failed: %v", err)
		}

		want := []string{"main.go", "src/lib.go", "src/lib_test.go", "vendor/dep/dep.go"}
		if !slices.Equal(seen, want) {
			t.Errorf("callback saw %v, want %v", seen, want)
		}
	})

	t.Run("SkipDir prunes before the callback", func(t *testing.T) {
		var seen []string
		fn := filter.WalkDirFunc(&skipFilter{name: "vendor", result: filter.SkipDir}, func(p string, d fs.DirEntry, err error) error {
			seen = append(seen, p)
			return nil
		})

		if err := fs.WalkDir(walkFS(), ".", fn); err != nil {
			t.Fatalf("WalkDir failed: %v", err)
		}

		if slices.Contains(seen, "vendor/dep/dep.go") {
			t.Error("callback saw an entry under the pruned directory")
		}
	})

	t.Run("walk errors reach the callback", func(t *testing.T) {
		var got error
		fn := filter.WalkDirFunc(filter.True, func(p string, d fs.DirEntry, err error) error {
			got = err
			return err
		})

		if err := fs.WalkDir(walkFS(), "missing", fn); err == nil {
			t.Fatal("walking a missing root did not fail")
		}
		if got == nil {
			t.Error("callback never saw the walk error")
		}
	})
}

func TestList(t *testing.T) {
	names, err := filter.List(walkFS(), "src", filter.Prefix("lib"))
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := []string{"lib.go", "lib_test.go"}
	if !slices.Equal(names, want) {
		t.Errorf("List returned %v, want %v", names, want)
	}

	if _, err := filter.List(walkFS(), "missing", filter.True); err == nil {
		t.Error("listing a missing directory did not fail")
	}
}

func TestFilterPaths(t *testing.T) {
	paths := []string{"a.go", "b.txt", "c.go", "d.md"}

	got := filter.FilterPaths(paths, filter.Suffix(".go"))
	want := []string{"a.go", "c.go"}
	if !slices.Equal(got, want) {
		t.Errorf("FilterPaths returned %v, want %v", got, want)
	}

	if got := filter.FilterPaths(nil, filter.True); got != nil {
		t.Errorf("FilterPaths(nil) returned %v, want nil", got)
	}
}
