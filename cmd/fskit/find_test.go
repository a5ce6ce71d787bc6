package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildFilter(t *testing.T) {
	t.Run("no flags matches everything", func(t *testing.T) {
		composite, err := buildFilter(&findOptions{})
		if err != nil {
			t.Fatalf("buildFilter failed: %v", err)
		}
		if !composite.Accept("any/path.txt") {
			t.Error("default filter rejected a path")
		}
	})

	t.Run("flags combine with AND", func(t *testing.T) {
		composite, err := buildFilter(&findOptions{
			suffixes: []string{".go"},
			prefixes: []string{"main"},
		})
		if err != nil {
			t.Fatalf("buildFilter failed: %v", err)
		}
		if !composite.Accept("cmd/main.go") {
			t.Error("rejected a path both filters accept")
		}
		if composite.Accept("cmd/util.go") {
			t.Error("accepted a path one filter rejects")
		}
	})

	t.Run("invalid inputs fail", func(t *testing.T) {
		if _, err := buildFilter(&findOptions{entryType: "x"}); err == nil {
			t.Error("unknown entry type did not fail")
		}
		if _, err := buildFilter(&findOptions{globs: []string{"[unclosed"}}); err == nil {
			t.Error("invalid glob did not fail")
		}
		if _, err := buildFilter(&findOptions{regex: "("}); err == nil {
			t.Error("invalid regex did not fail")
		}
		if _, err := buildFilter(&findOptions{ignoreFile: "does-not-exist"}); err == nil {
			t.Error("missing ignore file did not fail")
		}
	})
}

func TestParseSizeRange(t *testing.T) {
	minBytes, maxBytes, err := parseSizeRange("2KiB", "1MB")
	if err != nil {
		t.Fatalf("parseSizeRange failed: %v", err)
	}
	if minBytes != 2048 {
		t.Errorf("minimum parsed as %d, want 2048", minBytes)
	}
	if maxBytes != 1000000 {
		t.Errorf("maximum parsed as %d, want 1000000", maxBytes)
	}

	if _, maxBytes, err = parseSizeRange("1K", ""); err != nil || maxBytes != -1 {
		t.Errorf("empty maximum parsed as (%d, %v), want unbounded", maxBytes, err)
	}

	if _, _, err := parseSizeRange("10K", "1K"); err == nil {
		t.Error("inverted range did not fail")
	}
	if _, _, err := parseSizeRange("many", ""); err == nil {
		t.Error("unparsable size did not fail")
	}
	if _, _, err := parseSizeRange("10EB", ""); err == nil {
		t.Error("minimum beyond the int64 range did not fail")
	}
	if _, _, err := parseSizeRange("", "10EB"); err == nil {
		t.Error("maximum beyond the int64 range did not fail")
	}
}

func TestFindCommand(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"main.go":     "package main",
		"notes.txt":   "notes",
		"sub/util.go": "package sub",
	}
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("MkdirAll failed: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}

	t.Run("prints matches one per line", func(t *testing.T) {
		cmd := newFindCommand()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{dir, "--suffix", ".go"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("Execute failed: %v", err)
		}

		got := strings.Split(strings.TrimSpace(out.String()), "\n")
		want := []string{"main.go", "sub/util.go"}
		if len(got) != len(want) {
			t.Fatalf("printed %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("printed %v, want %v", got, want)
			}
		}
	})

	t.Run("long listing includes sizes", func(t *testing.T) {
		cmd := newFindCommand()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{dir, "--name", "notes.txt", "--long"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("Execute failed: %v", err)
		}

		line := strings.TrimSpace(out.String())
		if !strings.HasSuffix(line, "\tnotes.txt") {
			t.Errorf("long output %q does not end with the path", line)
		}
		if !strings.Contains(line, "B") {
			t.Errorf("long output %q has no size", line)
		}
	})

	t.Run("missing root fails", func(t *testing.T) {
		cmd := newFindCommand()
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetErr(new(bytes.Buffer))
		cmd.SetArgs([]string{filepath.Join(dir, "absent")})

		if err := cmd.Execute(); err == nil {
			t.Error("walking a missing root did not fail")
		}
	})
}
