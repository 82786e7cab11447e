package fsops

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// makeTree creates a directory tree under root from a map of relative
// file paths to contents.
func makeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for relative, content := range files {
		path := filepath.Join(root, relative)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
}

// readFile returns the content of a file or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// TestCopyTree copies two subdirectories in parallel and verifies the
// full tree arrives, including nested files.
func TestCopyTree(t *testing.T) {
	source := t.TempDir()
	destination := filepath.Join(t.TempDir(), "dst")
	makeTree(t, source, map[string]string{
		"alpha/a.txt":        "alpha-a",
		"alpha/nested/b.txt": "alpha-b",
		"beta/c.txt":         "beta-c",
		"loose.txt":          "ignored", // loose files are not copied
	})

	summary, err := CopyTree(context.Background(), CopyConfig{
		Source:      source,
		Destination: destination,
		Workers:     4,
	}, testLogger())
	if err != nil {
		t.Fatalf("CopyTree() error: %v", err)
	}

	if summary.Copied != 2 || summary.Failed != 0 {
		t.Errorf("summary: copied=%d failed=%d, want 2/0", summary.Copied, summary.Failed)
	}
	if got := readFile(t, filepath.Join(destination, "alpha", "nested", "b.txt")); got != "alpha-b" {
		t.Errorf("nested file content = %q, want %q", got, "alpha-b")
	}
	if got := readFile(t, filepath.Join(destination, "beta", "c.txt")); got != "beta-c" {
		t.Errorf("file content = %q, want %q", got, "beta-c")
	}
	if _, err := os.Stat(filepath.Join(destination, "loose.txt")); !os.IsNotExist(err) {
		t.Error("loose file was copied, expected only subdirectories")
	}
}

// TestCopyTree_Filter verifies the case-insensitive subdirectory filter
// and the ignored count.
func TestCopyTree_Filter(t *testing.T) {
	source := t.TempDir()
	destination := filepath.Join(t.TempDir(), "dst")
	makeTree(t, source, map[string]string{
		"Project-One/a.txt": "1",
		"project-two/b.txt": "2",
		"archive/c.txt":     "3",
	})

	summary, err := CopyTree(context.Background(), CopyConfig{
		Source:      source,
		Destination: destination,
		Filter:      "^project",
		Workers:     2,
	}, testLogger())
	if err != nil {
		t.Fatalf("CopyTree() error: %v", err)
	}

	if summary.Copied != 2 {
		t.Errorf("copied %d subdirectories, want 2", summary.Copied)
	}
	if summary.Ignored != 1 {
		t.Errorf("ignored %d subdirectories, want 1", summary.Ignored)
	}
	if _, err := os.Stat(filepath.Join(destination, "archive")); !os.IsNotExist(err) {
		t.Error("filtered subdirectory was copied")
	}
}

// TestCopyTree_DryRun verifies that nothing is written in dry-run mode.
func TestCopyTree_DryRun(t *testing.T) {
	source := t.TempDir()
	destination := filepath.Join(t.TempDir(), "dst")
	makeTree(t, source, map[string]string{"alpha/a.txt": "a"})

	summary, err := CopyTree(context.Background(), CopyConfig{
		Source:      source,
		Destination: destination,
		Workers:     1,
		DryRun:      true,
	}, testLogger())
	if err != nil {
		t.Fatalf("CopyTree() error: %v", err)
	}

	if summary.Copied != 1 {
		t.Errorf("dry run reported %d copies, want 1", summary.Copied)
	}
	if _, err := os.Stat(destination); !os.IsNotExist(err) {
		t.Error("dry run created the destination directory")
	}
}

// TestCopyTree_Validation covers the configuration error paths.
func TestCopyTree_Validation(t *testing.T) {
	source := t.TempDir()

	tests := []struct {
		name string
		cfg  CopyConfig
	}{
		{"missing source", CopyConfig{Source: filepath.Join(source, "nope"), Destination: "d", Workers: 1}},
		{"same source and destination", CopyConfig{Source: source, Destination: source, Workers: 1}},
		{"zero workers", CopyConfig{Source: source, Destination: "d", Workers: 0}},
		{"too many workers", CopyConfig{Source: source, Destination: "d", Workers: MaxWorkers + 1}},
		{"bad filter", CopyConfig{Source: source, Destination: "d", Workers: 1, Filter: "("}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CopyTree(context.Background(), tt.cfg, testLogger()); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
