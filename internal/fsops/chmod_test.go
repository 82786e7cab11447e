package fsops

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// TestApply changes file and directory modes across a nested tree.
// Ownership changes need privileges, so only the mode path is covered.
func TestApply(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}

	root := t.TempDir()
	makeTree(t, root, map[string]string{
		"alpha/a.txt": "a",
		"b.txt":       "b",
	})

	summary, err := Apply(context.Background(), ChmodConfig{
		Root:    root,
		Mode:    0o600,
		Workers: 2,
	}, testLogger())
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	// root + alpha, and the two files.
	if summary.ModifiedDirs != 2 {
		t.Errorf("modified %d directories, want 2", summary.ModifiedDirs)
	}
	if summary.ModifiedFiles != 2 {
		t.Errorf("modified %d files, want 2", summary.ModifiedFiles)
	}
	if summary.FailedDirs != 0 || summary.FailedFiles != 0 {
		t.Errorf("failures: dirs=%d files=%d, want 0/0", summary.FailedDirs, summary.FailedFiles)
	}

	for _, path := range []string{
		filepath.Join(root, "alpha", "a.txt"),
		filepath.Join(root, "b.txt"),
	} {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", path, err)
		}
		if got := info.Mode().Perm(); got != 0o600 {
			t.Errorf("mode of %s = %o, want 600", path, got)
		}
	}
}

// TestApply_DryRun verifies that modes are left untouched.
func TestApply_DryRun(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}

	root := t.TempDir()
	path := filepath.Join(root, "a.txt")
	if err := os.WriteFile(path, []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}

	summary, err := Apply(context.Background(), ChmodConfig{
		Root:    root,
		Mode:    0o600,
		Workers: 1,
		DryRun:  true,
	}, testLogger())
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	if summary.ModifiedFiles != 1 {
		t.Errorf("dry run reported %d modified files, want 1", summary.ModifiedFiles)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := info.Mode().Perm(); got != 0o644 {
		t.Errorf("dry run changed mode to %o", got)
	}
}

// TestApply_Validation covers the configuration error paths.
func TestApply_Validation(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name string
		cfg  ChmodConfig
	}{
		{"missing root", ChmodConfig{Root: filepath.Join(root, "nope"), Mode: 0o600, Workers: 1}},
		{"nothing to do", ChmodConfig{Root: root, Workers: 1}},
		{"zero workers", ChmodConfig{Root: root, Mode: 0o600, Workers: 0}},
		{"unknown user", ChmodConfig{Root: root, User: "no-such-user-zz", Workers: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Apply(context.Background(), tt.cfg, testLogger()); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
