package fsops

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// TestRemoveTrees deletes subdirectory trees and loose files while the
// root directory survives.
func TestRemoveTrees(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, map[string]string{
		"alpha/a.txt":        "a",
		"alpha/nested/b.txt": "b",
		"beta/c.txt":         "c",
		"loose.txt":          "loose",
	})

	summary, err := RemoveTrees(context.Background(), RemoveConfig{
		Root:    root,
		Workers: 2,
	}, testLogger())
	if err != nil {
		t.Fatalf("RemoveTrees() error: %v", err)
	}

	if summary.RemovedTrees != 2 {
		t.Errorf("removed %d trees, want 2", summary.RemovedTrees)
	}
	if summary.RemovedFiles != 1 {
		t.Errorf("removed %d loose files, want 1", summary.RemovedFiles)
	}
	if summary.Failed != 0 {
		t.Errorf("failed = %d, want 0", summary.Failed)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("root directory is gone: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("root still holds %d entries, want 0", len(entries))
	}
}

// TestRemoveTrees_DryRun verifies that nothing is deleted in dry-run
// mode while the counts still reflect the plan.
func TestRemoveTrees_DryRun(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, map[string]string{
		"alpha/a.txt": "a",
		"loose.txt":   "loose",
	})

	summary, err := RemoveTrees(context.Background(), RemoveConfig{
		Root:    root,
		Workers: 1,
		DryRun:  true,
	}, testLogger())
	if err != nil {
		t.Fatalf("RemoveTrees() error: %v", err)
	}

	if summary.RemovedTrees != 1 || summary.RemovedFiles != 1 {
		t.Errorf("dry run counts trees=%d files=%d, want 1/1", summary.RemovedTrees, summary.RemovedFiles)
	}
	if _, err := os.Stat(filepath.Join(root, "alpha", "a.txt")); err != nil {
		t.Error("dry run deleted a file")
	}
	if _, err := os.Stat(filepath.Join(root, "loose.txt")); err != nil {
		t.Error("dry run deleted a loose file")
	}
}

// TestRemoveTrees_Validation covers the configuration error paths.
func TestRemoveTrees_Validation(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name string
		cfg  RemoveConfig
	}{
		{"missing root", RemoveConfig{Root: filepath.Join(root, "nope"), Workers: 1}},
		{"zero workers", RemoveConfig{Root: root, Workers: 0}},
		{"too many workers", RemoveConfig{Root: root, Workers: MaxWorkers + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RemoveTrees(context.Background(), tt.cfg, testLogger()); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
