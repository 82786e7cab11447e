// Package fsops implements the parallel filesystem demos: tree copying,
// tree removal, checksum comparison, and recursive permission changes.
//
// All operations fan work out over a bounded group of goroutines; the
// worker count is clamped to [1, MaxWorkers] by validation.
package fsops

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// MaxWorkers is the upper bound for the worker count of every operation.
const MaxWorkers = 16

// copyBufferSize is the chunk size for file copies and checksums.
const copyBufferSize = 256 * 1024

func validateWorkers(workers int) error {
	if workers < 1 || workers > MaxWorkers {
		return fmt.Errorf("worker count must be between 1 and %d, got %d", MaxWorkers, workers)
	}
	return nil
}

func requireDir(path, label string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s path %q is not accessible: %w", label, path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s path %q is not a directory", label, path)
	}
	return nil
}

// copyFile copies a single regular file, preserving its permission bits.
func copyFile(source, destination string, mode fs.FileMode) error {
	in, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", source, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(destination, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", destination, err)
	}

	buf := make([]byte, copyBufferSize)
	if _, err := io.CopyBuffer(out, in, buf); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy %q: %w", source, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %q: %w", destination, err)
	}
	return nil
}

// copyDirRecursive copies the directory tree rooted at source into
// destination, creating destination if needed.
func copyDirRecursive(source, destination string) error {
	return filepath.WalkDir(source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relative, err := filepath.Rel(source, path)
		if err != nil {
			return err
		}
		target := filepath.Join(destination, relative)

		info, err := d.Info()
		if err != nil {
			return err
		}

		if d.IsDir() {
			if err := os.MkdirAll(target, info.Mode().Perm()); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
			return nil
		}
		if !info.Mode().IsRegular() {
			// symlinks and special files are skipped, as tree copies
			// of build artifacts and test fixtures do not need them
			return nil
		}
		return copyFile(path, target, info.Mode())
	})
}
