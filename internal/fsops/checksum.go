package fsops

import (
	"context"
	"fmt"
	"hash/crc32"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"
)

// FileChecksum pairs a file path (relative to the collection root) with
// its CRC32 checksum.
type FileChecksum struct {
	Path     string
	Checksum uint32
}

// checksumRequest is one directory's worth of files, handed to a worker
// as a unit.
type checksumRequest struct {
	dir   string
	files []string // names relative to dir
}

// Collect walks the tree rooted at root and computes a CRC32 (IEEE)
// checksum for every regular file, processing one directory per worker
// task. Results are sorted by relative path so two collections of
// identical trees compare equal.
func Collect(ctx context.Context, root string, workers int) ([]FileChecksum, error) {
	if err := requireDir(root, "root"); err != nil {
		return nil, err
	}
	if err := validateWorkers(workers); err != nil {
		return nil, err
	}

	var requests []checksumRequest
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return err
		}
		var files []string
		for _, entry := range entries {
			if entry.Type().IsRegular() {
				files = append(files, entry.Name())
			}
		}
		if len(files) > 0 {
			requests = append(requests, checksumRequest{dir: path, files: files})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %q: %w", root, err)
	}

	perRequest := make([][]FileChecksum, len(requests))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i, request := range requests {
		i, request := i, request
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			checksums, err := checksumDir(root, request)
			if err != nil {
				return err
			}
			perRequest[i] = checksums
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	var result []FileChecksum
	for _, checksums := range perRequest {
		result = append(result, checksums...)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Path < result[j].Path })
	return result, nil
}

// checksumDir computes checksums for every file of one request, keyed by
// path relative to root.
func checksumDir(root string, request checksumRequest) ([]FileChecksum, error) {
	checksums := make([]FileChecksum, 0, len(request.files))
	for _, name := range request.files {
		path := filepath.Join(request.dir, name)
		checksum, err := checksumFile(path)
		if err != nil {
			return nil, err
		}
		relative, err := filepath.Rel(root, path)
		if err != nil {
			return nil, err
		}
		checksums = append(checksums, FileChecksum{Path: relative, Checksum: checksum})
	}
	return checksums, nil
}

func checksumFile(path string) (uint32, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	hash := crc32.NewIEEE()
	buf := make([]byte, copyBufferSize)
	if _, err := io.CopyBuffer(hash, file, buf); err != nil {
		return 0, fmt.Errorf("failed to checksum %q: %w", path, err)
	}
	return hash.Sum32(), nil
}

// Diff is the outcome of comparing two directory trees by checksum.
// All slices hold root-relative paths in sorted order.
type Diff struct {
	// OnlyInSource lists files present in the source tree only.
	OnlyInSource []string

	// OnlyInDestination lists files present in the destination tree only.
	OnlyInDestination []string

	// Mismatched lists files present in both trees with differing
	// content.
	Mismatched []string

	// Matched counts files identical on both sides.
	Matched int
}

// Identical reports whether the two trees had the same files with the
// same content.
func (d *Diff) Identical() bool {
	return len(d.OnlyInSource) == 0 && len(d.OnlyInDestination) == 0 && len(d.Mismatched) == 0
}

// Compare collects checksums for both trees concurrently and reports
// files missing on either side and files whose content differs.
func Compare(ctx context.Context, source, destination string, workers int) (*Diff, error) {
	var sourceChecksums, destinationChecksums []FileChecksum

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		sourceChecksums, err = Collect(ctx, source, workers)
		return err
	})
	group.Go(func() error {
		var err error
		destinationChecksums, err = Collect(ctx, destination, workers)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	destinationByPath := make(map[string]uint32, len(destinationChecksums))
	for _, checksum := range destinationChecksums {
		destinationByPath[checksum.Path] = checksum.Checksum
	}

	diff := &Diff{}
	seen := make(map[string]struct{}, len(sourceChecksums))
	for _, checksum := range sourceChecksums {
		seen[checksum.Path] = struct{}{}
		other, exists := destinationByPath[checksum.Path]
		switch {
		case !exists:
			diff.OnlyInSource = append(diff.OnlyInSource, checksum.Path)
		case other != checksum.Checksum:
			diff.Mismatched = append(diff.Mismatched, checksum.Path)
		default:
			diff.Matched++
		}
	}
	for _, checksum := range destinationChecksums {
		if _, exists := seen[checksum.Path]; !exists {
			diff.OnlyInDestination = append(diff.OnlyInDestination, checksum.Path)
		}
	}
	sort.Strings(diff.OnlyInDestination)
	return diff, nil
}
