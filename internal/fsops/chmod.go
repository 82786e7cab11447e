package fsops

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jchmurny/gosamples/internal/timing"
)

// ChmodConfig describes a recursive permission and ownership change.
// A zero Mode means "leave permissions alone"; empty User and Group mean
// "leave ownership alone". At least one of the two must be requested.
type ChmodConfig struct {
	Root    string
	Mode    fs.FileMode
	User    string
	Group   string
	Workers int
	DryRun  bool
}

func (c ChmodConfig) validate() error {
	if err := requireDir(c.Root, "root"); err != nil {
		return err
	}
	if c.Mode == 0 && c.User == "" && c.Group == "" {
		return fmt.Errorf("nothing to do: specify a mode, a user, or a group")
	}
	return validateWorkers(c.Workers)
}

// chmodRequest is one directory plus its immediate files, processed as a
// unit by a worker.
type chmodRequest struct {
	seq   int
	dir   string
	files []string
}

// ChmodResult counts the outcome of processing one request.
type ChmodResult struct {
	ModifiedFiles int
	FailedFiles   int
	ModifiedDirs  int
	FailedDirs    int
}

// ChmodSummary aggregates a full run.
type ChmodSummary struct {
	Duration      time.Duration
	ModifiedFiles int
	FailedFiles   int
	ModifiedDirs  int
	FailedDirs    int
}

// ownership holds resolved numeric IDs; -1 leaves the respective ID
// unchanged, matching os.Chown semantics.
type ownership struct {
	uid int
	gid int
}

// resolveOwnership looks up the configured user and group names.
func resolveOwnership(cfg ChmodConfig) (ownership, error) {
	ids := ownership{uid: -1, gid: -1}

	if cfg.User != "" {
		account, err := user.Lookup(cfg.User)
		if err != nil {
			return ids, fmt.Errorf("unknown user %q: %w", cfg.User, err)
		}
		uid, err := strconv.Atoi(account.Uid)
		if err != nil {
			return ids, fmt.Errorf("non-numeric uid for %q: %w", cfg.User, err)
		}
		ids.uid = uid
	}

	if cfg.Group != "" {
		group, err := user.LookupGroup(cfg.Group)
		if err != nil {
			return ids, fmt.Errorf("unknown group %q: %w", cfg.Group, err)
		}
		gid, err := strconv.Atoi(group.Gid)
		if err != nil {
			return ids, fmt.Errorf("non-numeric gid for %q: %w", cfg.Group, err)
		}
		ids.gid = gid
	}

	return ids, nil
}

// Apply walks the tree rooted at cfg.Root and applies the configured
// mode and ownership to every directory and file, one directory per
// worker task. Per-entry failures are counted, not fatal.
func Apply(ctx context.Context, cfg ChmodConfig, logger *slog.Logger) (*ChmodSummary, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	ids, err := resolveOwnership(cfg)
	if err != nil {
		return nil, err
	}

	var requests []chmodRequest
	err = filepath.WalkDir(cfg.Root, func(path string, d fs.DirEntry, err error) error {
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
				files = append(files, filepath.Join(path, entry.Name()))
			}
		}
		requests = append(requests, chmodRequest{seq: len(requests) + 1, dir: path, files: files})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %q: %w", cfg.Root, err)
	}

	stopwatch := timing.Start()
	results := make([]ChmodResult, len(requests))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(cfg.Workers)
	for i, request := range requests {
		i, request := i, request
		group.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			results[i] = processChmodRequest(cfg, ids, request, logger)
			return nil
		})
	}
	_ = group.Wait()

	summary := &ChmodSummary{Duration: stopwatch.Elapsed()}
	for _, result := range results {
		summary.ModifiedFiles += result.ModifiedFiles
		summary.FailedFiles += result.FailedFiles
		summary.ModifiedDirs += result.ModifiedDirs
		summary.FailedDirs += result.FailedDirs
	}
	return summary, nil
}

func processChmodRequest(cfg ChmodConfig, ids ownership, request chmodRequest, logger *slog.Logger) ChmodResult {
	var result ChmodResult

	if applyToPath(cfg, ids, request.dir, logger) {
		result.ModifiedDirs++
	} else {
		result.FailedDirs++
	}
	for _, file := range request.files {
		if applyToPath(cfg, ids, file, logger) {
			result.ModifiedFiles++
		} else {
			result.FailedFiles++
		}
	}
	return result
}

// applyToPath applies mode and ownership to a single path, reporting
// success. Dry runs always succeed.
func applyToPath(cfg ChmodConfig, ids ownership, path string, logger *slog.Logger) bool {
	if cfg.DryRun {
		logger.Info("would modify", "path", path, "mode", cfg.Mode, "user", cfg.User, "group", cfg.Group)
		return true
	}

	if cfg.Mode != 0 {
		if err := os.Chmod(path, cfg.Mode.Perm()); err != nil {
			logger.Error("chmod failed", "path", path, "error", err)
			return false
		}
	}
	if ids.uid != -1 || ids.gid != -1 {
		if err := os.Chown(path, ids.uid, ids.gid); err != nil {
			logger.Error("chown failed", "path", path, "error", err)
			return false
		}
	}
	return true
}
