package fsops

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jchmurny/gosamples/internal/timing"
)

// RemoveConfig describes a parallel tree removal. Each first-level
// subdirectory of Root is deleted recursively as one unit of work; loose
// files directly under Root are removed inline. Root itself survives.
type RemoveConfig struct {
	Root    string
	Workers int
	DryRun  bool
}

func (c RemoveConfig) validate() error {
	if err := requireDir(c.Root, "root"); err != nil {
		return err
	}
	return validateWorkers(c.Workers)
}

// RemoveSummary aggregates a tree removal run.
type RemoveSummary struct {
	Duration     time.Duration
	RemovedTrees int
	RemovedFiles int
	Failed       int
}

// RemoveTrees deletes the contents of cfg.Root in parallel, keeping the
// root directory itself. Per-tree failures are counted in the summary
// and logged; the run continues.
func RemoveTrees(ctx context.Context, cfg RemoveConfig, logger *slog.Logger) (*RemoveSummary, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(cfg.Root)
	if err != nil {
		return nil, err
	}

	stopwatch := timing.Start()
	summary := &RemoveSummary{}

	var dirs []string
	for _, entry := range entries {
		path := filepath.Join(cfg.Root, entry.Name())
		if entry.IsDir() {
			dirs = append(dirs, path)
			continue
		}
		if cfg.DryRun {
			logger.Info("would remove file", "path", path)
			summary.RemovedFiles++
			continue
		}
		if err := os.Remove(path); err != nil {
			logger.Error("failed to remove file", "path", path, "error", err)
			summary.Failed++
		} else {
			summary.RemovedFiles++
		}
	}

	failures := make([]bool, len(dirs))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(cfg.Workers)
	for i, dir := range dirs {
		i, dir := i, dir
		seq := i + 1
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				failures[i] = true
				return nil
			}
			if cfg.DryRun {
				logger.Info("would remove directory", "path", dir, "request", seq)
				return nil
			}
			logger.Info("removing directory", "path", dir, "request", seq)
			if err := os.RemoveAll(dir); err != nil {
				logger.Error("failed to remove directory", "path", dir, "error", err)
				failures[i] = true
			}
			return nil
		})
	}
	_ = group.Wait()

	for _, failed := range failures {
		if failed {
			summary.Failed++
		} else {
			summary.RemovedTrees++
		}
	}
	summary.Duration = stopwatch.Elapsed()
	return summary, nil
}
