package fsops

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jchmurny/gosamples/internal/timing"
)

// CopyConfig describes a parallel tree copy: every first-level
// subdirectory of Source is copied into Destination as one unit of work.
type CopyConfig struct {
	// Source is the directory whose subdirectories are copied.
	Source string

	// Destination receives one subdirectory per copied source
	// subdirectory. Created if it does not exist.
	Destination string

	// Filter is an optional case-insensitive regular expression matched
	// against subdirectory names; non-matching subdirectories are
	// skipped.
	Filter string

	// Workers bounds the number of concurrent subdirectory copies.
	Workers int

	// DryRun reports what would be copied without copying anything.
	DryRun bool
}

func (c CopyConfig) validate() error {
	if err := requireDir(c.Source, "source"); err != nil {
		return err
	}
	if c.Source == c.Destination {
		return fmt.Errorf("source and destination paths must be different")
	}
	return validateWorkers(c.Workers)
}

// CopyResult records the outcome of copying one subdirectory.
type CopyResult struct {
	Source      string
	Destination string
	Duration    time.Duration
	Err         error
}

// CopySummary aggregates a tree copy run.
type CopySummary struct {
	Duration time.Duration
	Copied   int
	Failed   int
	Ignored  int
	Results  []CopyResult
}

// Subdirs returns the sorted first-level subdirectories of cfg.Source
// that pass the filter, plus the number of subdirectories the filter
// ignored.
func Subdirs(cfg CopyConfig) ([]string, int, error) {
	var filter *regexp.Regexp
	if cfg.Filter != "" {
		var err error
		filter, err = regexp.Compile("(?i)" + cfg.Filter)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid filter: %w", err)
		}
	}

	entries, err := os.ReadDir(cfg.Source)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list %q: %w", cfg.Source, err)
	}

	var subdirs []string
	ignored := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if filter != nil && !filter.MatchString(entry.Name()) {
			ignored++
			continue
		}
		subdirs = append(subdirs, filepath.Join(cfg.Source, entry.Name()))
	}
	sort.Strings(subdirs)
	return subdirs, ignored, nil
}

// CopyTree copies the filtered subdirectories of cfg.Source into
// cfg.Destination, at most cfg.Workers subdirectories at a time.
//
// Individual subdirectory failures are recorded in the summary, not
// returned as an error; the run continues with the remaining
// subdirectories. An error is returned only for invalid configuration
// or when nothing can be started at all.
func CopyTree(ctx context.Context, cfg CopyConfig, logger *slog.Logger) (*CopySummary, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	subdirs, ignored, err := Subdirs(cfg)
	if err != nil {
		return nil, err
	}

	if !cfg.DryRun {
		if err := os.MkdirAll(cfg.Destination, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create destination: %w", err)
		}
	}

	stopwatch := timing.Start()
	results := make([]CopyResult, len(subdirs))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(cfg.Workers)
	for i, source := range subdirs {
		i, source := i, source
		destination := filepath.Join(cfg.Destination, filepath.Base(source))
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = CopyResult{Source: source, Destination: destination, Err: err}
				return nil
			}
			results[i] = copySubdir(source, destination, cfg.DryRun, logger)
			return nil
		})
	}
	_ = group.Wait()

	summary := &CopySummary{
		Duration: stopwatch.Elapsed(),
		Ignored:  ignored,
		Results:  results,
	}
	for _, result := range results {
		if result.Err == nil {
			summary.Copied++
		} else {
			summary.Failed++
		}
	}
	return summary, nil
}

func copySubdir(source, destination string, dryRun bool, logger *slog.Logger) CopyResult {
	logger.Info("copying subdirectory", "source", source, "destination", destination, "dry_run", dryRun)

	stopwatch := timing.Start()
	result := CopyResult{Source: source, Destination: destination}
	if !dryRun {
		result.Err = copyDirRecursive(source, destination)
	}
	result.Duration = stopwatch.Elapsed()
	return result
}
