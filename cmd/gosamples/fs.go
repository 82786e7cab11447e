package main

import (
	"context"
	"fmt"
	"io/fs"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jchmurny/gosamples/internal/fsops"
	"github.com/jchmurny/gosamples/internal/timing"
)

// fsCmd groups the parallel filesystem demos.
var fsCmd = &cobra.Command{
	Use:   "fs",
	Short: "Parallel filesystem operations",
	Long: `Copy, remove, checksum, and re-permission directory trees with a
bounded number of parallel workers.`,
}

var fsCopyCmd = &cobra.Command{
	Use:   "copy <source> <destination>",
	Short: "Copy subdirectory trees in parallel",
	Long: `Copy every first-level subdirectory of the source into the
destination, several subdirectories at a time.

An optional case-insensitive regular expression filters which
subdirectories are copied.

Example:
  gosamples fs copy /data/in /data/out
  gosamples fs copy /data/in /data/out --filter '^project' -w 8 --dry-run`,
	Args: cobra.ExactArgs(2),
	RunE: runFsCopy,
}

var fsRemoveCmd = &cobra.Command{
	Use:   "remove <root>",
	Short: "Remove the contents of a directory in parallel",
	Long: `Delete every subdirectory tree and loose file under the root in
parallel. The root directory itself is kept.

Example:
  gosamples fs remove /data/out
  gosamples fs remove /data/out --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runFsRemove,
}

var fsChecksumCmd = &cobra.Command{
	Use:   "checksum <source> [destination]",
	Short: "Checksum a tree, or compare two trees by checksum",
	Long: `With one argument, compute a CRC32 checksum for every file under
the tree and print them. With two arguments, checksum both trees in
parallel and report missing and mismatched files.

Example:
  gosamples fs checksum /data/in
  gosamples fs checksum /data/in /data/out`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runFsChecksum,
}

var fsChmodCmd = &cobra.Command{
	Use:   "chmod <root>",
	Short: "Change modes and ownership across a tree in parallel",
	Long: `Apply a permission mode, an owning user, or an owning group to
every file and directory under the root, one directory per worker task.

Example:
  gosamples fs chmod /data/out --mode 644
  gosamples fs chmod /data/out --user alice --group staff --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runFsChmod,
}

func init() {
	rootCmd.AddCommand(fsCmd)
	fsCmd.AddCommand(fsCopyCmd)
	fsCmd.AddCommand(fsRemoveCmd)
	fsCmd.AddCommand(fsChecksumCmd)
	fsCmd.AddCommand(fsChmodCmd)

	for _, sub := range []*cobra.Command{fsCopyCmd, fsRemoveCmd, fsChecksumCmd, fsChmodCmd} {
		sub.Flags().IntP("workers", "w", defaultFsWorkers(), "number of parallel workers")
	}
	fsCopyCmd.Flags().String("filter", "", "case-insensitive regexp selecting subdirectories")
	fsCopyCmd.Flags().Bool("dry-run", false, "report what would be copied without copying")
	fsRemoveCmd.Flags().Bool("dry-run", false, "report what would be removed without removing")
	fsChmodCmd.Flags().String("mode", "", "octal permission mode to apply, e.g. 644")
	fsChmodCmd.Flags().String("user", "", "owning user to apply")
	fsChmodCmd.Flags().String("group", "", "owning group to apply")
	fsChmodCmd.Flags().Bool("dry-run", false, "report what would be modified without modifying")
}

// defaultFsWorkers picks a worker count for filesystem commands, capped
// at the package limit.
func defaultFsWorkers() int {
	workers := runtime.NumCPU()
	if workers > fsops.MaxWorkers {
		workers = fsops.MaxWorkers
	}
	return workers
}

func runFsCopy(cmd *cobra.Command, args []string) error {
	workers, _ := cmd.Flags().GetInt("workers")
	filter, _ := cmd.Flags().GetString("filter")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := fsops.CopyTree(ctx, fsops.CopyConfig{
		Source:      args[0],
		Destination: args[1],
		Filter:      filter,
		Workers:     workers,
		DryRun:      dryRun,
	}, newLogger())
	if err != nil {
		return err
	}

	for _, result := range summary.Results {
		if result.Err != nil {
			fmt.Printf("FAILED %s: %v\n", result.Source, result.Err)
		}
	}
	fmt.Printf("copied %d, failed %d, ignored %d in %s (%s)\n",
		summary.Copied, summary.Failed, summary.Ignored,
		summary.Duration, timing.FormatDuration(summary.Duration))
	if summary.Failed > 0 {
		return fmt.Errorf("%d subdirectories failed to copy", summary.Failed)
	}
	return nil
}

func runFsRemove(cmd *cobra.Command, args []string) error {
	workers, _ := cmd.Flags().GetInt("workers")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := fsops.RemoveTrees(ctx, fsops.RemoveConfig{
		Root:    args[0],
		Workers: workers,
		DryRun:  dryRun,
	}, newLogger())
	if err != nil {
		return err
	}

	fmt.Printf("removed %d trees and %d files, %d failures in %s\n",
		summary.RemovedTrees, summary.RemovedFiles, summary.Failed, summary.Duration)
	if summary.Failed > 0 {
		return fmt.Errorf("%d removals failed", summary.Failed)
	}
	return nil
}

func runFsChecksum(cmd *cobra.Command, args []string) error {
	workers, _ := cmd.Flags().GetInt("workers")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if len(args) == 1 {
		checksums, err := fsops.Collect(ctx, args[0], workers)
		if err != nil {
			return err
		}
		for _, checksum := range checksums {
			fmt.Printf("%08x  %s\n", checksum.Checksum, checksum.Path)
		}
		fmt.Printf("checksummed %d files\n", len(checksums))
		return nil
	}

	diff, err := fsops.Compare(ctx, args[0], args[1], workers)
	if err != nil {
		return err
	}
	for _, path := range diff.OnlyInSource {
		fmt.Printf("only in source:      %s\n", path)
	}
	for _, path := range diff.OnlyInDestination {
		fmt.Printf("only in destination: %s\n", path)
	}
	for _, path := range diff.Mismatched {
		fmt.Printf("content differs:     %s\n", path)
	}
	if diff.Identical() {
		fmt.Printf("trees are identical (%d files)\n", diff.Matched)
		return nil
	}
	return fmt.Errorf("trees differ: %d matched, %d only in source, %d only in destination, %d mismatched",
		diff.Matched, len(diff.OnlyInSource), len(diff.OnlyInDestination), len(diff.Mismatched))
}

func runFsChmod(cmd *cobra.Command, args []string) error {
	workers, _ := cmd.Flags().GetInt("workers")
	modeStr, _ := cmd.Flags().GetString("mode")
	owner, _ := cmd.Flags().GetString("user")
	group, _ := cmd.Flags().GetString("group")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	var mode fs.FileMode
	if modeStr != "" {
		parsed, err := strconv.ParseUint(modeStr, 8, 32)
		if err != nil {
			return fmt.Errorf("invalid mode %q: %w", modeStr, err)
		}
		mode = fs.FileMode(parsed)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := fsops.Apply(ctx, fsops.ChmodConfig{
		Root:    args[0],
		Mode:    mode,
		User:    owner,
		Group:   group,
		Workers: workers,
		DryRun:  dryRun,
	}, newLogger())
	if err != nil {
		return err
	}

	fmt.Printf("modified %d files and %d directories, %d failures in %s\n",
		summary.ModifiedFiles, summary.ModifiedDirs,
		summary.FailedFiles+summary.FailedDirs, summary.Duration)
	if summary.FailedFiles+summary.FailedDirs > 0 {
		return fmt.Errorf("%d entries failed", summary.FailedFiles+summary.FailedDirs)
	}
	return nil
}
