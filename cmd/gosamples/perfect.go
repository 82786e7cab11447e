package main

import (
	"context"
	"fmt"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jchmurny/gosamples/internal/numbers"
	"github.com/jchmurny/gosamples/internal/timing"
)

// perfectCmd searches a numeric range for perfect numbers in parallel.
var perfectCmd = &cobra.Command{
	Use:   "perfect <start> <end> [output-file]",
	Short: "Search a range for perfect numbers in parallel",
	Long: `Split the range [start, end] into bulks and search each bulk for
perfect numbers (numbers equal to the sum of their proper divisors) on
a pool of workers.

Example:
  gosamples perfect 1 10000
  gosamples perfect 1 100000 perfect.txt -b 2000 -w 4`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runPerfect,
}

func init() {
	rootCmd.AddCommand(perfectCmd)

	perfectCmd.Flags().IntP("bulk-size", "b", 5000, "numbers per work unit")
	perfectCmd.Flags().IntP("workers", "w", runtime.NumCPU(), "number of parallel workers")
}

// formatPerfect renders a perfect number as its divisor sum,
// e.g. "6 = 1 + 2 + 3".
func formatPerfect(p numbers.PerfectNumber) string {
	parts := make([]string, len(p.Divisors))
	for i, divisor := range p.Divisors {
		parts[i] = strconv.Itoa(divisor)
	}
	return fmt.Sprintf("%d = %s", p.Number, strings.Join(parts, " + "))
}

func runPerfect(cmd *cobra.Command, args []string) error {
	start, end, output, err := parseSearchArgs(args)
	if err != nil {
		return err
	}
	bulkSize, _ := cmd.Flags().GetInt("bulk-size")
	workers, _ := cmd.Flags().GetInt("workers")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("searching perfect numbers in [%d, %d] with %d workers, bulk size %d\n",
		start, end, workers, bulkSize)

	stopwatch := timing.Start()
	results, err := numbers.SearchPerfect(ctx, start, end, bulkSize, workers)
	if err != nil {
		return err
	}
	elapsed := stopwatch.Elapsed()

	var found []numbers.PerfectNumber
	for _, result := range results {
		fmt.Printf("%s searched [%d, %d] in %s\n",
			result.Worker, result.Range.Min, result.Range.Max, result.Duration)
		found = append(found, result.Perfect...)
	}

	lines := make([]string, len(found))
	for i, p := range found {
		lines[i] = formatPerfect(p)
		fmt.Println(lines[i])
	}
	fmt.Printf("found %d perfect numbers in %s (%s)\n",
		len(found), elapsed, timing.FormatDuration(elapsed))

	if output != "" {
		if err := writeLines(output, lines); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", output)
	}
	return nil
}
