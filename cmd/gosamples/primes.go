package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jchmurny/gosamples/internal/numbers"
	"github.com/jchmurny/gosamples/internal/timing"
)

// primesCmd searches a numeric range for primes in parallel.
var primesCmd = &cobra.Command{
	Use:   "primes <start> <end> [output-file]",
	Short: "Search a range for prime numbers in parallel",
	Long: `Split the range [start, end] into bulks and search each bulk for
prime numbers on a pool of workers.

Each bulk reports the worker that processed it and how long it took.
When an output file is given, the primes found are written to it, one
per line.

Example:
  gosamples primes 2 1000000
  gosamples primes 2 1000000 primes.txt -b 10000 -w 8`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runPrimes,
}

func init() {
	rootCmd.AddCommand(primesCmd)

	primesCmd.Flags().IntP("bulk-size", "b", 5000, "numbers per work unit")
	primesCmd.Flags().IntP("workers", "w", runtime.NumCPU(), "number of parallel workers")
}

// parseSearchArgs extracts the shared positional arguments of the
// number search commands.
func parseSearchArgs(args []string) (start, end int, output string, err error) {
	start, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, "", fmt.Errorf("invalid start %q: %w", args[0], err)
	}
	end, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, "", fmt.Errorf("invalid end %q: %w", args[1], err)
	}
	if len(args) == 3 {
		output = args[2]
	}
	return start, end, output, nil
}

// writeLines writes one line per entry to path.
func writeLines(path string, lines []string) error {
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}

func runPrimes(cmd *cobra.Command, args []string) error {
	start, end, output, err := parseSearchArgs(args)
	if err != nil {
		return err
	}
	bulkSize, _ := cmd.Flags().GetInt("bulk-size")
	workers, _ := cmd.Flags().GetInt("workers")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("searching primes in [%d, %d] with %d workers, bulk size %d\n",
		start, end, workers, bulkSize)

	stopwatch := timing.Start()
	results, err := numbers.SearchPrimes(ctx, start, end, bulkSize, workers)
	if err != nil {
		return err
	}
	elapsed := stopwatch.Elapsed()

	var primes []int
	for _, result := range results {
		fmt.Printf("%s searched [%d, %d] in %s, found %d primes\n",
			result.Worker, result.Range.Min, result.Range.Max, result.Duration, len(result.Primes))
		primes = append(primes, result.Primes...)
	}
	fmt.Printf("found %d primes in %s (%s)\n", len(primes), elapsed, timing.FormatDuration(elapsed))

	if output != "" {
		lines := make([]string, len(primes))
		for i, prime := range primes {
			lines[i] = strconv.Itoa(prime)
		}
		if err := writeLines(output, lines); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", output)
	}
	return nil
}
