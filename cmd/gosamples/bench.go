package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jchmurny/gosamples/internal/numbers"
	"github.com/jchmurny/gosamples/internal/timing"
)

const timestampLayout = "2006-01-02 15:04:05"

// benchCmd times iterative against recursive Fibonacci.
var benchCmd = &cobra.Command{
	Use:   "bench <index> <repetitions>",
	Short: "Time iterative vs recursive Fibonacci",
	Long: `Compute the Fibonacci number at the given index with both the
iterative and the recursive implementation, repeating each the given
number of times, and print the total durations.

Example:
  gosamples bench 30 100`,
	Args: cobra.ExactArgs(2),
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", args[0], err)
	}
	repetitions, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid repetitions %q: %w", args[1], err)
	}
	if repetitions < 1 {
		return fmt.Errorf("repetitions must be at least 1, got %d", repetitions)
	}

	fmt.Printf("started at %s\n", time.Now().Format(timestampLayout))
	fmt.Printf("fibonacci(%d) = %d, %d repetitions per variant\n",
		index, numbers.Fibonacci(index), repetitions)

	iterative := timing.Measure(repetitions, func() {
		numbers.Fibonacci(index)
	})
	fmt.Printf("iterative: %.5f sec\n", iterative.Seconds())

	recursive := timing.Measure(repetitions, func() {
		numbers.FibonacciRecursive(index)
	})
	fmt.Printf("recursive: %.5f sec\n", recursive.Seconds())

	fmt.Printf("finished at %s\n", time.Now().Format(timestampLayout))
	return nil
}
