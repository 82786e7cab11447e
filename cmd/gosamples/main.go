// Package main is the entry point for the gosamples CLI.
//
// gosamples bundles a set of small, self-contained demo programs behind
// one binary: chessboard puzzles, parallel number searches, worker
// pools, HTTP and OpenAI API clients, and parallel filesystem tools.
//
// Usage:
//
//	gosamples primes 2 100000     # Search primes in parallel
//	gosamples chess paths e4 c4 3 # Enumerate king paths
//	gosamples fs copy SRC DST     # Copy directory trees in parallel
//	gosamples version             # Show version info
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
// It just displays help - actual functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "gosamples",
	Short: "A collection of small Go demo programs",
	Long: `gosamples is a collection of small, independent demo programs
sharing one binary.

Each subcommand is a standalone exercise: chessboard puzzles, parallel
prime and perfect number searches, an elastic worker pool, a REST API
client, structured data loading, timing comparisons, an OpenAI chat
client, and parallel filesystem operations.

Run "gosamples <command> --help" for details on any demo.`,
	// No Run/RunE means this just shows help when called without subcommands
}

// newLogger creates a JSON logger for CLI use.
func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Execute runs the root command.
// This is the main entry point called from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this gosamples binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gosamples %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
