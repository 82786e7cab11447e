package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jchmurny/gosamples/internal/chess"
)

// chessCmd groups the chessboard demos.
var chessCmd = &cobra.Command{
	Use:   "chess",
	Short: "Chessboard puzzles",
	Long: `Small chessboard exercises: the wheat-and-chessboard doubling
problem and enumeration of king paths between two squares.`,
}

// grainsCmd prints the wheat-and-chessboard doubling sequence.
var grainsCmd = &cobra.Command{
	Use:   "grains",
	Short: "Count grains doubled on each chessboard square",
	Long: `Walk the 64 squares of a chessboard, doubling a grain of wheat on
each square, and print the per-square counts and the grand total.`,
	RunE: runGrains,
}

// pathsCmd enumerates king paths between two squares.
var pathsCmd = &cobra.Command{
	Use:   "paths <start> <destination> <max-moves>",
	Short: "Enumerate king paths between two squares",
	Long: `Enumerate every path a king can take from one square to another
in at most the given number of moves, without revisiting a square.

Example:
  gosamples chess paths e4 c4 3
  gosamples chess paths a1 h8 7`,
	Args: cobra.ExactArgs(3),
	RunE: runPaths,
}

func init() {
	rootCmd.AddCommand(chessCmd)
	chessCmd.AddCommand(grainsCmd)
	chessCmd.AddCommand(pathsCmd)
}

func runGrains(cmd *cobra.Command, args []string) error {
	counts, total := chess.Grains()
	for _, count := range counts {
		fmt.Printf("%s = %d\n", count.Square, count.Grains)
	}
	fmt.Printf("total = %d\n", total)
	return nil
}

func runPaths(cmd *cobra.Command, args []string) error {
	start := chess.Square(args[0])
	destination := chess.Square(args[1])
	maxMoves, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid max-moves %q: %w", args[2], err)
	}

	paths, err := chess.SearchPaths(start, destination, maxMoves)
	if err != nil {
		return err
	}

	for _, path := range paths {
		fmt.Println(path)
	}
	fmt.Printf("found %d paths from %s to %s in at most %d moves\n",
		len(paths), start, destination, maxMoves)
	return nil
}
