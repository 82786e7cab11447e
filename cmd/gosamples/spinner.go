package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jchmurny/gosamples/internal/spinner"
)

// spinnerCmd runs a long "thinking" step behind a terminal spinner.
var spinnerCmd = &cobra.Command{
	Use:   "spinner",
	Short: "Show a spinner while a slow computation runs",
	Long: `Pretend to think for a random number of seconds while an animated
spinner runs on a second goroutine, then print the outcome.`,
	RunE: runSpinner,
}

func init() {
	rootCmd.AddCommand(spinnerCmd)
}

// think blocks for a random 1-8 seconds and returns the number of
// seconds it slept.
func think(ctx context.Context) (int, error) {
	seconds := 1 + rand.Intn(7)
	select {
	case <-time.After(time.Duration(seconds) * time.Second):
		return seconds, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

func runSpinner(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	spinCtx, cancel := context.WithCancel(ctx)
	spin := spinner.New(os.Stdout, "thinking...")
	spin.Start(spinCtx)

	outcome, err := think(ctx)
	cancel()
	spin.Wait()
	if err != nil {
		return err
	}

	fmt.Printf("Outcome of thinking = %d\n", outcome)
	return nil
}
