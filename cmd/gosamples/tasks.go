package main

import (
	"context"
	"fmt"
	"math/big"
	"math/rand"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jchmurny/gosamples/internal/timing"
)

// taskColors is cycled across concurrent tasks so interleaved output
// stays readable.
var taskColors = []*color.Color{
	color.New(color.FgCyan),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgMagenta),
	color.New(color.FgBlue),
	color.New(color.FgRed),
}

// tasksCmd groups the goroutine demos.
var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Concurrent task demos",
	Long: `Small goroutine exercises: concurrent big-integer factorials and
delayed messages consumed in completion order.`,
}

// factorialsCmd computes several factorials concurrently.
var factorialsCmd = &cobra.Command{
	Use:   "factorials <n>...",
	Short: "Compute factorials concurrently",
	Long: `Compute the factorial of each argument on its own goroutine and
print progress in a distinct color per task.

Example:
  gosamples tasks factorials 100 150 200`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFactorials,
}

// messagesCmd produces delayed messages and prints them as they arrive.
var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Produce delayed messages and consume them as they complete",
	Long: `Start a number of producers that each sleep a random amount of time
before emitting a message, and print the messages in completion order
rather than start order.

Example:
  gosamples tasks messages --count 20 --max-sleep 3s`,
	RunE: runMessages,
}

func init() {
	rootCmd.AddCommand(tasksCmd)
	tasksCmd.AddCommand(factorialsCmd)
	tasksCmd.AddCommand(messagesCmd)

	messagesCmd.Flags().Int("count", 20, "number of producers to start")
	messagesCmd.Flags().Duration("max-sleep", 3*time.Second, "upper bound of the random producer delay")
}

func runFactorials(cmd *cobra.Command, args []string) error {
	values := make([]int64, len(args))
	for i, arg := range args {
		value, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || value < 0 {
			return fmt.Errorf("invalid number %q", arg)
		}
		values[i] = value
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stopwatch := timing.Start()
	group, ctx := errgroup.WithContext(ctx)
	for i, value := range values {
		i, value := i, value
		paint := taskColors[i%len(taskColors)]
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			paint.Printf("Task %d: computing factorial(%d)\n", i+1, value)
			result := new(big.Int).MulRange(1, value)
			paint.Printf("Task %d: factorial(%d) = %s\n", i+1, value, result)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	fmt.Printf("computed %d factorials in %s\n", len(values), stopwatch.Elapsed())
	return nil
}

func runMessages(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	maxSleep, _ := cmd.Flags().GetDuration("max-sleep")
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}
	if maxSleep <= 0 {
		return fmt.Errorf("max-sleep must be positive, got %s", maxSleep)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	type message struct {
		producer int
		delay    time.Duration
	}

	stopwatch := timing.Start()
	messages := make(chan message)

	group, ctx := errgroup.WithContext(ctx)
	for i := 1; i <= count; i++ {
		i := i
		delay := time.Duration(rand.Int63n(int64(maxSleep)))
		group.Go(func() error {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
			select {
			case messages <- message{producer: i, delay: delay}:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}
	go func() {
		_ = group.Wait()
		close(messages)
	}()

	received := 0
	for msg := range messages {
		received++
		paint := taskColors[msg.producer%len(taskColors)]
		paint.Printf("producer %d delivered after %s (%d/%d)\n",
			msg.producer, msg.delay.Round(time.Millisecond), received, count)
	}
	if err := group.Wait(); err != nil {
		return err
	}

	fmt.Printf("received %d messages in %s\n", received, stopwatch.Elapsed())
	return nil
}
