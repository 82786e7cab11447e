package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jchmurny/gosamples/internal/taskpool"
)

// poolCmd demonstrates the elastic worker pool.
var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Run tasks on an elastic worker pool",
	Long: `Submit short sleeping tasks to a worker pool that starts at its
minimum size and grows toward its maximum when the backlog builds up.

Pool events are printed in color as they happen: workers starting,
tasks starting and completing.

Example:
  gosamples pool --min 2 --max 6 --tasks 30`,
	RunE: runPool,
}

func init() {
	rootCmd.AddCommand(poolCmd)

	poolCmd.Flags().Int("min", 2, "initial number of workers")
	poolCmd.Flags().Int("max", 6, "maximum number of workers")
	poolCmd.Flags().Int("tasks", 20, "number of tasks to submit")
}

// poolObserver prints pool events, one color per event kind.
func poolObserver(worker string, event taskpool.Event) {
	switch event {
	case taskpool.WorkerStarted:
		color.Yellow("%s started", worker)
	case taskpool.TaskStarted:
		color.Cyan("%s picked up a task", worker)
	case taskpool.TaskCompleted:
		color.Green("%s completed a task", worker)
	case taskpool.TaskPanicked:
		color.Red("%s recovered a panicking task", worker)
	}
}

func runPool(cmd *cobra.Command, args []string) error {
	minWorkers, _ := cmd.Flags().GetInt("min")
	maxWorkers, _ := cmd.Flags().GetInt("max")
	tasks, _ := cmd.Flags().GetInt("tasks")
	if tasks < 1 {
		return fmt.Errorf("tasks must be at least 1, got %d", tasks)
	}

	pool, err := taskpool.New(minWorkers, maxWorkers,
		taskpool.WithLogger(newLogger()),
		taskpool.WithObserver(poolObserver),
	)
	if err != nil {
		return err
	}

	for i := 0; i < tasks; i++ {
		pool.Submit(func() {
			time.Sleep(time.Duration(50+rand.Intn(200)) * time.Millisecond)
		})
	}
	pool.Close()

	fmt.Printf("ran %d tasks on %d workers\n", tasks, pool.Workers())
	return nil
}
