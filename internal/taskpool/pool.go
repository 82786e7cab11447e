// Package taskpool implements an elastic worker pool on top of a
// blocking task queue.
//
// The pool starts with a minimum number of workers and grows, one worker
// at a time, whenever the queued backlog exceeds a threshold, up to a
// configured maximum. Workers never shrink back; the pool is meant for
// demonstration of the pattern, not as production infrastructure.
package taskpool

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/google/uuid"
)

// defaultGrowThreshold is the backlog size above which the pool spawns
// an additional worker.
const defaultGrowThreshold = 5

// Task is a unit of work executed by a pool worker.
type Task func()

// Event describes a worker lifecycle notification delivered to an
// [Observer].
type Event int

const (
	// WorkerStarted is emitted when a new worker goroutine begins.
	WorkerStarted Event = iota

	// TaskStarted is emitted when a worker picks up a task.
	TaskStarted

	// TaskCompleted is emitted when a task returns normally.
	TaskCompleted

	// TaskPanicked is emitted when a task panics; the panic is recovered
	// and logged with a correlation ID.
	TaskPanicked
)

// Observer receives worker lifecycle events. The worker argument is the
// stable worker name (Worker-1, Worker-2, ...). Observers are called
// from worker goroutines and must be safe for concurrent use.
type Observer func(worker string, event Event)

// Pool is an elastic worker pool.
//
// Create instances with [New]; the zero value is not usable. Submit is
// safe for concurrent use. Close drains the queue and waits for all
// workers to exit.
type Pool struct {
	queue         *queue
	logger        *slog.Logger
	observer      Observer
	growThreshold int
	minWorkers    int
	maxWorkers    int

	mu      sync.Mutex
	workers int
	closed  bool

	wg sync.WaitGroup
}

// Option configures a [Pool] during construction.
type Option func(*Pool) error

// WithLogger sets the logger used for panic reports. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pool) error {
		if logger == nil {
			return fmt.Errorf("logger must not be nil")
		}
		p.logger = logger
		return nil
	}
}

// WithObserver registers a callback for worker lifecycle events. This is
// how the demo command renders per-worker colored output without the
// pool knowing about terminals.
func WithObserver(observer Observer) Option {
	return func(p *Pool) error {
		p.observer = observer
		return nil
	}
}

// WithGrowThreshold sets the backlog size that triggers spawning an
// additional worker. Defaults to 5.
func WithGrowThreshold(n int) Option {
	return func(p *Pool) error {
		if n < 1 {
			return fmt.Errorf("grow threshold must be positive, got %d", n)
		}
		p.growThreshold = n
		return nil
	}
}

// New creates a [Pool] with the given worker bounds and starts the
// minimum number of workers immediately.
//
// Requires 1 <= minWorkers <= maxWorkers.
func New(minWorkers, maxWorkers int, opts ...Option) (*Pool, error) {
	if minWorkers < 1 {
		return nil, fmt.Errorf("minimum worker count must be positive, got %d", minWorkers)
	}
	if maxWorkers < minWorkers {
		return nil, fmt.Errorf("maximum worker count %d is below minimum %d", maxWorkers, minWorkers)
	}

	p := &Pool{
		queue:         newQueue(),
		logger:        slog.Default(),
		growThreshold: defaultGrowThreshold,
		minWorkers:    minWorkers,
		maxWorkers:    maxWorkers,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	p.mu.Lock()
	for i := 0; i < minWorkers; i++ {
		p.spawnWorker()
	}
	p.mu.Unlock()

	return p, nil
}

// Submit enqueues a task for execution.
//
// If the backlog exceeds the grow threshold and the pool has not reached
// its maximum size, one additional worker is started. Submitting to a
// closed pool is a no-op.
func (p *Pool) Submit(task Task) {
	if task == nil {
		return
	}

	backlog := p.queue.enqueue(task)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	if backlog > p.growThreshold && p.workers < p.maxWorkers {
		p.spawnWorker()
	}
}

// Workers returns the current number of worker goroutines.
func (p *Pool) Workers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.workers
}

// Close stops accepting tasks, lets the workers drain the queue, and
// blocks until all of them have exited. Close is idempotent.
func (p *Pool) Close() {
	p.mu.Lock()
	alreadyClosed := p.closed
	p.closed = true
	p.mu.Unlock()

	if !alreadyClosed {
		p.queue.close()
	}
	p.wg.Wait()
}

// spawnWorker starts a new worker goroutine. Callers must hold p.mu.
func (p *Pool) spawnWorker() {
	p.workers++
	name := fmt.Sprintf("Worker-%d", p.workers)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		p.notify(name, WorkerStarted)
		for {
			task, ok := p.queue.dequeue()
			if !ok {
				return
			}
			p.runTask(name, task)
		}
	}()
}

// runTask executes a task with panic recovery. A panicking task is
// reported through the logger with a correlation ID and the stack trace;
// the worker keeps running.
func (p *Pool) runTask(worker string, task Task) {
	defer func() {
		if r := recover(); r != nil {
			correlationID := uuid.NewString()
			p.logger.Error("task panic",
				"worker", worker,
				"correlation_id", correlationID,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
			p.notify(worker, TaskPanicked)
		}
	}()

	p.notify(worker, TaskStarted)
	task()
	p.notify(worker, TaskCompleted)
}

func (p *Pool) notify(worker string, event Event) {
	if p.observer != nil {
		p.observer(worker, event)
	}
}
