package taskpool

import "sync"

// queue is an unbounded FIFO of tasks with a blocking dequeue, the
// hand-rolled analog of a blocking queue. Workers block in dequeue until
// a task arrives or the queue is closed.
type queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	tasks  []Task
	closed bool
}

func newQueue() *queue {
	q := &queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// enqueue appends a task and returns the resulting backlog size.
// Enqueueing on a closed queue is a no-op returning 0.
func (q *queue) enqueue(task Task) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return 0
	}
	q.tasks = append(q.tasks, task)
	if len(q.tasks) == 1 {
		q.cond.Broadcast()
	}
	return len(q.tasks)
}

// dequeue blocks until a task is available or the queue is closed and
// drained. The second return value is false once no more tasks will be
// delivered.
func (q *queue) dequeue() (Task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.tasks) == 0 {
		if q.closed {
			return nil, false
		}
		q.cond.Wait()
	}

	task := q.tasks[0]
	q.tasks = q.tasks[1:]
	return task, true
}

// close marks the queue closed and wakes all blocked workers. Tasks
// already enqueued are still delivered.
func (q *queue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.cond.Broadcast()
}
