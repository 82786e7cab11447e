package numbers

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Range is an inclusive interval of integers to search.
type Range struct {
	Min int
	Max int
}

// SplitRange splits the inclusive interval [start, end] into consecutive
// bulks of at most bulkSize values each. The last bulk is truncated to
// end. An empty slice is returned if start > end or bulkSize < 1.
func SplitRange(start, end, bulkSize int) []Range {
	if start > end || bulkSize < 1 {
		return nil
	}

	var bulks []Range
	for min := start; min <= end; min += bulkSize {
		max := min + bulkSize - 1
		if max > end {
			max = end
		}
		bulks = append(bulks, Range{Min: min, Max: max})
	}
	return bulks
}

// PrimeResult holds the outcome of searching a single bulk for primes.
type PrimeResult struct {
	// Worker names the pool worker that processed the bulk.
	Worker string

	// Duration is the time spent testing the bulk.
	Duration time.Duration

	// Range is the bulk that was searched.
	Range Range

	// Primes are the prime numbers found, in ascending order.
	Primes []int
}

// PerfectResult holds the outcome of searching a single bulk for perfect
// numbers.
type PerfectResult struct {
	Worker   string
	Duration time.Duration
	Range    Range
	Perfect  []PerfectNumber
}

// SearchPrimes finds all primes in [start, end] using a pool of worker
// goroutines. The interval is split into bulks of bulkSize values, each
// processed as one unit of work.
//
// Results are returned in ascending range order regardless of which
// worker finished first, one entry per bulk. The search stops early and
// returns the context error if ctx is cancelled.
func SearchPrimes(ctx context.Context, start, end, bulkSize, workers int) ([]PrimeResult, error) {
	bulks := SplitRange(start, end, bulkSize)
	results := make([]PrimeResult, len(bulks))

	err := runBulks(ctx, bulks, workers, func(worker string, index int, r Range) {
		begin := time.Now()
		var primes []int
		for value := r.Min; value <= r.Max; value++ {
			if IsPrime(value) {
				primes = append(primes, value)
			}
		}
		results[index] = PrimeResult{
			Worker:   worker,
			Duration: time.Since(begin),
			Range:    r,
			Primes:   primes,
		}
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// SearchPerfect finds all perfect numbers in [start, end] using a pool of
// worker goroutines. See [SearchPrimes] for the bulk and ordering
// semantics.
func SearchPerfect(ctx context.Context, start, end, bulkSize, workers int) ([]PerfectResult, error) {
	bulks := SplitRange(start, end, bulkSize)
	results := make([]PerfectResult, len(bulks))

	err := runBulks(ctx, bulks, workers, func(worker string, index int, r Range) {
		begin := time.Now()
		var perfect []PerfectNumber
		for value := r.Min; value <= r.Max; value++ {
			if number, ok := IsPerfect(value); ok {
				perfect = append(perfect, number)
			}
		}
		results[index] = PerfectResult{
			Worker:   worker,
			Duration: time.Since(begin),
			Range:    r,
			Perfect:  perfect,
		}
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// bulkJob pairs a bulk with its position in the submission order, so each
// worker can write its result into a dedicated slot without locking.
type bulkJob struct {
	index int
	r     Range
}

// runBulks fans the bulks out to a fixed pool of worker goroutines and
// waits for all of them to finish. Each worker receives a stable name
// (worker-1, worker-2, ...) that process functions can report.
func runBulks(ctx context.Context, bulks []Range, workers int, process func(worker string, index int, r Range)) error {
	if workers < 1 {
		return fmt.Errorf("worker count must be positive, got %d", workers)
	}

	jobs := make(chan bulkJob, len(bulks))
	for i, r := range bulks {
		jobs <- bulkJob{index: i, r: r}
	}
	close(jobs)

	done := make(chan struct{})
	go func() {
		defer close(done)

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(worker string) {
				defer wg.Done()
				for job := range jobs {
					if ctx.Err() != nil {
						return
					}
					process(worker, job.index, job.r)
				}
			}(fmt.Sprintf("worker-%d", i+1))
		}
		wg.Wait()
	}()

	select {
	case <-done:
		return ctx.Err()
	case <-ctx.Done():
		// workers notice the cancellation between bulks; wait for them
		// so no process call races the caller reading results
		<-done
		return ctx.Err()
	}
}
