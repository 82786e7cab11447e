// Package timing provides the small measurement helpers shared by the
// demos: a stopwatch, a duration formatter, and a repeated-invocation
// timer.
package timing

import (
	"fmt"
	"time"
)

// Stopwatch measures elapsed wall-clock time from its creation.
type Stopwatch struct {
	start time.Time
}

// Start creates a running [Stopwatch].
func Start() Stopwatch {
	return Stopwatch{start: time.Now()}
}

// Elapsed returns the time since the stopwatch was started.
func (s Stopwatch) Elapsed() time.Duration {
	return time.Since(s.start)
}

// ElapsedMillis returns the elapsed time in whole milliseconds.
func (s Stopwatch) ElapsedMillis() int64 {
	return s.Elapsed().Milliseconds()
}

// FormatDuration renders a duration as HH:MM:SS, rounding to the
// nearest second. Durations of 100 hours or more widen the hour field.
func FormatDuration(d time.Duration) string {
	seconds := int64(d.Round(time.Second) / time.Second)
	hours := seconds / 3600
	seconds -= hours * 3600
	minutes := seconds / 60
	seconds -= minutes * 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// Measure invokes f n times and returns the total elapsed time. It is
// the demo equivalent of a repeated-invocation micro-benchmark; for real
// measurements use the testing package's benchmarks.
func Measure(n int, f func()) time.Duration {
	stopwatch := Start()
	for i := 0; i < n; i++ {
		f()
	}
	return stopwatch.Elapsed()
}
