// Package spinner renders a rotating progress indicator on a single
// terminal line while some other work is running.
package spinner

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// frames are the spinner characters, cycled in order.
const frames = `\|/-`

// defaultInterval is the delay between frame updates.
const defaultInterval = 250 * time.Millisecond

// Spinner writes rotating frames followed by a message to a writer,
// rewriting the same line with carriage returns. Create instances with
// [New]; the zero value is not usable.
type Spinner struct {
	w        io.Writer
	message  string
	interval time.Duration

	done chan struct{}
}

// Option configures a [Spinner].
type Option func(*Spinner)

// WithInterval overrides the frame interval, mainly for tests.
func WithInterval(d time.Duration) Option {
	return func(s *Spinner) {
		if d > 0 {
			s.interval = d
		}
	}
}

// New creates a spinner that writes to w with the given message.
func New(w io.Writer, message string, opts ...Option) *Spinner {
	s := &Spinner{
		w:        w,
		message:  message,
		interval: defaultInterval,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins rendering in a background goroutine. Rendering stops when
// ctx is cancelled; the line is blanked out before the goroutine exits.
// Callers must use [Spinner.Wait] to ensure the line has been cleared
// before printing anything else.
func (s *Spinner) Start(ctx context.Context) {
	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		frame := 0
		for {
			fmt.Fprintf(s.w, "\r%c %s", frames[frame%len(frames)], s.message)
			frame++

			select {
			case <-ctx.Done():
				// blank the line so the caller's output starts clean
				fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.message)+2))
				return
			case <-ticker.C:
			}
		}
	}()
}

// Wait blocks until the rendering goroutine has cleared the line and
// exited. Calling Wait before Start blocks until the spinner runs and
// is cancelled.
func (s *Spinner) Wait() {
	<-s.done
}
