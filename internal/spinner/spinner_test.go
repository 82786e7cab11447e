package spinner

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer is a strings.Builder safe for concurrent use, since the
// spinner goroutine writes while the test reads.
type syncBuffer struct {
	mu sync.Mutex
	b  strings.Builder
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

// TestSpinner_RendersAndClears verifies that frames are written while
// running and the line is blanked after cancellation.
func TestSpinner_RendersAndClears(t *testing.T) {
	var buf syncBuffer
	ctx, cancel := context.WithCancel(context.Background())

	s := New(&buf, "thinking", WithInterval(5*time.Millisecond))
	s.Start(ctx)

	time.Sleep(30 * time.Millisecond)
	cancel()
	s.Wait()

	output := buf.String()
	if !strings.Contains(output, "thinking") {
		t.Errorf("output does not contain the message: %q", output)
	}
	for _, frame := range []string{`\`, "|", "/", "-"} {
		if !strings.Contains(output, frame) {
			t.Errorf("output missing frame %q: %q", frame, output)
		}
	}
	if !strings.HasSuffix(output, "\r") {
		t.Errorf("output does not end with a cleared line: %q", output)
	}
}

// TestSpinner_StopsPromptly verifies that Wait returns shortly after the
// context is cancelled even with a long frame interval.
func TestSpinner_StopsPromptly(t *testing.T) {
	var buf syncBuffer
	ctx, cancel := context.WithCancel(context.Background())

	s := New(&buf, "thinking", WithInterval(time.Minute))
	s.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		s.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("spinner did not stop after cancellation")
	}
}
