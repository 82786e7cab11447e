package numbers

import (
	"context"
	"testing"
)

// TestSplitRange verifies bulk boundaries, truncation of the final bulk,
// and degenerate inputs.
func TestSplitRange(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		end      int
		bulkSize int
		want     []Range
	}{
		{
			name: "exact multiple", start: 1, end: 10, bulkSize: 5,
			want: []Range{{1, 5}, {6, 10}},
		},
		{
			name: "truncated last bulk", start: 1, end: 7, bulkSize: 3,
			want: []Range{{1, 3}, {4, 6}, {7, 7}},
		},
		{
			name: "single bulk", start: 5, end: 6, bulkSize: 100,
			want: []Range{{5, 6}},
		},
		{
			name: "empty interval", start: 10, end: 1, bulkSize: 5,
			want: nil,
		},
		{
			name: "invalid bulk size", start: 1, end: 10, bulkSize: 0,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitRange(tt.start, tt.end, tt.bulkSize)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("bulk %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestSearchPrimes verifies that the parallel search finds the same
// primes as a sequential scan, with results in ascending range order.
func TestSearchPrimes(t *testing.T) {
	results, err := SearchPrimes(context.Background(), 1, 100, 10, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 10 {
		t.Fatalf("expected 10 bulks, got %d", len(results))
	}

	var found []int
	previousMax := 0
	for _, result := range results {
		if result.Range.Min <= previousMax {
			t.Errorf("bulk %v out of order (previous max %d)", result.Range, previousMax)
		}
		previousMax = result.Range.Max
		found = append(found, result.Primes...)
	}

	var expected []int
	for value := 1; value <= 100; value++ {
		if IsPrime(value) {
			expected = append(expected, value)
		}
	}
	if len(found) != len(expected) {
		t.Fatalf("found %d primes, want %d", len(found), len(expected))
	}
	for i := range found {
		if found[i] != expected[i] {
			t.Errorf("prime %d: got %d, want %d", i, found[i], expected[i])
		}
	}
}

// TestSearchPerfect verifies that the parallel search finds the known
// perfect numbers below 10000.
func TestSearchPerfect(t *testing.T) {
	results, err := SearchPerfect(context.Background(), 1, 10000, 500, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var found []int
	for _, result := range results {
		for _, number := range result.Perfect {
			found = append(found, number.Number)
		}
	}

	want := []int{6, 28, 496, 8128}
	if len(found) != len(want) {
		t.Fatalf("found %v, want %v", found, want)
	}
	for i := range found {
		if found[i] != want[i] {
			t.Errorf("found %v, want %v", found, want)
			break
		}
	}
}

// TestSearchPrimes_Cancelled verifies that a cancelled context aborts
// the search with the context error.
func TestSearchPrimes_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := SearchPrimes(ctx, 1, 1000000, 10, 2); err == nil {
		t.Error("expected context error, got nil")
	}
}

// TestSearchPrimes_InvalidWorkers verifies worker count validation.
func TestSearchPrimes_InvalidWorkers(t *testing.T) {
	if _, err := SearchPrimes(context.Background(), 1, 10, 5, 0); err == nil {
		t.Error("expected error for zero workers, got nil")
	}
}
