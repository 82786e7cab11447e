package chess

import "testing"

// TestSquare_Valid exercises the algebraic notation validation.
func TestSquare_Valid(t *testing.T) {
	tests := []struct {
		square Square
		want   bool
	}{
		{"a1", true},
		{"h8", true},
		{"e4", true},
		{"i1", false},
		{"a9", false},
		{"a0", false},
		{"A1", false},
		{"", false},
		{"e44", false},
	}

	for _, tt := range tests {
		if got := tt.square.Valid(); got != tt.want {
			t.Errorf("Square(%q).Valid() = %v, want %v", tt.square, got, tt.want)
		}
	}
}

// TestSquare_Adjacent verifies adjacency counts for corner, edge, and
// center squares, and that the square itself is never included.
func TestSquare_Adjacent(t *testing.T) {
	tests := []struct {
		square Square
		count  int
	}{
		{"a1", 3},
		{"h8", 3},
		{"a4", 5},
		{"e1", 5},
		{"e4", 8},
	}

	for _, tt := range tests {
		adjacent := tt.square.Adjacent()
		if len(adjacent) != tt.count {
			t.Errorf("%s: expected %d adjacent squares, got %d (%v)", tt.square, tt.count, len(adjacent), adjacent)
		}
		for _, sq := range adjacent {
			if sq == tt.square {
				t.Errorf("%s: adjacency includes the square itself", tt.square)
			}
			if !sq.Valid() {
				t.Errorf("%s: adjacency includes invalid square %q", tt.square, sq)
			}
		}
	}
}

// TestSquareGenerator verifies rank-major ordering and the wrap from h1
// to a2.
func TestSquareGenerator(t *testing.T) {
	generator := NewSquareGenerator()

	expected := []Square{"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1", "a2"}
	for i, want := range expected {
		if got := generator.Next(); got != want {
			t.Fatalf("square %d: got %s, want %s", i, got, want)
		}
	}
}
