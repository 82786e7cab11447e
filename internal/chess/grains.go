package chess

// GrainCount records the number of wheat grains placed on a single square
// in the classic wheat-and-chessboard story: one grain on the first
// square, doubling on every square after it.
type GrainCount struct {
	Square Square
	Grains uint64
}

// Grains computes the doubling sequence across all 64 squares and the
// total number of grains on the board.
//
// The counts are returned in rank-major square order (a1, b1, ..., h8).
// The total is 2^64-1, which is exactly the maximum value of a uint64.
func Grains() ([]GrainCount, uint64) {
	generator := NewSquareGenerator()
	counts := make([]GrainCount, 0, 64)

	var total uint64
	grains := uint64(1)
	for i := 0; i < 64; i++ {
		counts = append(counts, GrainCount{
			Square: generator.Next(),
			Grains: grains,
		})
		total += grains
		grains *= 2
	}
	return counts, total
}
