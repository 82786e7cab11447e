package chess

import "regexp"

// Square identifies a chessboard square in algebraic notation, such as
// "e4" or "h8". The file is a lowercase letter a-h and the rank is a
// digit 1-8.
type Square string

// squarePattern matches valid algebraic notation: one file letter
// followed by one rank digit.
var squarePattern = regexp.MustCompile(`^[a-h][1-8]$`)

// Valid reports whether the square is well-formed algebraic notation
// within the bounds of a standard 8x8 chessboard.
func (s Square) Valid() bool {
	return squarePattern.MatchString(string(s))
}

// Adjacent returns the squares a king can reach from s in a single move.
//
// The result contains between 3 squares (corner) and 8 squares (center),
// never including s itself. Squares outside the board are excluded.
// The result is empty if s is not a valid square.
func (s Square) Adjacent() []Square {
	if !s.Valid() {
		return nil
	}

	result := make([]Square, 0, 8)
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			candidate := Square([]byte{s[0] + byte(df), s[1] + byte(dr)})
			if candidate.Valid() {
				result = append(result, candidate)
			}
		}
	}
	return result
}

// SquareGenerator yields the 64 chessboard squares in rank-major order:
// a1, b1, ..., h1, a2, b2, ..., h8.
//
// The zero value is not usable; create instances with [NewSquareGenerator].
type SquareGenerator struct {
	file byte
	rank byte
}

// NewSquareGenerator creates a generator positioned at a1.
func NewSquareGenerator() *SquareGenerator {
	return &SquareGenerator{file: 'a', rank: '1'}
}

// Next returns the current square and advances the generator.
//
// After h1 the generator wraps to a2, and so on. Behavior past h8 is
// undefined; callers are expected to request at most 64 squares.
func (g *SquareGenerator) Next() Square {
	result := Square([]byte{g.file, g.rank})
	if g.file == 'h' {
		g.file = 'a'
		g.rank++
	} else {
		g.file++
	}
	return result
}
