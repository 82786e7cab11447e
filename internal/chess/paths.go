package chess

import (
	"fmt"
	"strings"
)

// Path is an ordered sequence of squares visited by a king, including the
// start square. A path of length n represents n-1 moves.
type Path []Square

// Moves returns the number of moves in the path.
func (p Path) Moves() int {
	return len(p) - 1
}

// String renders the path as a comma-separated list of squares.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, sq := range p {
		parts[i] = string(sq)
	}
	return strings.Join(parts, ", ")
}

// contains reports whether the path already visits the given square.
func (p Path) contains(square Square) bool {
	for _, visited := range p {
		if visited == square {
			return true
		}
	}
	return false
}

// extend returns a new path with the given square appended. The receiver
// is not modified; paths on the search queue must stay immutable.
func (p Path) extend(square Square) Path {
	extended := make(Path, len(p), len(p)+1)
	copy(extended, p)
	return append(extended, square)
}

// SearchPaths finds every path a chess king can take from start to
// destination using at most maxMoves moves.
//
// The search is a breadth-first traversal. A path never revisits a square,
// and reaching the destination terminates a path, so searching from a
// square to itself yields no paths. The returned paths are unique; order
// follows breadth-first discovery (shorter paths first).
//
// Returns an error if either square is not valid algebraic notation.
func SearchPaths(start, destination Square, maxMoves int) ([]Path, error) {
	if !start.Valid() {
		return nil, fmt.Errorf("invalid start square: %q", start)
	}
	if !destination.Valid() {
		return nil, fmt.Errorf("invalid destination square: %q", destination)
	}

	var result []Path
	var queue []Path
	for _, square := range start.Adjacent() {
		queue = append(queue, Path{start, square})
	}

	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]

		if path[len(path)-1] == destination {
			if path.Moves() <= maxMoves {
				result = append(result, path)
			}
			continue
		}

		for _, square := range path[len(path)-1].Adjacent() {
			if square == destination {
				extended := path.extend(square)
				if extended.Moves() <= maxMoves {
					result = append(result, extended)
				}
				continue
			}
			if path.contains(square) {
				continue
			}
			extended := path.extend(square)
			if extended.Moves() <= maxMoves {
				queue = append(queue, extended)
			}
		}
	}

	return result, nil
}

// ContainsDuplicates reports whether any two paths in the slice visit the
// exact same sequence of squares.
func ContainsDuplicates(paths []Path) bool {
	seen := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		key := path.String()
		if _, exists := seen[key]; exists {
			return true
		}
		seen[key] = struct{}{}
	}
	return false
}
