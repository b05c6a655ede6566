// Package perft counts the nodes reachable from a position at a fixed
// depth, exercising move generation and apply-move the way a real
// tactical search would: generate, recurse, repeat. It is used to
// regression-test the move generator's move counts, not to benchmark
// the search engine itself.
package perft

import "github.com/nilchess/catmate/engine"

// Count returns the number of leaf positions reached by playing every
// legal move, to every legal reply, depth plies deep. Count(pos, 0) is 1
// by definition: the position itself is the only "leaf".
func Count(pos *engine.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}
	moves := engine.GenerateMoves(pos)
	if depth == 1 {
		return int64(len(moves))
	}
	var nodes int64
	for _, m := range moves {
		nodes += Count(engine.ApplyMove(pos, m), depth-1)
	}
	return nodes
}

// Divide returns, for each legal move in pos, the node count reachable
// after playing it to depth-1 further plies. It is the split-by-move
// debugging aid the name borrows from the standard perft tool.
func Divide(pos *engine.Position, depth int) map[string]int64 {
	out := make(map[string]int64)
	if depth <= 0 {
		return out
	}
	for _, m := range engine.GenerateMoves(pos) {
		out[m.UCI()] = Count(engine.ApplyMove(pos, m), depth-1)
	}
	return out
}
