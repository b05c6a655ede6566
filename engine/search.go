// search.go implements alpha-beta minimax to a fixed depth, consulting
// the transposition table and move-ordering heuristics at every node.
//
// The search is side-relative, not negamax: Evaluate already returns a
// score from the side-to-move's perspective, so the search is a pure
// maximizer that flips a boolean at each ply instead of negating scores
// on the way back up. A static evaluation taken at a minimizing node is
// negated once, so every value is from the maximizing side's perspective.

package engine

import (
	"sync/atomic"
	"time"
)

// infinity bounds alpha-beta windows; it is comfortably outside the
// evaluator's range, including the checkmate sentinel.
const infinity = 1 << 30

// searchContext bundles everything one findBestMove call threads
// through every minimax invocation: the shared TT, the shared
// heuristics, the wall-clock deadline and the logger. Heuristics and
// stats are shared across root-task goroutines and updated without
// synchronization beyond what atomic.AddUint64 gives Stats.Nodes;
// §5 tolerates benign races on heuristics.
type searchContext struct {
	tt       *HashTable
	heur     *Heuristics
	start    time.Time
	maxTime  time.Duration
	logger   Logger
	nodes    uint64
}

func (ctx *searchContext) expired() bool {
	return ctx.maxTime > 0 && time.Since(ctx.start) > ctx.maxTime
}

// minimax returns pos's value to depth plies, from the perspective of
// the side to move at the root of this call when maximizing is true and
// from the opponent's perspective when it is false.
func minimax(ctx *searchContext, pos *Position, depth, ply, alpha, beta int, maximizing bool) int {
	atomic.AddUint64(&ctx.nodes, 1)

	// Evaluate scores for pos's side to move, which at a minimizing node
	// is the opponent of the maximizing side.
	sign := 1
	if !maximizing {
		sign = -1
	}

	if ctx.expired() {
		return sign * Evaluate(pos)
	}

	fingerprint := pos.Zobrist()
	if value, ok, a, b := ctx.tt.Probe(fingerprint, depth, alpha, beta); ok {
		return value
	} else {
		alpha, beta = a, b
	}

	if depth == 0 {
		return sign * Evaluate(pos)
	}

	moves := GenerateMoves(pos)
	if len(moves) == 0 {
		return sign * Evaluate(pos)
	}
	sortMoves(moves, ctx.heur, ply)

	if maximizing {
		best := -infinity
		for _, m := range moves {
			val := minimax(ctx, ApplyMove(pos, m), depth-1, ply+1, alpha, beta, false)
			if val > best {
				best = val
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				ctx.heur.OnCutoff(m, depth, ply)
				ctx.logger.Cutoff(ply, depth, m)
				break
			}
		}
		return best
	}

	best := infinity
	for _, m := range moves {
		val := minimax(ctx, ApplyMove(pos, m), depth-1, ply+1, alpha, beta, true)
		if val < best {
			best = val
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			ctx.heur.OnCutoff(m, depth, ply)
			ctx.logger.Cutoff(ply, depth, m)
			break
		}
	}
	return best
}
