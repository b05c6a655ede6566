// move_ordering.go holds the search's move-ordering state: a two-slot
// most-recently-used killer table per ply and a history table keyed by
// (from, to). Both are hints — concurrent root tasks share one instance
// and racy updates across tasks are tolerated.

package engine

// MaxPly bounds the killer table; a deeper search simply stops indexing
// into it (practical fixed-depth searches never approach this).
const MaxPly = 64

const (
	killerScore1 = 10000
	killerScore2 = 5000
)

// Heuristics bundles the killer and history tables threaded through one
// search. The zero value is ready to use.
type Heuristics struct {
	killers [MaxPly][2]Move
	history [64 * 64]int
}

// NewHeuristics returns an empty heuristics state.
func NewHeuristics() *Heuristics {
	return &Heuristics{}
}

func encodeMove(m Move) int {
	return int(m.From)*64 + int(m.To)
}

// ScoreMove ranks m for ordering at ply: killer moves first, then
// history score.
func (h *Heuristics) ScoreMove(m Move, ply int) int {
	score := h.history[encodeMove(m)]
	if ply >= 0 && ply < MaxPly {
		k := h.killers[ply]
		switch m {
		case k[0]:
			score += killerScore1
		case k[1]:
			score += killerScore2
		}
	}
	return score
}

// OnCutoff records that m caused a beta cutoff at (depth, ply): its
// history score grows by depth^2, and it becomes the new first killer
// at ply unless it already is one.
func (h *Heuristics) OnCutoff(m Move, depth, ply int) {
	h.history[encodeMove(m)] += depth * depth
	if ply < 0 || ply >= MaxPly {
		return
	}
	if h.killers[ply][0] == m {
		return
	}
	h.killers[ply][1] = h.killers[ply][0]
	h.killers[ply][0] = m
}

// shellSortGaps are from Best Increments for the Average Case of
// Shellsort, Marcin Ciura.
var shellSortGaps = [...]int{132, 57, 23, 10, 4, 1}

// sortMoves orders moves by descending ScoreMove at ply, in place.
func sortMoves(moves []Move, h *Heuristics, ply int) {
	scores := make([]int, len(moves))
	for i, m := range moves {
		scores[i] = h.ScoreMove(m, ply)
	}

	for _, gap := range shellSortGaps {
		for i := gap; i < len(moves); i++ {
			j, ts, tm := i, scores[i], moves[i]
			for ; j >= gap && scores[j-gap] < ts; j -= gap {
				scores[j] = scores[j-gap]
				moves[j] = moves[j-gap]
			}
			scores[j], moves[j] = ts, tm
		}
	}
}
