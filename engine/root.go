// root.go implements the root driver: a book short-circuit followed by
// root-level parallel search over batches of top-level moves.

package engine

import (
	"runtime"
	"sync"
	"time"
)

// RootDriver bundles the shared collaborators one findBestMove call
// needs: the transposition table, the move-ordering heuristics, an
// optional opening book and a logger. The zero value is not usable;
// build one with NewRootDriver.
type RootDriver struct {
	TT     *HashTable
	Heur   *Heuristics
	Book   *Book
	Logger Logger
	Config Config
}

// NewRootDriver wires fresh, empty collaborators around cfg. Book is
// left nil; callers that want one should set RootDriver.Book after
// loading it with LoadBook.
func NewRootDriver(cfg Config) *RootDriver {
	return &RootDriver{
		TT:     NewHashTable(),
		Heur:   NewHeuristics(),
		Logger: NulLogger{},
		Config: cfg,
	}
}

type rootResult struct {
	move  Move
	value int
}

// FindBestMove returns the move rd picks for pos at the configured
// depth: a book move if pos is in-book, otherwise the argmax over a
// batched, root-parallel alpha-beta search. It always returns some
// move when pos has any legal move at all.
func (rd *RootDriver) FindBestMove(pos *Position) (Move, int, Stats) {
	logger := rd.Logger
	if logger == nil {
		logger = NulLogger{}
	}
	logger.BeginSearch(pos, rd.Config.Depth)

	if rd.Book != nil {
		if m, ok := rd.Book.Lookup(pos.Zobrist()); ok {
			stats := Stats{Depth: rd.Config.Depth}
			logger.EndSearch(stats, m, 0)
			return m, 0, stats
		}
	}

	roots := GenerateMoves(pos)
	if len(roots) == 0 {
		stats := Stats{Depth: rd.Config.Depth}
		logger.EndSearch(stats, Move{}, 0)
		return Move{}, 0, stats
	}
	sortMoves(roots, rd.Heur, 0)

	ctx := &searchContext{
		tt:      rd.TT,
		heur:    rd.Heur,
		start:   time.Now(),
		maxTime: rd.Config.MaxTime(),
		logger:  logger,
	}

	batchSize := rd.Config.WorkerBatch
	if batchSize <= 0 {
		batchSize = runtime.NumCPU()
	}
	if batchSize < 2 {
		batchSize = 2
	}

	results := make([]rootResult, len(roots))
	for start := 0; start < len(roots); start += batchSize {
		end := start + batchSize
		if end > len(roots) {
			end = len(roots)
		}
		batch := roots[start:end]

		var wg sync.WaitGroup
		wg.Add(len(batch))
		for i, m := range batch {
			i, m := i, m
			go func() {
				defer wg.Done()
				value := minimax(ctx, ApplyMove(pos, m), rd.Config.Depth, 1, -infinity, infinity, false)
				results[start+i] = rootResult{move: m, value: value}
			}()
		}
		wg.Wait() // each goroutine writes a distinct index, so no lock is needed
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.value > best.value {
			best = r
		}
	}

	stats := Stats{Depth: rd.Config.Depth, Nodes: ctx.nodes}
	logger.EndSearch(stats, best.move, best.value)

	rd.TT.Store(pos.Zobrist(), TTEntry{Depth: rd.Config.Depth, Value: best.value, Bound: Exact, Move: best.move})
	if rd.Config.TTPath != "" {
		// A save failure falls back to the in-memory-only table rather
		// than aborting the search that already produced best.
		_ = rd.TT.Save(rd.Config.TTPath)
	}

	return best.move, best.value, stats
}
