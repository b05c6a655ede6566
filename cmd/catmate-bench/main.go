// Command catmate-bench benchmarks the search engine on a fixed set of
// positions, reporting the number of nodes visited and nodes per
// second. It exists to catch accidental regressions in node count from
// supposedly non-functional changes, the way the teacher's own bench
// tool did, adapted to positions this engine's simplified move rules
// (no castling, no en passant) model exactly.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/nilchess/catmate/engine"
)

var depth = flag.Int("depth", 5, "depth to search to")

type benchCase struct {
	description string
	fen         string
}

var cases = []benchCase{
	{"start position", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"},
	{"open Italian middlegame", "r1bqk1nr/pppp1ppp/2n5/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq -"},
	{"closed Ruy Lopez middlegame", "r1bq1rk1/2p1bppp/p1n2n2/1p1pp3/4P3/1B1P1N2/PPP2PPP/RNBQR1K1 w - -"},
	{"queenless endgame", "8/5pk1/6p1/1p2P2p/1P3P1P/6P1/6K1/8 w - -"},
}

func eval(fen string, depth int) uint64 {
	pos, err := engine.PositionFromFEN(fen)
	if err != nil {
		log.Fatalf("bad fen %q: %v", fen, err)
	}
	driver := engine.NewRootDriver(engine.Config{Depth: depth})
	_, _, stats := driver.FindBestMove(pos)
	return stats.Nodes
}

func evalAll(depth int) (uint64, float64) {
	start := time.Now()
	var nodes uint64
	for _, c := range cases {
		n := eval(c.fen, depth)
		nodes += n
		log.Printf("%d %s\n", n, c.description)
	}
	elapsed := time.Since(start)
	return nodes, float64(nodes) / elapsed.Seconds()
}

func main() {
	flag.Parse()
	nodes, nps := evalAll(*depth)
	fmt.Printf("nodes %d\n", nodes)
	fmt.Printf("  nps %.0f\n", nps)
}
