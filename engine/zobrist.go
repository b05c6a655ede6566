// zobrist.go builds the Zobrist hashing tables used to fingerprint
// positions for the transposition table and the opening book.
//
// The tables are initialized exactly once, from a fixed seed, so that
// fingerprints are reproducible across processes (spec invariant:
// re-initializing with the same seed yields identical fingerprints).

package engine

import (
	"math/rand"
	"sync"
)

// zobristSeed is the fixed literal the fingerprint scheme is built on.
// Reproducibility of search and of the opening book depends on this
// never changing.
const zobristSeed = 915378694376

var (
	zobristPiece [PieceArraySize][64]uint64
	zobristColor [ColorArraySize]uint64

	zobristOnce sync.Once
)

func initZobrist() {
	zobristOnce.Do(func() {
		r := rand.New(rand.NewSource(zobristSeed))
		for p := 0; p < PieceArraySize; p++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[p][sq] = rand64(r)
			}
		}
		for c := Color(0); c < ColorArraySize; c++ {
			zobristColor[c] = rand64(r)
		}
	})
}

func rand64(r *rand.Rand) uint64 {
	return uint64(r.Int63())<<32 ^ uint64(r.Int63())
}

func init() {
	initZobrist()
}

// computeZobrist derives a position's fingerprint from scratch. It is
// used to validate the incrementally maintained Position.hash field
// in tests and is otherwise unneeded in the hot path.
func computeZobrist(pos *Position) uint64 {
	var h uint64
	for p := 0; p < PieceArraySize; p++ {
		bb := pos.boards[p]
		for bb != 0 {
			sq := bb.Pop()
			h ^= zobristPiece[p][sq]
		}
	}
	if pos.SideToMove == White {
		h ^= zobristColor[White]
	}
	return h
}
