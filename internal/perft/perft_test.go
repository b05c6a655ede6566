package perft

import (
	"testing"

	"github.com/nilchess/catmate/engine"
)

func startPosition(t *testing.T) *engine.Position {
	t.Helper()
	pos, err := engine.PositionFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w")
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	return pos
}

// TestCountDepthZeroIsOne and TestCountDepthOneMatchesS1
// pin the two base cases Count's recursion bottoms out on.
func TestCountDepthZeroIsOne(t *testing.T) {
	if got := Count(startPosition(t), 0); got != 1 {
		t.Fatalf("Count(pos, 0) = %d, want 1", got)
	}
}

// TestCountDepthOneMatchesS1 covers scenario S1 via the perft counter:
// the start position has exactly 20 legal moves.
func TestCountDepthOneMatchesS1(t *testing.T) {
	if got := Count(startPosition(t), 1); got != 20 {
		t.Fatalf("Count(pos, 1) = %d, want 20", got)
	}
}

func TestDivideSumsToCount(t *testing.T) {
	pos := startPosition(t)
	const depth = 2
	total := Count(pos, depth)

	var sum int64
	for _, n := range Divide(pos, depth) {
		sum += n
	}
	if sum != total {
		t.Fatalf("Divide sums to %d, Count returns %d", sum, total)
	}
	if len(Divide(pos, depth)) != 20 {
		t.Fatalf("expected 20 entries in Divide's map, got %d", len(Divide(pos, depth)))
	}
}

func TestDivideDepthZero(t *testing.T) {
	if got := Divide(startPosition(t), 0); len(got) != 0 {
		t.Fatalf("expected an empty map at depth 0, got %v", got)
	}
}
