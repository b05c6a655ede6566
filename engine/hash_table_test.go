package engine

import (
	"path/filepath"
	"testing"
)

func TestHashTableProbeMiss(t *testing.T) {
	ht := NewHashTable()
	if _, ok, _, _ := ht.Probe(1, 4, -1000, 1000); ok {
		t.Fatalf("expected a miss on an empty table")
	}
}

func TestHashTableExactHit(t *testing.T) {
	ht := NewHashTable()
	m, _ := MoveFromUCI("e2e4")
	ht.Store(42, TTEntry{Depth: 4, Value: 17, Bound: Exact, Move: m})
	value, ok, _, _ := ht.Probe(42, 4, -1000, 1000)
	if !ok || value != 17 {
		t.Fatalf("expected a hit with value 17, got ok=%v value=%d", ok, value)
	}
}

// TestHashTableMonotoneOnDepth covers invariant 7: probing with a
// higher depth requirement than the stored entry's depth is a miss.
func TestHashTableMonotoneOnDepth(t *testing.T) {
	ht := NewHashTable()
	m, _ := MoveFromUCI("e2e4")
	ht.Store(7, TTEntry{Depth: 2, Value: 5, Bound: Exact, Move: m})

	if _, ok, _, _ := ht.Probe(7, 4, -1000, 1000); ok {
		t.Fatalf("expected a miss when requesting depth 4 against a depth-2 entry")
	}
	if _, ok, _, _ := ht.Probe(7, 2, -1000, 1000); !ok {
		t.Fatalf("expected a hit when requesting depth 2 against a depth-2 entry")
	}
}

func TestHashTableLowerBoundTightensAlpha(t *testing.T) {
	ht := NewHashTable()
	m, _ := MoveFromUCI("e2e4")
	ht.Store(9, TTEntry{Depth: 3, Value: 50, Bound: Lower, Move: m})
	_, ok, alpha, beta := ht.Probe(9, 3, 0, 1000)
	if ok {
		t.Fatalf("a lower bound below beta should not resolve the node outright")
	}
	if alpha != 50 {
		t.Fatalf("expected alpha to tighten to 50, got %d", alpha)
	}
	if beta != 1000 {
		t.Fatalf("expected beta unchanged, got %d", beta)
	}
}

func TestHashTableSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tt.txt")

	ht := NewHashTable()
	m1, _ := MoveFromUCI("e2e4")
	m2, _ := MoveFromUCI("e7e8q")
	ht.Store(1, TTEntry{Depth: 4, Value: 10, Bound: Exact, Move: m1})
	ht.Store(2, TTEntry{Depth: 6, Value: -30, Bound: Lower, Move: m2})

	if err := ht.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := NewHashTable()
	if err := loaded.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", loaded.Len())
	}
	value, ok, _, _ := loaded.Probe(1, 4, -1000, 1000)
	if !ok || value != 10 {
		t.Fatalf("expected entry 1 to round-trip with value 10, got ok=%v value=%d", ok, value)
	}
}
