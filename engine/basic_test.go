package engine

import "testing"

func TestSquareFromString(t *testing.T) {
	data := []struct {
		sq  Square
		str string
	}{
		{RankFile(3, 5), "f4"},
		{RankFile(2, 0), "a3"},
		{RankFile(0, 2), "c1"},
		{RankFile(7, 7), "h8"},
	}
	for _, d := range data {
		if d.sq.String() != d.str {
			t.Errorf("expected %v, got %v", d.str, d.sq.String())
		}
		got, err := SquareFromString(d.str)
		if err != nil {
			t.Fatalf("SquareFromString(%q): %v", d.str, err)
		}
		if got != d.sq {
			t.Errorf("expected %v, got %v", d.sq, got)
		}
	}
}

func TestSquareFromStringRejectsBadInput(t *testing.T) {
	for _, s := range []string{"", "a", "z9", "a9", "i1", "a0"} {
		if _, err := SquareFromString(s); err == nil {
			t.Errorf("expected an error for %q, got none", s)
		}
	}
}

func TestRankFile(t *testing.T) {
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			sq := RankFile(r, f)
			if sq.Rank() != r || sq.File() != f {
				t.Errorf("expected (rank, file) (%d, %d), got (%d, %d)", r, f, sq.Rank(), sq.File())
			}
		}
	}
}

func TestColorFigureRoundTrip(t *testing.T) {
	for c := White; c <= Black; c++ {
		for f := FigureMinValue; f <= FigureMaxValue; f++ {
			pi := ColorFigure(c, f)
			if pi.Color() != c {
				t.Errorf("ColorFigure(%v, %v).Color() = %v", c, f, pi.Color())
			}
			if pi.Figure() != f {
				t.Errorf("ColorFigure(%v, %v).Figure() = %v", c, f, pi.Figure())
			}
		}
	}
}

func TestMoveUCIRoundTrip(t *testing.T) {
	data := []string{"e2e4", "g1f3", "e7e8q", "e7e8r", "e7e8b", "e7e8n"}
	for _, s := range data {
		m, err := MoveFromUCI(s)
		if err != nil {
			t.Fatalf("MoveFromUCI(%q): %v", s, err)
		}
		if got := m.UCI(); got != s {
			t.Errorf("round trip %q: got %q", s, got)
		}
	}
}

func TestMoveFromUCIRejectsBadInput(t *testing.T) {
	for _, s := range []string{"", "e2", "e2e4qq", "e2e9", "e2e4p", "e2e4k"} {
		if _, err := MoveFromUCI(s); err == nil {
			t.Errorf("expected an error for %q, got none", s)
		}
	}
}

func TestBitboardPop(t *testing.T) {
	bb := RankFile(0, 0).Bitboard() | RankFile(3, 3).Bitboard() | RankFile(7, 7).Bitboard()
	if bb.Popcnt() != 3 {
		t.Fatalf("expected 3 bits set, got %d", bb.Popcnt())
	}
	var seen []Square
	for bb != 0 {
		seen = append(seen, bb.Pop())
	}
	if len(seen) != 3 {
		t.Fatalf("expected to pop 3 squares, got %d", len(seen))
	}
}
