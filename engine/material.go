// material.go implements the static evaluator: material plus
// piece-square tables, a passed-pawn bonus and a sliding-piece blockage
// penalty, returned from the side-to-move's perspective.
//
// Piece-square tables are indexed a1..h8 (index 0 is a1) from White's
// point of view; Black's pieces are looked up at the rank-mirrored
// square so that a color-swapped, rank-flipped position evaluates to
// the same score up to sign. This mirroring is not present in the
// source this evaluator descends from, which indexes every piece at
// its raw square regardless of color — that breaks the symmetry this
// evaluator is required to hold, so the mirroring is added back here.

package engine

// checkmateValue is the sentinel added when a side has no king left on
// the board, so king-capture lines dominate every other term.
const checkmateValue = 20000

// blockagePenalty is charged once per sliding-piece ray whose first
// blocker is a cheaper friendly non-king piece.
const blockagePenalty = 20

var pieceValue = [FigureArraySize]int{
	NoFigure: 0,
	Pawn:     10,
	Knight:   30,
	Bishop:   32,
	Rook:     50,
	Queen:    90,
	King:     0,
}

var pawnTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 15, 5, 5, 35, 50, 10,
	10, 20, 30, 15, 15, 30, 20, 20,
	5, 10, 20, 35, 35, 20, 10, 30,
	0, 5, 10, 35, 35, 10, 5, 0,
	0, 10, 10, 20, 20, 10, 10, 0,
	0, 10, -5, 0, 0, -5, 10, 0,
	0, 5, 5, -10, -10, 5, 5, 0,
}

var pawnEndTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 5, 5, 5, 5, 5, 5, 5,
	10, 10, 10, 10, 10, 10, 10, 10,
	20, 20, 20, 20, 20, 20, 20, 20,
	35, 35, 35, 35, 35, 35, 35, 35,
	40, 40, 40, 40, 40, 40, 40, 40,
	45, 45, 45, 45, 45, 45, 45, 45,
	50, 50, 50, 50, 50, 50, 50, 50,
}

var knightTable = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]int{
	0, 0, 3, 5, 5, 3, 0, 0,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-5, 0, 0, 0, 0, 0, 0, -5,
	10, 10, 10, 10, 10, 10, 10, 10,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var queenTable = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-10, 5, 5, 5, 5, 5, 0, -10,
	0, 0, 5, 5, 5, 5, 0, -5,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingOpeningTable = [64]int{
	20, 30, 10, 0, 0, 10, 30, 20,
	20, 20, 0, 0, 0, 0, 20, 20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
}

var kingEndgameTable = [64]int{
	-50, -30, -30, -30, -30, -30, -30, -50,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -20, -20, 0, 0, -20, -20, -30,
	-50, -40, -30, -20, -20, -30, -40, -50,
}

// slidingOffsets maps each sliding figure to its step vectors (the same
// arrays move generation walks), for the blockage-penalty term below.
var slidingOffsets = map[Figure][]int{
	Bishop: bishopOffsets[:],
	Rook:   rookOffsets[:],
	Queen:  queenOffsets[:],
}

// Evaluate returns a static score for pos from the side-to-move's
// perspective: positive favors the side about to move.
func Evaluate(pos *Position) int {
	endgame := isEndgame(pos)
	white := evaluateSide(pos, White, endgame)
	black := evaluateSide(pos, Black, endgame)
	total := white - black
	if pos.SideToMove == Black {
		total = -total
	}
	return total
}

func isEndgame(pos *Position) bool {
	n := 0
	for c := Color(0); c < ColorArraySize; c++ {
		for f := Pawn; f <= Queen; f++ {
			n += pos.ByPiece(c, f).Popcnt()
		}
	}
	return n <= 12
}

func evaluateSide(pos *Position, c Color, endgame bool) int {
	score := 0
	for f := Pawn; f <= Queen; f++ {
		for bb := pos.ByPiece(c, f); bb != 0; {
			sq := bb.Pop()
			score += pieceValue[f] + pstValue(f, sq, c, endgame)
		}
	}

	kingBB := pos.ByPiece(c, King)
	if kingBB == 0 {
		score += checkmateValue
	} else {
		ksq := Square(trailingZeros(uint64(kingBB)))
		score += pstValue(King, ksq, c, endgame)
	}

	score += passedPawnBonus(pos, c)
	score -= blockagePenaltyFor(pos, c)
	return score
}

// relSquare returns sq as seen from c's own rank-zero back rank: the
// identity for White, rank-flipped for Black.
func relSquare(sq Square, c Color) Square {
	if c == White {
		return sq
	}
	return RankFile(7-sq.Rank(), sq.File())
}

func pstValue(fig Figure, sq Square, c Color, endgame bool) int {
	rsq := relSquare(sq, c)
	switch fig {
	case Pawn:
		if endgame {
			return pawnEndTable[rsq]
		}
		return pawnTable[rsq]
	case Knight:
		return knightTable[rsq]
	case Bishop:
		return bishopTable[rsq]
	case Rook:
		return rookTable[rsq]
	case Queen:
		return queenTable[rsq]
	case King:
		if endgame {
			return kingEndgameTable[rsq]
		}
		return kingOpeningTable[rsq]
	}
	return 0
}

// passedPawnBonus sums rank_advancement*10 over every pawn of c that has
// no enemy pawn on its file or an adjacent file, ahead of it.
func passedPawnBonus(pos *Position, c Color) int {
	enemyPawns := pos.ByPiece(c.Opposite(), Pawn)
	bonus := 0
	for pawns := pos.ByPiece(c, Pawn); pawns != 0; {
		sq := pawns.Pop()
		rank, file := sq.Rank(), sq.File()
		fmin, fmax := file-1, file+1
		if fmin < 0 {
			fmin = 0
		}
		if fmax > 7 {
			fmax = 7
		}

		var blockMask Bitboard
		if c == White {
			for r := rank + 1; r < 8; r++ {
				for f := fmin; f <= fmax; f++ {
					blockMask |= RankFile(r, f).Bitboard()
				}
			}
		} else {
			for r := rank - 1; r >= 0; r-- {
				for f := fmin; f <= fmax; f++ {
					blockMask |= RankFile(r, f).Bitboard()
				}
			}
		}

		if blockMask&enemyPawns == 0 {
			if c == White {
				bonus += rank * 10
			} else {
				bonus += (7 - rank) * 10
			}
		}
	}
	return bonus
}

// blockagePenaltyFor charges 20 points for every ray of every sliding
// piece (rook, bishop, queen) of c whose first blocker is a cheaper
// friendly non-king piece; a piece blocked on several rays pays for each. Each slider walks its own offsets against its
// own value; a source variant of this term crossed sliders' offsets and
// values, which silently mis-scored every blockage it detected.
func blockagePenaltyFor(pos *Position, c Color) int {
	penalty := 0
	for _, fig := range [3]Figure{Rook, Bishop, Queen} {
		offsets := slidingOffsets[fig]
		for bb := pos.ByPiece(c, fig); bb != 0; {
			from := bb.Pop()
			for _, off := range offsets {
				cur := from
				for {
					toIdx := int(cur) + off
					if toIdx < 0 || toIdx >= 64 {
						break
					}
					to := Square(toIdx)
					if chebyshev(cur, to) != 1 {
						break
					}
					blocker, ok := pos.Get(to)
					if ok {
						if blocker.Color() == c && blocker.Figure() != King && pieceValue[blocker.Figure()] < pieceValue[fig] {
							penalty += blockagePenalty
						}
						break
					}
					cur = to
				}
			}
		}
	}
	return penalty
}
