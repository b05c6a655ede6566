// pretty.go renders a Position as a human-readable board, the same way
// a PGN viewer would show one: an 8x8 grid with a double rule border,
// built with github.com/clinaresl/table rather than hand-aligned
// strings.

package engine

import (
	"fmt"

	"github.com/clinaresl/table"
)

var pieceGlyph = [...]rune{
	'P', 'N', 'B', 'R', 'Q', 'K',
	'p', 'n', 'b', 'r', 'q', 'k',
}

// Pretty renders pos as an 8x8 board, rank 8 at the top, with a shaded
// square for empty dark squares the way a printed diagram would.
func (pos *Position) Pretty() string {
	tab, err := table.NewTable("||cccccccc||")
	if err != nil {
		return pos.String()
	}
	tab.AddDoubleRule()
	for rank := 7; rank >= 0; rank-- {
		row := make([]any, 8)
		for file := 0; file < 8; file++ {
			sq := RankFile(rank, file)
			if pi, ok := pos.Get(sq); ok {
				row[file] = string(pieceGlyph[pi])
			} else if (rank+file)%2 == 0 {
				row[file] = "▒"
			} else {
				row[file] = " "
			}
		}
		tab.AddRow(row...)
	}
	tab.AddDoubleRule()
	return fmt.Sprintf("%v", tab)
}
