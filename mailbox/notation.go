package mailbox

import (
	"fmt"
	"strings"
)

// pieceChar returns the upper-case piece letter, or a space for pawns
// and empty cells.
func pieceChar(p Piece) byte {
	switch p &^ (White | Black) {
	case 0x01:
		return 'N'
	case 0x02:
		return 'B'
	case 0x04:
		return 'R'
	case 0x06:
		return 'Q'
	case 0x08:
		return 'K'
	}
	return ' '
}

// Notation renders m in shorthand algebraic form against the current
// position (the move must not have been applied yet): piece letter,
// origin, x or -, destination, promotion letter, with fixed-width
// padding, "0-0"/"0-0-0" for castling, an "ep" suffix for en passant,
// and a trailing + when the move gives check.
func (b *Board) Notation(m Move) string {
	var sb strings.Builder
	f, t := m.From(), m.To()
	switch {
	case m&MoveCastle != 0:
		if t == 27 || t == 97 {
			sb.WriteString(" 0-0    ")
		} else {
			sb.WriteString(" 0-0-0  ")
		}
	case m&MoveEnPass != 0:
		fmt.Fprintf(&sb, " %c%dx%c%dep",
			'a'+FileOf(f), RankOf(f)+1, 'a'+FileOf(t), RankOf(t)+1)
	default:
		mt := byte('-')
		if b.Cells[t] != Empty {
			mt = 'x'
		}
		fmt.Fprintf(&sb, "%c%c%d%c%c%d%c ",
			pieceChar(b.Cells[f]), 'a'+FileOf(f), RankOf(f)+1,
			mt, 'a'+FileOf(t), RankOf(t)+1, pieceChar(m.Promotion()))
	}
	if m&MoveCheck != 0 {
		sb.WriteByte('+')
	} else {
		sb.WriteByte(' ')
	}
	return sb.String()
}
