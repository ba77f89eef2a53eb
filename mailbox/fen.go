package mailbox

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the standard chess starting position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var errTooManyPieces = errors.New("fen: more than 16 pieces on one side")

var fenPiece = map[rune]Piece{
	'p': BPawn, 'n': BKnight, 'b': BBishop, 'r': BRook, 'q': BQueen, 'k': BKing,
	'P': WPawn, 'N': WKnight, 'B': WBishop, 'R': WRook, 'Q': WQueen, 'K': WKing,
}

// ParseFEN builds a board from a FEN record. The halfmove clock seeds
// the fifty-move counter; the fullmove number is accepted and
// ignored. An en passant square on any rank other than 3 or 6 is
// rejected.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("fen: expected at least 4 fields, got %d", len(fields))
	}

	b := NewBoard()

	kk, k := 91, 91
	for _, c := range fields[0] {
		switch {
		case c == '/':
			if k != kk+8 {
				return nil, fmt.Errorf("fen: rank %d has wrong length", RankOf(kk)+1)
			}
			kk -= 10
			k = kk
			if kk < 21 {
				return nil, errors.New("fen: too many ranks")
			}
		case '1' <= c && c <= '8':
			k += int(c - '0')
			if k > kk+8 {
				return nil, fmt.Errorf("fen: rank %d overflows", RankOf(kk)+1)
			}
		default:
			p, ok := fenPiece[c]
			if !ok {
				return nil, fmt.Errorf("fen: unexpected character %q in placement", c)
			}
			if k >= kk+8 {
				return nil, fmt.Errorf("fen: rank %d overflows", RankOf(kk)+1)
			}
			if p == WKing {
				b.WhiteKing = k
			} else if p == BKing {
				b.BlackKing = k
			}
			b.Cells[k] = p
			k++
		}
	}
	if kk != 21 || k != 29 {
		return nil, errors.New("fen: placement does not cover 8 ranks")
	}
	if b.WhiteKing == 0 || b.BlackKing == 0 {
		return nil, errors.New("fen: missing king")
	}

	switch fields[1] {
	case "w":
	case "b":
		b.State |= stateBTM
	default:
		return nil, fmt.Errorf("fen: bad active color %q", fields[1])
	}

	for _, c := range fields[2] {
		switch c {
		case 'K':
			b.State |= stateWCK
		case 'Q':
			b.State |= stateWCQ
		case 'k':
			b.State |= stateBCK
		case 'q':
			b.State |= stateBCQ
		case '-':
		default:
			return nil, fmt.Errorf("fen: bad castling field %q", fields[2])
		}
	}

	if ep := fields[3]; ep != "-" {
		if len(ep) != 2 || ep[0] < 'a' || ep[0] > 'h' || (ep[1] != '3' && ep[1] != '6') {
			return nil, fmt.Errorf("fen: bad en passant square %q", ep)
		}
		b.State = b.State.withEp(int(ep[0] - 'a'))
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("fen: bad halfmove clock %q", fields[4])
		}
		b.Rule50 = uint32(n)
	}

	if err := b.initLists(); err != nil {
		return nil, err
	}
	b.Zobrist = b.ComputeZobrist()
	return b, nil
}

var pieceFEN = map[Piece]byte{
	BPawn: 'p', BKnight: 'n', BBishop: 'b', BRook: 'r', BQueen: 'q', BKing: 'k',
	WPawn: 'P', WKnight: 'N', WBishop: 'B', WRook: 'R', WQueen: 'Q', WKing: 'K',
}

// ToFEN renders the position as a FEN record. The fullmove number is
// not tracked and is emitted as 1.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for kk := 91; kk >= 21; kk -= 10 {
		empty := 0
		for k := kk; k < kk+8; k++ {
			if b.Cells[k] == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pieceFEN[b.Cells[k]])
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if kk > 21 {
			sb.WriteByte('/')
		}
	}

	if b.State.WhiteToMove() {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	castle := ""
	if b.State.CanCastleWK() {
		castle += "K"
	}
	if b.State.CanCastleWQ() {
		castle += "Q"
	}
	if b.State.CanCastleBK() {
		castle += "k"
	}
	if b.State.CanCastleBQ() {
		castle += "q"
	}
	if castle == "" {
		castle = "-"
	}
	sb.WriteString(castle)

	if f := b.State.EpFile(); f != 0xf {
		rank := byte('3')
		if b.State.WhiteToMove() {
			rank = '6'
		}
		sb.WriteByte(' ')
		sb.WriteByte(byte('a' + f))
		sb.WriteByte(rank)
	} else {
		sb.WriteString(" -")
	}

	fmt.Fprintf(&sb, " %d 1", b.Rule50)
	return sb.String()
}
