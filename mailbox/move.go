package mailbox

import "fmt"

// Move packs a full move into 32 bits: from in bits 0..7, to in bits
// 8..15, promotion piece code in bits 16..21, check flag in bit 22,
// captured piece code in bits 24..29, castle flag in bit 30, en
// passant flag in bit 31. Capture and check bits are filled in by the
// board when the move is applied or generated, so two Moves for the
// same from/to pair compare equal only once both went through the
// same path.
type Move uint32

const (
	moveFrom  Move = 0x000000ff
	moveTo    Move = 0x0000ff00
	movePromo Move = 0x003f0000
	moveCap   Move = 0x3f000000

	// MoveCheck marks a move that gives check.
	MoveCheck Move = 0x00400000
	// MoveCastle marks a castling move.
	MoveCastle Move = 0x40000000
	// MoveEnPass marks an en passant capture.
	MoveEnPass Move = 0x80000000
)

// NewMove builds a move from its origin and destination squares and a
// code word: a promotion piece code, or the castle/en passant flag
// shifted down to the code position.
func NewMove(from, to int, code uint32) Move {
	return Move(uint32(from) | uint32(to)<<8 | code<<16)
}

// From returns the origin square.
func (m Move) From() int { return int(m & moveFrom) }

// To returns the destination square.
func (m Move) To() int { return int(m&moveTo) >> 8 }

// Promotion returns the promotion piece code, or Empty.
func (m Move) Promotion() Piece { return Piece(m&movePromo) >> 16 }

// Captured returns the captured piece code, or Empty. It is filled in
// when the move is applied.
func (m Move) Captured() Piece { return Piece(m&moveCap) >> 24 }

// IsCheck reports whether the move gives check. The flag is filled in
// by the fast legality filter during generation.
func (m Move) IsCheck() bool { return m&MoveCheck != 0 }

// IsCastle reports whether the move is castling.
func (m Move) IsCastle() bool { return m&MoveCastle != 0 }

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool { return m&MoveEnPass != 0 }

// IsCapture reports whether the move captures a piece.
func (m Move) IsCapture() bool { return m&(moveCap|MoveEnPass) != 0 }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m&movePromo != 0 }

// SameFromTo reports whether two moves share origin, destination and
// promotion piece; flag and capture bits are ignored.
func (m Move) SameFromTo(o Move) bool {
	return m&(moveFrom|moveTo|movePromo) == o&(moveFrom|moveTo|movePromo)
}

// String renders the move in coordinate notation (e2e4, e7e8q).
func (m Move) String() string {
	f, t := m.From(), m.To()
	s := fmt.Sprintf("%c%d%c%d",
		'a'+FileOf(f), RankOf(f)+1, 'a'+FileOf(t), RankOf(t)+1)
	if p := m.Promotion(); p != Empty {
		s += string(promoLetter(p))
	}
	return s
}

func promoLetter(p Piece) byte {
	switch p &^ (White | Black) {
	case 0x01:
		return 'n'
	case 0x02:
		return 'b'
	case 0x04:
		return 'r'
	case 0x06:
		return 'q'
	}
	return '?'
}
