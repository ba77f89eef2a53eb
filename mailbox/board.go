// Package mailbox implements a 10x12 mailbox chess board with sparse
// piece lists, incremental Zobrist hashing, legal move generation
// with a fast make/unmake legality filter, and FEN support.
//
// Playable squares are indices 21..98 (a1 = 21, h8 = 98); the
// surrounding ring of cells holds a sentinel so sliding-piece rays
// terminate without bounds checks.
package mailbox

// Piece is one board cell. Bit 4 marks white, bit 5 black, bit 6 the
// off-board sentinel; the low four bits encode the kind. The encoding
// is chosen so family tests reduce to single mask compares: diagonal
// sliders satisfy p&WDiag == WDiag and straight sliders satisfy
// p&WStrt == WStrt (likewise for black).
type Piece uint32

const (
	Empty Piece = 0x00

	WPawn   Piece = 0x10
	WKnight Piece = 0x11
	WBishop Piece = 0x12
	WRook   Piece = 0x14
	WQueen  Piece = 0x16
	WKing   Piece = 0x18

	BPawn   Piece = 0x20
	BKnight Piece = 0x21
	BBishop Piece = 0x22
	BRook   Piece = 0x24
	BQueen  Piece = 0x26
	BKing   Piece = 0x28

	// Color and family masks.
	White Piece = 0x10
	Black Piece = 0x20
	WDiag Piece = 0x12
	WStrt Piece = 0x14
	BDiag Piece = 0x22
	BStrt Piece = 0x24

	// Full marks the sentinel ring around the playable area.
	Full Piece = 0x40
)

const (
	// MaxMoves bounds the number of legal moves in any reachable
	// position; move buffers are sized to it.
	MaxMoves = 256
	// MaxDepth bounds search plus quiescence ply.
	MaxDepth = 128
	// HistorySize bounds the repetition ring.
	HistorySize = 1024
)

// Sides index the sparse piece lists.
const (
	SideWhite = 0
	SideBlack = 1
)

// State packs the en passant file in the low nibble (0xf meaning
// none), the four castling-rights bits, and the side-to-move bit.
type State uint32

const (
	stateEp  State = 0x000f
	stateWCK State = 0x0010
	stateWCQ State = 0x0020
	stateBCK State = 0x0040
	stateBCQ State = 0x0080
	stateBTM State = 0x0100
)

// EpFile returns the en passant file 0..7, or 0xf when none is set.
func (s State) EpFile() int { return int(s & stateEp) }

// WhiteToMove reports whether white has the move.
func (s State) WhiteToMove() bool { return s&stateBTM == 0 }

func (s State) CanCastleWK() bool { return s&stateWCK != 0 }
func (s State) CanCastleWQ() bool { return s&stateWCQ != 0 }
func (s State) CanCastleBK() bool { return s&stateBCK != 0 }
func (s State) CanCastleBQ() bool { return s&stateBCQ != 0 }

// nextMove clears the en passant file and flips the side to move.
func (s State) nextMove() State { return (s | stateEp) ^ stateBTM }

func (s State) withEp(file int) State { return s&^stateEp | State(file) }

// Board is the complete game state: the 10x12 cell grid, packed state
// word, move counters, Zobrist key, king squares, per-color sparse
// piece lists, and the repetition history ring.
type Board struct {
	Cells   [120]Piece
	State   State
	PlyCnt  uint32
	Rule50  uint32
	Zobrist uint64

	WhiteKing int
	BlackKing int

	pieces [2][16]int
	index  [120]int
	count  [2]int

	history [HistorySize]uint64
}

// NewBoard returns an empty board with the sentinel ring in place, no
// castling rights, and no en passant file.
func NewBoard() *Board {
	b := &Board{}
	for k := 0; k < 20; k++ {
		b.Cells[k] = Full
	}
	for k, y := 20, 0; y < 8; y++ {
		b.Cells[k] = Full
		k++
		for x := 0; x < 8; x++ {
			b.Cells[k] = Empty
			k++
		}
		b.Cells[k] = Full
		k++
	}
	for k := 100; k < 120; k++ {
		b.Cells[k] = Full
	}
	b.State = stateEp
	return b
}

// Pieces returns the occupied squares of the given side. The slice
// aliases the board and is invalidated by make/unmake.
func (b *Board) Pieces(side int) []int { return b.pieces[side][:b.count[side]] }

// PieceCount returns the total number of pieces on the board.
func (b *Board) PieceCount() int { return b.count[SideWhite] + b.count[SideBlack] }

// ListIndex returns the piece-list slot of square k, for consistency
// checks.
func (b *Board) ListIndex(k int) int { return b.index[k] }

func (b *Board) addPiece(side, k int) {
	l := b.count[side]
	b.pieces[side][l] = k
	b.index[k] = l
	b.count[side] = l + 1
}

// removePiece swaps the last list entry into the vacated slot so
// removal stays O(1).
func (b *Board) removePiece(side, k int) {
	l := b.index[k]
	m := b.count[side] - 1
	if l != m {
		moved := b.pieces[side][m]
		b.pieces[side][l] = moved
		b.index[moved] = l
	}
	b.count[side] = m
}

// initLists rebuilds both piece lists from the cell grid.
func (b *Board) initLists() error {
	b.count[SideWhite] = 0
	b.count[SideBlack] = 0
	for k := 21; k <= 98; k++ {
		switch {
		case b.Cells[k]&White != 0:
			if b.count[SideWhite] >= 16 {
				return errTooManyPieces
			}
			b.addPiece(SideWhite, k)
		case b.Cells[k]&Black != 0:
			if b.count[SideBlack] >= 16 {
				return errTooManyPieces
			}
			b.addPiece(SideBlack, k)
		}
	}
	return nil
}

// fileOf and rankOf map a cell index to its file and rank (0..7);
// sentinel cells map to 0.
var fileOf = [120]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 1, 2, 3, 4, 5, 6, 7, 0,
	0, 0, 1, 2, 3, 4, 5, 6, 7, 0,
	0, 0, 1, 2, 3, 4, 5, 6, 7, 0,
	0, 0, 1, 2, 3, 4, 5, 6, 7, 0,
	0, 0, 1, 2, 3, 4, 5, 6, 7, 0,
	0, 0, 1, 2, 3, 4, 5, 6, 7, 0,
	0, 0, 1, 2, 3, 4, 5, 6, 7, 0,
	0, 0, 1, 2, 3, 4, 5, 6, 7, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

var rankOf = [120]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 2, 2, 2, 2, 2, 2, 2, 2, 0,
	0, 3, 3, 3, 3, 3, 3, 3, 3, 0,
	0, 4, 4, 4, 4, 4, 4, 4, 4, 0,
	0, 5, 5, 5, 5, 5, 5, 5, 5, 0,
	0, 6, 6, 6, 6, 6, 6, 6, 6, 0,
	0, 7, 7, 7, 7, 7, 7, 7, 7, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// FileOf returns the file 0..7 of playable square k.
func FileOf(k int) int { return fileOf[k] }

// RankOf returns the rank 0..7 of playable square k.
func RankOf(k int) int { return rankOf[k] }

// Square returns the cell index of the given file and rank (both
// 0..7).
func Square(file, rank int) int { return 21 + rank*10 + file }

// centerWeight prefers central squares; it drives both the minor
// piece placement score and the forced-move extension heuristic.
var centerWeight = [120]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 1, 2, 3, 3, 2, 1, 0, 0,
	0, 1, 4, 5, 6, 6, 5, 4, 1, 0,
	0, 2, 5, 7, 8, 8, 7, 5, 2, 0,
	0, 3, 6, 9, 11, 11, 9, 6, 3, 0,
	0, 3, 6, 9, 11, 11, 9, 6, 3, 0,
	0, 2, 5, 7, 8, 8, 7, 5, 2, 0,
	0, 1, 4, 5, 6, 6, 5, 4, 1, 0,
	0, 0, 1, 2, 3, 3, 2, 1, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// CenterWeight returns the central placement weight of square k.
func CenterWeight(k int) int { return centerWeight[k] }
