package mailbox

import "math/rand"

const (
	zobSquares = 78 // playable squares 21..98
	zobPieces  = 32 // piece codes WPawn..BKing
)

var (
	zobTable [zobSquares][zobPieces]uint64
	zobSide  uint64
)

// The tables are seeded deterministically so that node counts and
// chosen moves reproduce exactly across runs.
func init() {
	rng := rand.New(rand.NewSource(1))
	for i := range zobTable {
		for j := range zobTable[i] {
			zobTable[i][j] = rng.Uint64()
		}
	}
	zobSide = rng.Uint64()
}

func zobKey(k int, p Piece) uint64 { return zobTable[k-21][p-WPawn] }

// ComputeZobrist recomputes the position key from scratch. Make and
// unmake maintain the key incrementally; this is the reference used
// at FEN setup and by consistency tests.
//
// The key deliberately excludes the en passant file and castling
// rights, matching the incremental updates.
func (b *Board) ComputeZobrist() uint64 {
	var z uint64
	if !b.State.WhiteToMove() {
		z = zobSide
	}
	for k := 21; k <= 98; k++ {
		if b.Cells[k]&(White|Black) != 0 {
			z ^= zobKey(k, b.Cells[k])
		}
	}
	return z
}

// recordPosition appends the current key to the repetition ring.
// Positions past the ring capacity are not recorded.
func (b *Board) recordPosition() {
	if b.PlyCnt < HistorySize {
		b.history[b.PlyCnt] = b.Zobrist
		b.PlyCnt++
	}
}

// RepetitionSloppy reports a repetition as soon as the current key
// matches any prior key within the fifty-move window. Claiming the
// draw on the first repeat rather than the third surfaces forcible
// repetitions earlier and allows earlier transposition cutoffs.
func (b *Board) RepetitionSloppy() bool {
	if b.Rule50 >= 4 {
		c := int(b.Rule50 >> 1)
		p := int(b.PlyCnt)
		for i := 0; i < c; i++ {
			p -= 2
			if p < 0 {
				break
			}
			if b.history[p] == b.Zobrist {
				return true
			}
		}
	}
	return false
}
