package mailbox

// Undo snapshots the irreversible parts of the board state. Apply
// returns one and Unapply consumes it; the caller keeps it on its
// stack so undo never allocates.
type Undo struct {
	state   State
	plyCnt  uint32
	rule50  uint32
	zobrist uint64
}

// NullUndo snapshots the state for a null move.
type NullUndo struct {
	state  State
	plyCnt uint32
}

// Apply plays m in full mode: cells, piece lists, king squares,
// Zobrist key, castling rights, en passant file, fifty-move counter,
// and the repetition ring are all maintained. The returned Undo must
// be passed to Unapply with the same move.
//
// The position key recorded in the repetition ring is the key of the
// position being left, so RepetitionSloppy compares the current key
// against predecessors only.
func (b *Board) Apply(m Move) (Move, Undo) {
	u := Undo{
		state:   b.State,
		plyCnt:  b.PlyCnt,
		rule50:  b.Rule50,
		zobrist: b.Zobrist,
	}

	f := m.From()
	t := m.To()
	side := SideBlack
	if b.State.WhiteToMove() {
		side = SideWhite
	}
	nz := b.Zobrist

	if m&MoveEnPass != 0 {
		// The captured pawn sits beside the destination square.
		var victim int
		if t <= 48 {
			// Black pawn captures en passant; the white victim is
			// above the destination.
			victim = t + 10
			m |= Move(WPawn) << 24
		} else {
			victim = t - 10
			m |= Move(BPawn) << 24
		}
		nz ^= zobKey(victim, b.Cells[victim])
		b.removePiece(1-side, victim)
		b.Cells[victim] = Empty
	} else if cap := b.Cells[t]; cap != Empty {
		m = m&^moveCap | Move(cap)<<24
		nz ^= zobKey(t, cap)
		b.removePiece(1-side, t)
	}

	mover := b.Cells[f]
	pawnMove := mover == WPawn || mover == BPawn
	nz ^= zobKey(f, mover)
	b.Cells[f] = Empty
	if p := m.Promotion(); p != Empty {
		mover = p
	}
	b.Cells[t] = mover
	nz ^= zobKey(t, mover)

	if m.Captured() == Empty {
		// A quiet move keeps the mover in its list slot.
		l := b.index[f]
		b.pieces[side][l] = t
		b.index[t] = l
	} else {
		b.removePiece(side, f)
		b.addPiece(side, t)
	}

	switch mover {
	case WKing:
		b.WhiteKing = t
	case BKing:
		b.BlackKing = t
	}

	if m&MoveCastle != 0 {
		nz = b.castleRook(t, nz)
	}

	b.recordPosition()

	if m.Captured() != Empty || pawnMove {
		b.Rule50 = 0
	} else {
		b.Rule50++
	}

	b.Zobrist = nz ^ zobSide
	b.State = b.State.nextMove()

	if b.Cells[t] == WPawn && f <= 38 && 51 <= t {
		b.State = b.State.withEp(f - 31)
	} else if b.Cells[t] == BPawn && 81 <= f && t <= 68 {
		b.State = b.State.withEp(f - 81)
	} else if b.State&(stateWCK|stateWCQ|stateBCK|stateBCQ) != 0 {
		switch f {
		case 25:
			b.State &^= stateWCK | stateWCQ
		case 95:
			b.State &^= stateBCK | stateBCQ
		case 21:
			b.State &^= stateWCQ
		case 28:
			b.State &^= stateWCK
		case 91:
			b.State &^= stateBCQ
		case 98:
			b.State &^= stateBCK
		}
	}

	return m, u
}

// castleRook moves the rook half of a castling move, keyed on the
// king's destination square, and returns the updated key.
func (b *Board) castleRook(t int, nz uint64) uint64 {
	switch t {
	case 23:
		b.Cells[21] = Empty
		b.Cells[24] = WRook
		nz ^= zobKey(21, WRook) ^ zobKey(24, WRook)
		b.removePiece(SideWhite, 21)
		b.addPiece(SideWhite, 24)
	case 27:
		b.Cells[28] = Empty
		b.Cells[26] = WRook
		nz ^= zobKey(28, WRook) ^ zobKey(26, WRook)
		b.removePiece(SideWhite, 28)
		b.addPiece(SideWhite, 26)
	case 93:
		b.Cells[91] = Empty
		b.Cells[94] = BRook
		nz ^= zobKey(91, BRook) ^ zobKey(94, BRook)
		b.removePiece(SideBlack, 91)
		b.addPiece(SideBlack, 94)
	case 97:
		b.Cells[98] = Empty
		b.Cells[96] = BRook
		nz ^= zobKey(98, BRook) ^ zobKey(96, BRook)
		b.removePiece(SideBlack, 98)
		b.addPiece(SideBlack, 96)
	}
	return nz
}

// Unapply reverses a full-mode Apply. The move must carry the capture
// bits Apply filled in.
func (b *Board) Unapply(m Move, u Undo) {
	b.State = u.state
	b.PlyCnt = u.plyCnt
	b.Rule50 = u.rule50
	b.Zobrist = u.zobrist

	f := m.From()
	t := m.To()
	side := SideBlack
	if b.State.WhiteToMove() {
		side = SideWhite
	}

	mover := b.Cells[t]
	if m.IsPromotion() {
		if t <= 28 {
			mover = BPawn
		} else {
			mover = WPawn
		}
	}
	b.Cells[f] = mover
	b.Cells[t] = Empty
	b.removePiece(side, t)
	b.addPiece(side, f)

	switch mover {
	case WKing:
		b.WhiteKing = f
	case BKing:
		b.BlackKing = f
	}

	if m&MoveEnPass != 0 {
		var victim int
		if t <= 48 {
			victim = t + 10
			b.Cells[victim] = WPawn
		} else {
			victim = t - 10
			b.Cells[victim] = BPawn
		}
		b.addPiece(1-side, victim)
	} else if cap := m.Captured(); cap != Empty {
		b.Cells[t] = cap
		b.addPiece(1-side, t)
	}

	if m&MoveCastle != 0 {
		switch t {
		case 23:
			b.Cells[21] = WRook
			b.Cells[24] = Empty
			b.removePiece(SideWhite, 24)
			b.addPiece(SideWhite, 21)
		case 27:
			b.Cells[28] = WRook
			b.Cells[26] = Empty
			b.removePiece(SideWhite, 26)
			b.addPiece(SideWhite, 28)
		case 93:
			b.Cells[91] = BRook
			b.Cells[94] = Empty
			b.removePiece(SideBlack, 94)
			b.addPiece(SideBlack, 91)
		case 97:
			b.Cells[98] = BRook
			b.Cells[96] = Empty
			b.removePiece(SideBlack, 96)
			b.addPiece(SideBlack, 98)
		}
	}
}

// applyFast plays m in fast mode: only cells and king squares are
// touched. It fills the move's capture bits and sets the check flag
// when the move leaves the opponent's king attacked. The caller must
// reverse it with unapplyFast before any other board operation.
func (b *Board) applyFast(m Move) Move {
	f := m.From()
	t := m.To()

	if m&MoveEnPass != 0 {
		if t <= 48 {
			b.Cells[t+10] = Empty
			m |= Move(WPawn) << 24
		} else {
			b.Cells[t-10] = Empty
			m |= Move(BPawn) << 24
		}
	} else if cap := b.Cells[t]; cap != Empty {
		m = m&^moveCap | Move(cap)<<24
	}

	mover := b.Cells[f]
	b.Cells[f] = Empty
	if p := m.Promotion(); p != Empty {
		mover = p
	}
	b.Cells[t] = mover

	switch mover {
	case WKing:
		b.WhiteKing = t
	case BKing:
		b.BlackKing = t
	}

	if m&MoveCastle != 0 {
		switch t {
		case 23:
			b.Cells[21] = Empty
			b.Cells[24] = WRook
		case 27:
			b.Cells[28] = Empty
			b.Cells[26] = WRook
		case 93:
			b.Cells[91] = Empty
			b.Cells[94] = BRook
		case 97:
			b.Cells[98] = Empty
			b.Cells[96] = BRook
		}
	}

	if mover&White != 0 {
		if b.AttackedByWhite(b.BlackKing) {
			m |= MoveCheck
		}
	} else if b.AttackedByBlack(b.WhiteKing) {
		m |= MoveCheck
	}
	return m
}

// unapplyFast reverses applyFast. The move must carry the capture
// bits applyFast filled in.
func (b *Board) unapplyFast(m Move) {
	f := m.From()
	t := m.To()

	mover := b.Cells[t]
	if m.IsPromotion() {
		if t <= 28 {
			mover = BPawn
		} else {
			mover = WPawn
		}
	}
	b.Cells[f] = mover
	b.Cells[t] = Empty

	switch mover {
	case WKing:
		b.WhiteKing = f
	case BKing:
		b.BlackKing = f
	}

	if m&MoveEnPass != 0 {
		if t <= 48 {
			b.Cells[t+10] = WPawn
		} else {
			b.Cells[t-10] = BPawn
		}
	} else if cap := m.Captured(); cap != Empty {
		b.Cells[t] = cap
	}

	if m&MoveCastle != 0 {
		switch t {
		case 23:
			b.Cells[21] = WRook
			b.Cells[24] = Empty
		case 27:
			b.Cells[28] = WRook
			b.Cells[26] = Empty
		case 93:
			b.Cells[91] = BRook
			b.Cells[94] = Empty
		case 97:
			b.Cells[98] = BRook
			b.Cells[96] = Empty
		}
	}
}

// ApplyNull passes the move: the side to move flips, the en passant
// file clears, and the position is recorded so repetition detection
// still sees it.
func (b *Board) ApplyNull() NullUndo {
	u := NullUndo{state: b.State, plyCnt: b.PlyCnt}
	b.recordPosition()
	b.State = b.State.nextMove()
	b.Zobrist ^= zobSide
	return u
}

// UndoNull reverses ApplyNull.
func (b *Board) UndoNull(u NullUndo) {
	b.State = u.state
	b.PlyCnt = u.plyCnt
	b.Zobrist ^= zobSide
}
