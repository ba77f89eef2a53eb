package mailbox

// Attack probes test whether any piece of one color attacks a given
// square. Ray scans rely on the sentinel ring for termination: the
// ring cell is never Empty and never matches a slider family mask.

func (b *Board) whitePawnAttacks(k int) bool {
	return b.Cells[k-11] == WPawn || b.Cells[k-9] == WPawn
}

func (b *Board) whiteKnightAttacks(k int) bool {
	return b.Cells[k-21] == WKnight || b.Cells[k-19] == WKnight ||
		b.Cells[k-12] == WKnight || b.Cells[k-8] == WKnight ||
		b.Cells[k+8] == WKnight || b.Cells[k+12] == WKnight ||
		b.Cells[k+19] == WKnight || b.Cells[k+21] == WKnight
}

func (b *Board) whiteKingAttacks(k int) bool {
	return b.Cells[k-11] == WKing || b.Cells[k-10] == WKing ||
		b.Cells[k-9] == WKing || b.Cells[k-1] == WKing ||
		b.Cells[k+1] == WKing || b.Cells[k+9] == WKing ||
		b.Cells[k+10] == WKing || b.Cells[k+11] == WKing
}

var diagDirs = [4]int{-11, -9, 9, 11}
var strtDirs = [4]int{-10, -1, 1, 10}

func (b *Board) whiteDiagAttacks(k int) bool {
	for _, d := range diagDirs {
		kk := k
		for {
			kk += d
			if b.Cells[kk] != Empty {
				break
			}
		}
		if b.Cells[kk]&WDiag == WDiag {
			return true
		}
	}
	return false
}

func (b *Board) whiteStraightAttacks(k int) bool {
	for _, d := range strtDirs {
		kk := k
		for {
			kk += d
			if b.Cells[kk] != Empty {
				break
			}
		}
		if b.Cells[kk]&WStrt == WStrt {
			return true
		}
	}
	return false
}

// AttackedByWhite reports whether any white piece attacks square k,
// excluding en passant captures.
func (b *Board) AttackedByWhite(k int) bool {
	return b.whitePawnAttacks(k) || b.whiteKnightAttacks(k) || b.whiteKingAttacks(k) ||
		b.whiteDiagAttacks(k) || b.whiteStraightAttacks(k)
}

func (b *Board) blackPawnAttacks(k int) bool {
	return b.Cells[k+9] == BPawn || b.Cells[k+11] == BPawn
}

func (b *Board) blackKnightAttacks(k int) bool {
	return b.Cells[k-21] == BKnight || b.Cells[k-19] == BKnight ||
		b.Cells[k-12] == BKnight || b.Cells[k-8] == BKnight ||
		b.Cells[k+8] == BKnight || b.Cells[k+12] == BKnight ||
		b.Cells[k+19] == BKnight || b.Cells[k+21] == BKnight
}

func (b *Board) blackKingAttacks(k int) bool {
	return b.Cells[k-11] == BKing || b.Cells[k-10] == BKing ||
		b.Cells[k-9] == BKing || b.Cells[k-1] == BKing ||
		b.Cells[k+1] == BKing || b.Cells[k+9] == BKing ||
		b.Cells[k+10] == BKing || b.Cells[k+11] == BKing
}

func (b *Board) blackDiagAttacks(k int) bool {
	for _, d := range diagDirs {
		kk := k
		for {
			kk += d
			if b.Cells[kk] != Empty {
				break
			}
		}
		if b.Cells[kk]&BDiag == BDiag {
			return true
		}
	}
	return false
}

func (b *Board) blackStraightAttacks(k int) bool {
	for _, d := range strtDirs {
		kk := k
		for {
			kk += d
			if b.Cells[kk] != Empty {
				break
			}
		}
		if b.Cells[kk]&BStrt == BStrt {
			return true
		}
	}
	return false
}

// AttackedByBlack reports whether any black piece attacks square k,
// excluding en passant captures.
func (b *Board) AttackedByBlack(k int) bool {
	return b.blackPawnAttacks(k) || b.blackKnightAttacks(k) || b.blackKingAttacks(k) ||
		b.blackDiagAttacks(k) || b.blackStraightAttacks(k)
}

// InCheck reports whether the side to move is in check.
func (b *Board) InCheck() bool {
	if b.State.WhiteToMove() {
		return b.AttackedByBlack(b.WhiteKing)
	}
	return b.AttackedByWhite(b.BlackKing)
}
