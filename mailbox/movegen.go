package mailbox

// generator accumulates legal moves. Every candidate is probed with
// the fast make/unmake filter: the move is kept only if it does not
// leave the mover's own king attacked, and it comes back with its
// capture bits and check flag filled in.
type generator struct {
	b   *Board
	out []Move
	n   int
}

func (g *generator) addWhite(k, t int, code uint32) {
	m := g.b.applyFast(NewMove(k, t, code))
	ic := g.b.AttackedByBlack(g.b.WhiteKing)
	g.b.unapplyFast(m)
	if !ic {
		g.out[g.n] = m
		g.n++
	}
}

func (g *generator) addBlack(k, t int, code uint32) {
	m := g.b.applyFast(NewMove(k, t, code))
	ic := g.b.AttackedByWhite(g.b.BlackKing)
	g.b.unapplyFast(m)
	if !ic {
		g.out[g.n] = m
		g.n++
	}
}

// stepWhite emits a single-step move unless the target holds a white
// piece or the sentinel.
func (g *generator) stepWhite(k, t int) {
	if g.b.Cells[t]&(White|Full) == 0 {
		g.addWhite(k, t, 0)
	}
}

func (g *generator) stepBlack(k, t int) {
	if g.b.Cells[t]&(Black|Full) == 0 {
		g.addBlack(k, t, 0)
	}
}

// slideWhite walks a ray until it hits a white piece or the sentinel,
// emitting moves along the way and stopping after a capture.
func (g *generator) slideWhite(k, d int) {
	for kk := k + d; g.b.Cells[kk]&(White|Full) == 0; kk += d {
		g.addWhite(k, kk, 0)
		if g.b.Cells[kk] != Empty {
			break
		}
	}
}

func (g *generator) slideBlack(k, d int) {
	for kk := k + d; g.b.Cells[kk]&(Black|Full) == 0; kk += d {
		g.addBlack(k, kk, 0)
		if g.b.Cells[kk] != Empty {
			break
		}
	}
}

func (g *generator) whitePawn(k int) {
	b := g.b
	if b.Cells[k+10] == Empty {
		if k <= 78 {
			g.addWhite(k, k+10, 0)
			if k <= 38 && b.Cells[k+20] == Empty {
				g.addWhite(k, k+20, 0)
			}
		} else {
			g.addWhite(k, k+10, uint32(WKnight))
			g.addWhite(k, k+10, uint32(WBishop))
			g.addWhite(k, k+10, uint32(WRook))
			g.addWhite(k, k+10, uint32(WQueen))
		}
	}
	for kk := k + 9; kk <= k+11; kk += 2 {
		if b.Cells[kk]&Black != 0 {
			if k <= 78 {
				g.addWhite(k, kk, 0)
			} else {
				g.addWhite(k, kk, uint32(WKnight))
				g.addWhite(k, kk, uint32(WBishop))
				g.addWhite(k, kk, uint32(WRook))
				g.addWhite(k, kk, uint32(WQueen))
			}
		}
	}
	if 62 <= k && k <= 68 && k-62 == b.State.EpFile() {
		g.addWhite(k, k+9, uint32(MoveEnPass)>>16)
	} else if 61 <= k && k <= 67 && k-60 == b.State.EpFile() {
		g.addWhite(k, k+11, uint32(MoveEnPass)>>16)
	}
}

func (g *generator) blackPawn(k int) {
	b := g.b
	if b.Cells[k-10] == Empty {
		if 41 <= k {
			g.addBlack(k, k-10, 0)
			if 81 <= k && b.Cells[k-20] == Empty {
				g.addBlack(k, k-20, 0)
			}
		} else {
			g.addBlack(k, k-10, uint32(BKnight))
			g.addBlack(k, k-10, uint32(BBishop))
			g.addBlack(k, k-10, uint32(BRook))
			g.addBlack(k, k-10, uint32(BQueen))
		}
	}
	for kk := k - 11; kk <= k-9; kk += 2 {
		if b.Cells[kk]&White != 0 {
			if 41 <= k {
				g.addBlack(k, kk, 0)
			} else {
				g.addBlack(k, kk, uint32(BKnight))
				g.addBlack(k, kk, uint32(BBishop))
				g.addBlack(k, kk, uint32(BRook))
				g.addBlack(k, kk, uint32(BQueen))
			}
		}
	}
	if 52 <= k && k <= 58 && k-52 == b.State.EpFile() {
		g.addBlack(k, k-11, uint32(MoveEnPass)>>16)
	} else if 51 <= k && k <= 57 && k-50 == b.State.EpFile() {
		g.addBlack(k, k-9, uint32(MoveEnPass)>>16)
	}
}

func (g *generator) whiteKing(k int) {
	b := g.b
	g.stepWhite(k, k-11)
	g.stepWhite(k, k-10)
	g.stepWhite(k, k-9)
	g.stepWhite(k, k-1)
	g.stepWhite(k, k+1)
	g.stepWhite(k, k+9)
	g.stepWhite(k, k+10)
	g.stepWhite(k, k+11)
	if k != 25 {
		return
	}
	if b.State.CanCastleWK() &&
		b.Cells[26] == Empty && b.Cells[27] == Empty && b.Cells[28] == WRook &&
		!b.AttackedByBlack(25) && !b.AttackedByBlack(26) && !b.AttackedByBlack(27) {
		g.addWhite(k, 27, uint32(MoveCastle)>>16)
	}
	if b.State.CanCastleWQ() &&
		b.Cells[21] == WRook && b.Cells[22] == Empty && b.Cells[23] == Empty && b.Cells[24] == Empty &&
		!b.AttackedByBlack(23) && !b.AttackedByBlack(24) && !b.AttackedByBlack(25) {
		g.addWhite(k, 23, uint32(MoveCastle)>>16)
	}
}

func (g *generator) blackKing(k int) {
	b := g.b
	g.stepBlack(k, k-11)
	g.stepBlack(k, k-10)
	g.stepBlack(k, k-9)
	g.stepBlack(k, k-1)
	g.stepBlack(k, k+1)
	g.stepBlack(k, k+9)
	g.stepBlack(k, k+10)
	g.stepBlack(k, k+11)
	if k != 95 {
		return
	}
	if b.State.CanCastleBK() &&
		b.Cells[96] == Empty && b.Cells[97] == Empty && b.Cells[98] == BRook &&
		!b.AttackedByWhite(95) && !b.AttackedByWhite(96) && !b.AttackedByWhite(97) {
		g.addBlack(k, 97, uint32(MoveCastle)>>16)
	}
	if b.State.CanCastleBQ() &&
		b.Cells[91] == BRook && b.Cells[92] == Empty && b.Cells[93] == Empty && b.Cells[94] == Empty &&
		!b.AttackedByWhite(93) && !b.AttackedByWhite(94) && !b.AttackedByWhite(95) {
		g.addBlack(k, 93, uint32(MoveCastle)>>16)
	}
}

func (g *generator) whiteKnight(k int) {
	g.stepWhite(k, k-21)
	g.stepWhite(k, k-19)
	g.stepWhite(k, k-12)
	g.stepWhite(k, k-8)
	g.stepWhite(k, k+8)
	g.stepWhite(k, k+12)
	g.stepWhite(k, k+19)
	g.stepWhite(k, k+21)
}

func (g *generator) blackKnight(k int) {
	g.stepBlack(k, k-21)
	g.stepBlack(k, k-19)
	g.stepBlack(k, k-12)
	g.stepBlack(k, k-8)
	g.stepBlack(k, k+8)
	g.stepBlack(k, k+12)
	g.stepBlack(k, k+19)
	g.stepBlack(k, k+21)
}

func (g *generator) genWhite() {
	b := g.b
	for _, k := range b.Pieces(SideWhite) {
		switch b.Cells[k] {
		case WKing:
			g.whiteKing(k)
		case WKnight:
			g.whiteKnight(k)
		case WPawn:
			g.whitePawn(k)
		case WQueen:
			g.slideWhite(k, -11)
			g.slideWhite(k, -9)
			g.slideWhite(k, 9)
			g.slideWhite(k, 11)
			g.slideWhite(k, -10)
			g.slideWhite(k, -1)
			g.slideWhite(k, 1)
			g.slideWhite(k, 10)
		case WRook:
			g.slideWhite(k, -10)
			g.slideWhite(k, -1)
			g.slideWhite(k, 1)
			g.slideWhite(k, 10)
		case WBishop:
			g.slideWhite(k, -11)
			g.slideWhite(k, -9)
			g.slideWhite(k, 9)
			g.slideWhite(k, 11)
		}
	}
}

func (g *generator) genBlack() {
	b := g.b
	for _, k := range b.Pieces(SideBlack) {
		switch b.Cells[k] {
		case BKing:
			g.blackKing(k)
		case BKnight:
			g.blackKnight(k)
		case BPawn:
			g.blackPawn(k)
		case BQueen:
			g.slideBlack(k, -11)
			g.slideBlack(k, -9)
			g.slideBlack(k, 9)
			g.slideBlack(k, 11)
			g.slideBlack(k, -10)
			g.slideBlack(k, -1)
			g.slideBlack(k, 1)
			g.slideBlack(k, 10)
		case BRook:
			g.slideBlack(k, -10)
			g.slideBlack(k, -1)
			g.slideBlack(k, 1)
			g.slideBlack(k, 10)
		case BBishop:
			g.slideBlack(k, -11)
			g.slideBlack(k, -9)
			g.slideBlack(k, 9)
			g.slideBlack(k, 11)
		}
	}
}

// GenerateAll fills buf with the legal moves of the side to move, in
// raw emission order, and returns the count.
func (b *Board) GenerateAll(buf []Move) int {
	g := generator{b: b, out: buf}
	if b.State.WhiteToMove() {
		g.genWhite()
	} else {
		g.genBlack()
	}
	return g.n
}

// Generate fills buf with the legal moves of the side to move,
// ordered [killer, promotions, captures, checking quiets, other
// quiets] by a counting pass, with the first few capture slots
// bubbled by MVV/LVA. It returns the move count plus the cursors one
// past the captures and one past the checking quiets.
func (b *Board) Generate(buf []Move, killer Move) (n, lastCap, lastCheck int) {
	var scratch [MaxMoves]Move
	g := generator{b: b, out: scratch[:]}
	if b.State.WhiteToMove() {
		g.genWhite()
	} else {
		g.genBlack()
	}
	m := g.n

	kc, pc, cc, tc := 0, 0, 0, 0
	for i := 0; i < m; i++ {
		mi := scratch[i]
		switch {
		case mi == killer:
			kc++
		case mi&movePromo != 0:
			pc++
		case mi&moveCap != 0:
			cc++
		case mi&MoveCheck != 0:
			tc++
		}
	}
	pc += kc
	cc += pc
	tc += cc
	mc := m
	for i := 0; i < m; i++ {
		mi := scratch[i]
		switch {
		case mi == killer:
			buf[0] = mi
		case mi&movePromo != 0:
			pc--
			buf[pc] = mi
		case mi&moveCap != 0:
			cc--
			buf[cc] = mi
		case mi&MoveCheck != 0:
			tc--
			buf[tc] = mi
		default:
			mc--
			buf[mc] = mi
		}
	}

	for j := cc; j <= cc+2; j++ {
		stable := true
		for i := tc - 1; i > j; i-- {
			if mvvLva(b, buf[i], buf[i-1]) {
				buf[i], buf[i-1] = buf[i-1], buf[i]
				stable = false
			}
		}
		if stable {
			break
		}
	}

	return m, tc, mc
}

// mvvLva orders captures by most valuable victim, then least valuable
// attacker.
func mvvLva(b *Board, mi, mj Move) bool {
	g1 := mi & moveCap
	g2 := mj & moveCap
	if g1 > g2 {
		return true
	}
	if g1 == g2 {
		return b.Cells[mi.From()] < b.Cells[mj.From()]
	}
	return false
}

var capValue = [8]int{1, 3, 3, 3, 5, 5, 10, 0}

// WinningCapture reports whether the move captures a piece worth more
// than the capturing one. The king maps to pawn value: it can never
// be recaptured.
func (b *Board) WinningCapture(m Move) bool {
	if m&moveCap == 0 {
		return false
	}
	return capValue[m.Captured()&0x07] > capValue[b.Cells[m.From()]&0x07]
}
