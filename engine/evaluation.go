package engine

import "chess-bench/mailbox"

// pawnval scores a pawn-structure file mask: bit f set means a pawn
// on file f. Rewards connected files, penalizes isolated and missing
// ones.
var pawnval = [256]int{
	0, 3, 4, 7, 6, 7, 10, 13,
	7, 8, 9, 12, 13, 14, 17, 20,
	7, 8, 9, 12, 11, 12, 15, 18,
	14, 15, 16, 19, 20, 21, 24, 27,
	6, 7, 8, 11, 10, 11, 14, 17,
	11, 12, 13, 16, 17, 18, 21, 24,
	13, 14, 15, 18, 17, 18, 21, 24,
	20, 21, 22, 25, 26, 27, 30, 33,
	4, 5, 6, 9, 8, 9, 12, 15,
	9, 10, 11, 14, 15, 16, 19, 22,
	9, 10, 11, 14, 13, 14, 17, 20,
	16, 17, 18, 21, 22, 23, 26, 29,
	10, 11, 12, 15, 14, 15, 18, 21,
	15, 16, 17, 20, 21, 22, 25, 28,
	17, 18, 19, 22, 21, 22, 25, 28,
	24, 25, 26, 29, 30, 31, 34, 37,
	3, 4, 5, 8, 7, 8, 11, 14,
	8, 9, 10, 13, 14, 15, 18, 21,
	8, 9, 10, 13, 12, 13, 16, 19,
	15, 16, 17, 20, 21, 22, 25, 28,
	7, 8, 9, 12, 11, 12, 15, 18,
	12, 13, 14, 17, 18, 19, 22, 25,
	14, 15, 16, 19, 18, 19, 22, 25,
	21, 22, 23, 26, 27, 28, 31, 34,
	7, 8, 9, 12, 11, 12, 15, 18,
	12, 13, 14, 17, 18, 19, 22, 25,
	12, 13, 14, 17, 16, 17, 20, 23,
	19, 20, 21, 24, 25, 26, 29, 32,
	13, 14, 15, 18, 17, 18, 21, 24,
	18, 19, 20, 23, 24, 25, 28, 31,
	20, 21, 22, 25, 24, 25, 28, 31,
	27, 28, 29, 32, 33, 34, 37, 40,
}

// kingFiles maps the king's file to a mask of the files around it; a
// king on the h-file maps to an empty mask.
var kingFiles = [8]uint32{0x03, 0x07, 0x0e, 0x1c, 0x38, 0x70, 0xe0, 0}

// squareDark marks the dark squares of the playable area.
var squareDark = [120]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 1, 0, 1, 0, 1, 0, 1, 0, 0,
	0, 0, 1, 0, 1, 0, 1, 0, 1, 0,
	0, 1, 0, 1, 0, 1, 0, 1, 0, 0,
	0, 0, 1, 0, 1, 0, 1, 0, 1, 0,
	0, 1, 0, 1, 0, 1, 0, 1, 0, 0,
	0, 0, 1, 0, 1, 0, 1, 0, 1, 0,
	0, 1, 0, 1, 0, 1, 0, 1, 0, 0,
	0, 0, 1, 0, 1, 0, 1, 0, 1, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// isBehind scans from k in direction p: a friendly straight slider
// behind the pawn is worth 15, an enemy one -15, anything else ends
// the ray.
func isBehind(b *mailbox.Board, k, p int, xx, yy mailbox.Piece) int {
	for {
		k += p
		if b.Cells[k]&xx == xx {
			return 15
		}
		if b.Cells[k]&yy == yy {
			return -15
		}
		if b.Cells[k] != mailbox.Empty {
			return 0
		}
	}
}

// gClose rewards proximity: 7 minus the Chebyshev distance.
func gClose(w, b int) int {
	h1 := mailbox.FileOf(b) - mailbox.FileOf(w)
	h2 := mailbox.RankOf(b) - mailbox.RankOf(w)
	if h1 < 0 {
		h1 = -h1
	}
	if h2 < 0 {
		h2 = -h2
	}
	if h1 > h2 {
		return 7 - h1
	}
	return 7 - h2
}

// openLine scores a heavy piece on its file: an open file is worth 12
// and a semi-open one 6, raised to 20 and 10 when the file bears on
// the enemy king's zone.
func openLine(k int, ps1, ps2, okb uint32) int {
	bit := uint32(1) << mailbox.FileOf(k)
	if ps1&bit == 0 {
		if ps2&bit == 0 {
			if okb&bit != 0 {
				return 20
			}
			return 12
		}
		if okb&bit != 0 {
			return 10
		}
		return 6
	}
	return 0
}

// scoreBishop values placement, closeness to the enemy king, and
// unblocked forward diagonals.
func scoreBishop(b *mailbox.Board, k, ok, fl, fr int, xx mailbox.Piece) int {
	score := mailbox.CenterWeight(k) + gClose(k, ok)
	if b.Cells[k+fl] != xx {
		score += 2
	}
	if b.Cells[k+fr] != xx {
		score += 2
	}
	return score
}

// badBishop penalizes a lone bishop whose own pawns sit on its color.
func badBishop(b *mailbox.Board, k int, xx mailbox.Piece) int {
	score := 0
	if squareDark[k] == 1 {
		if b.Cells[54] == xx {
			score -= 10
		}
		if b.Cells[65] == xx {
			score -= 10
		}
		if b.Cells[63] == xx {
			score -= 9
		}
		if b.Cells[56] == xx {
			score -= 9
		}
		if b.Cells[43] == xx {
			score -= 8
		}
		if b.Cells[45] == xx {
			score -= 8
		}
		if b.Cells[74] == xx {
			score -= 8
		}
		if b.Cells[76] == xx {
			score -= 8
		}
	} else {
		if b.Cells[55] == xx {
			score -= 10
		}
		if b.Cells[64] == xx {
			score -= 10
		}
		if b.Cells[53] == xx {
			score -= 9
		}
		if b.Cells[66] == xx {
			score -= 9
		}
		if b.Cells[44] == xx {
			score -= 8
		}
		if b.Cells[46] == xx {
			score -= 8
		}
		if b.Cells[73] == xx {
			score -= 8
		}
		if b.Cells[75] == xx {
			score -= 8
		}
	}
	return score
}

// scoreKnight values placement and closeness; knights on the back
// rank lose, advanced knights on pawn-supported squares gain.
func scoreKnight(b *mailbox.Board, k, ok, z0, z1, z2, bl, br int, xx mailbox.Piece) int {
	score := mailbox.CenterWeight(k) + gClose(k, ok)
	switch mailbox.RankOf(k) {
	case z0:
		score -= 9
	case z1:
		if b.Cells[k+bl] == xx {
			score += 6
		}
		if b.Cells[k+br] == xx {
			score += 6
		}
	case z2:
		if b.Cells[k+bl] == xx {
			score += 3
		}
		if b.Cells[k+br] == xx {
			score += 3
		}
	}
	return score
}

// evaluate scores the position from the side to move's view and
// keeps the selective depth counter current.
func (e *Engine) evaluate(dp uint32) int {
	b := e.board

	if dp > e.seldp {
		e.seldp = dp
	}

	score := 0
	wk, bk := b.WhiteKing, b.BlackKing
	wq, bq := 0, 0
	wr1, wr2 := 0, 0
	br1, br2 := 0, 0
	wb1, wb2 := 0, 0
	bb1, bb2 := 0, 0
	wn1, wn2 := 0, 0
	bn1, bn2 := 0, 0
	var wps, bps uint32

	piece := b.PieceCount()

	for _, k := range b.Pieces(mailbox.SideWhite) {
		switch b.Cells[k] {
		case mailbox.WKing:
		case mailbox.WQueen:
			score += 900
			wq = k
		case mailbox.WRook:
			score += 500
			if wr1 != 0 {
				wr2 = k
			} else {
				wr1 = k
			}
		case mailbox.WBishop:
			score += 301
			if wb1 != 0 {
				wb2 = k
			} else {
				wb1 = k
			}
		case mailbox.WKnight:
			score += 300
			if wn1 != 0 {
				wn2 = k
			} else {
				wn1 = k
			}
		case mailbox.WPawn:
			score += 98
			wps |= uint32(1) << mailbox.FileOf(k)
			if b.Cells[k-9] == mailbox.WPawn ||
				b.Cells[k+1] == mailbox.WPawn ||
				b.Cells[k+11] == mailbox.WPawn {
				score++
			}
			switch mailbox.RankOf(k) {
			case 6:
				score += 55 + isBehind(b, k, -10, mailbox.WStrt, mailbox.BStrt)
				if b.Cells[k-1] == mailbox.WPawn ||
					b.Cells[k-11] == mailbox.WPawn {
					score += 14
				}
				if b.Cells[k+1] == mailbox.WPawn ||
					b.Cells[k-9] == mailbox.WPawn {
					score += 14
				}
			case 5:
				if b.Cells[k+9] != mailbox.BPawn &&
					b.Cells[k+10] != mailbox.BPawn &&
					b.Cells[k+11] != mailbox.BPawn {
					score += 34 + isBehind(b, k, -10, mailbox.WStrt, mailbox.BStrt)
				}
			case 4:
				if b.Cells[k+9] != mailbox.BPawn &&
					b.Cells[k+19] != mailbox.BPawn &&
					b.Cells[k+10] != mailbox.BPawn &&
					b.Cells[k+20] != mailbox.BPawn &&
					b.Cells[k+11] != mailbox.BPawn &&
					b.Cells[k+21] != mailbox.BPawn {
					score += 23 + isBehind(b, k, -10, mailbox.WStrt, mailbox.BStrt)
				}
			}
		}
	}

	for _, k := range b.Pieces(mailbox.SideBlack) {
		switch b.Cells[k] {
		case mailbox.BKing:
		case mailbox.BQueen:
			score -= 900
			bq = k
		case mailbox.BRook:
			score -= 500
			if br1 != 0 {
				br2 = k
			} else {
				br1 = k
			}
		case mailbox.BBishop:
			score -= 301
			if bb1 != 0 {
				bb2 = k
			} else {
				bb1 = k
			}
		case mailbox.BKnight:
			score -= 300
			if bn1 != 0 {
				bn2 = k
			} else {
				bn1 = k
			}
		case mailbox.BPawn:
			score -= 98
			bps |= uint32(1) << mailbox.FileOf(k)
			if b.Cells[k-9] == mailbox.BPawn ||
				b.Cells[k+1] == mailbox.BPawn ||
				b.Cells[k+11] == mailbox.BPawn {
				score--
			}
			switch mailbox.RankOf(k) {
			case 1:
				score -= 55 + isBehind(b, k, 10, mailbox.BStrt, mailbox.WStrt)
				if b.Cells[k-1] == mailbox.BPawn ||
					b.Cells[k+9] == mailbox.BPawn {
					score -= 14
				}
				if b.Cells[k+1] == mailbox.BPawn ||
					b.Cells[k+11] == mailbox.BPawn {
					score -= 14
				}
			case 2:
				if b.Cells[k-11] != mailbox.WPawn &&
					b.Cells[k-10] != mailbox.WPawn &&
					b.Cells[k-9] != mailbox.WPawn {
					score -= 34 + isBehind(b, k, 10, mailbox.BStrt, mailbox.WStrt)
				}
			case 3:
				if b.Cells[k-11] != mailbox.WPawn &&
					b.Cells[k-21] != mailbox.WPawn &&
					b.Cells[k-10] != mailbox.WPawn &&
					b.Cells[k-20] != mailbox.WPawn &&
					b.Cells[k-19] != mailbox.WPawn &&
					b.Cells[k-9] != mailbox.WPawn {
					score -= 23 + isBehind(b, k, 10, mailbox.BStrt, mailbox.WStrt)
				}
			}
		}
	}

	if piece > 5 {
		score += pawnval[wps] - pawnval[bps]

		if wb2 != 0 && bb2 == 0 {
			score += 6
		} else if bb2 != 0 && wb2 == 0 {
			score -= 6
		}

		if wb1 != 0 {
			score += scoreBishop(b, wb1, bk, 9, 11, mailbox.WPawn)
			if wb2 != 0 {
				score += scoreBishop(b, wb2, bk, 9, 11, mailbox.WPawn)
			} else {
				score += badBishop(b, wb1, mailbox.WPawn)
			}
		}
		if wn1 != 0 {
			score += scoreKnight(b, wn1, bk, 0, 6, 5, -11, -9, mailbox.WPawn)
			if wn2 != 0 {
				score += scoreKnight(b, wn2, bk, 0, 6, 5, -11, -9, mailbox.WPawn)
			}
		}
		if bb1 != 0 {
			score -= scoreBishop(b, bb1, wk, -11, -9, mailbox.BPawn)
			if bb2 != 0 {
				score -= scoreBishop(b, bb2, wk, -11, -9, mailbox.BPawn)
			} else {
				score -= badBishop(b, bb1, mailbox.BPawn)
			}
		}
		if bn1 != 0 {
			score -= scoreKnight(b, bn1, wk, 7, 3, 4, 9, 11, mailbox.BPawn)
			if bn2 != 0 {
				score -= scoreKnight(b, bn2, wk, 7, 3, 4, 9, 11, mailbox.BPawn)
			}
		}

		wkb := kingFiles[mailbox.FileOf(wk)]
		bkb := kingFiles[mailbox.FileOf(bk)]
		if wq != 0 {
			score += openLine(wq, wps, bps, bkb) + gClose(wq, bk)
		}
		if bq != 0 {
			score -= openLine(bq, bps, wps, wkb) + gClose(bq, wk)
		}
		if wr1 != 0 {
			score += openLine(wr1, wps, bps, bkb) + gClose(wr1, bk)
			if wr2 != 0 {
				score += openLine(wr2, wps, bps, bkb) + gClose(wr2, bk)
				if mailbox.FileOf(wr1) == mailbox.FileOf(wr2) {
					score += 4
				}
				if mailbox.RankOf(wr1) == 6 && mailbox.RankOf(wr2) == 6 {
					score += 5
				}
			}
		}
		if br1 != 0 {
			score -= openLine(br1, bps, wps, wkb) + gClose(br1, wk)
			if br2 != 0 {
				score -= openLine(br2, bps, wps, wkb) + gClose(br2, wk)
				if mailbox.FileOf(br1) == mailbox.FileOf(br2) {
					score -= 4
				}
				if mailbox.RankOf(br1) == 1 && mailbox.RankOf(br2) == 1 {
					score -= 5
				}
			}
		}

		if piece <= 18 {
			// Develop the kings once no enemy queen threatens.
			if bq == 0 {
				score += mailbox.CenterWeight(wk)
			}
			if wq == 0 {
				score -= mailbox.CenterWeight(bk)
			}
		} else if piece >= 24 {
			// Center pawns.
			if b.Cells[54] == mailbox.WPawn {
				score += 6
			} else if b.Cells[54] == mailbox.BPawn {
				score -= 4
			}
			if b.Cells[55] == mailbox.WPawn {
				score += 6
			} else if b.Cells[55] == mailbox.BPawn {
				score -= 4
			}
			if b.Cells[64] == mailbox.WPawn {
				score += 4
			} else if b.Cells[64] == mailbox.BPawn {
				score -= 6
			}
			if b.Cells[65] == mailbox.WPawn {
				score += 4
			} else if b.Cells[65] == mailbox.BPawn {
				score -= 6
			}
			// Castled or castling-shaped kings.
			if (wk == 27 && b.Cells[28] == mailbox.Empty) || wk == 23 {
				score += 9
			}
			if (bk == 97 && b.Cells[98] == mailbox.Empty) || bk == 93 {
				score -= 9
			}
			if wk <= 28 {
				score += 5
			}
			if bk >= 91 {
				score -= 5
			}
			// Pawn shield in front of the king.
			if b.Cells[wk+9]&mailbox.White == 0 {
				score -= 10
			}
			if b.Cells[wk+10]&mailbox.White == 0 {
				score -= 10
			}
			if b.Cells[wk+11]&mailbox.White == 0 {
				score -= 10
			}
			if b.Cells[bk-11]&mailbox.Black == 0 {
				score += 10
			}
			if b.Cells[bk-10]&mailbox.Black == 0 {
				score += 10
			}
			if b.Cells[bk-9]&mailbox.Black == 0 {
				score += 10
			}
			// Queens stay behind early.
			if 21 <= wq && wq <= 38 {
				score += 7
			}
			if 81 <= bq {
				score -= 7
			}
		}
	} else {
		// Drawn-material ladder; the search finds the exceptions.
		switch piece {
		case 0, 1, 2:
			return 0
		case 3:
			if wq == 0 && bq == 0 && wps == 0 && bps == 0 && wr1 == 0 && br1 == 0 {
				return 0
			}
		case 4:
			if wq != 0 && bq != 0 {
				return 0
			} else if (wr1 != 0 || wb1 != 0 || wn1 != 0) &&
				(br1 != 0 || bb1 != 0 || bn1 != 0) {
				return 0
			} else if wn2 != 0 || bn2 != 0 {
				return 0
			} else if ((wb1 != 0 || wn1 != 0) && bps != 0) ||
				((bb1 != 0 || bn1 != 0) && wps != 0) {
				return 0
			}
			fallthrough
		case 5:
			if ((wr1 != 0 || wb1 != 0 || wn1 != 0) && (bb2 != 0 || bn2 != 0 || (bb1 != 0 && bn1 != 0))) ||
				((br1 != 0 || bb1 != 0 || bn1 != 0) && (wb2 != 0 || wn2 != 0 || (wb1 != 0 && wn1 != 0))) {
				return 0
			}
			if (wr1 != 0 && (wb1 != 0 || wn1 != 0) && br1 != 0) ||
				(br1 != 0 && (bb1 != 0 || bn1 != 0) && wr1 != 0) {
				return 0
			}
		}
	}

	if b.State.WhiteToMove() {
		return score
	}
	return -score
}
