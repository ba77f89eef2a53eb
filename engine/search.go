package engine

import "chess-bench/mailbox"

// searchAB is the fail-hard negamax alpha-beta core. dp is the ply
// from the root, dm the full horizon for this branch; nullOK gates
// null-move pruning, inChk tells whether the side to move is in
// check, and ext carries the ply two past the last tactical
// extension, where an unforced node pulls the horizon back by one so
// deep forced lines can be pruned back.
func (e *Engine) searchAB(alpha, beta int, dp, dm uint32, nullOK, inChk bool, ext uint32) int {
	b := e.board

	e.nodes++

	if b.Rule50 >= 100 || b.RepetitionSloppy() {
		return 0
	}

	if inChk {
		dm++ // check extension
	}

	if v := e.lookupTrans(b.Zobrist, dp, dm, alpha, beta); v != ttNone {
		return v
	}

	if dp >= dm {
		return e.leafNode(alpha, beta, dp, inChk)
	}

	var pvs mailbox.Move
	var moves [mailbox.MaxMoves]mailbox.Move
	m, _, _ := b.Generate(moves[:], e.killerAt(dp))
	if m == 0 {
		if inChk {
			return -32500 + int(dp)
		}
		return 0
	} else if m <= 2 {
		if dp < e.extdp {
			ext = dp + 2
			dm++ // tactical extend
		} else if m == 1 {
			mv := moves[0]
			if mailbox.CenterWeight(mv.From()) >= mailbox.CenterWeight(mv.To()) {
				ext = dp + 2
				dm++ // tactical extend
			}
		}
	} else if dp == ext && dp < dm-1 {
		dm--
	}

	// Null move. Done after generation: the move count is a good
	// indication of forced situations where the null move is
	// dangerous.
	if !inChk && 4 <= m && nullOK {
		u := b.ApplyNull()
		nd := dp + 1
		if 2 < dm-dp {
			nd = dm - 2
		}
		v := -e.searchAB(-beta, -beta+1, dp+1, nd, false, false, ext)
		b.UndoNull(u)
		if v >= beta {
			return beta
		}
	}

	for i := 0; i < m; i++ {
		mv, u := b.Apply(moves[i])
		var v int
		if pvs != 0 {
			v = -e.searchAB(-alpha-1, -alpha, dp+1, dm, true, mv.IsCheck(), ext)
			if alpha < v && v < beta {
				v = -e.searchAB(-beta, -alpha, dp+1, dm, true, mv.IsCheck(), ext)
			}
		} else {
			v = -e.searchAB(-beta, -alpha, dp+1, dm, true, mv.IsCheck(), ext)
		}
		b.Unapply(mv, u)
		if v >= beta {
			e.insertTrans(b.Zobrist, dp, dm, ttBeta, beta, mv)
			e.storeKiller(dp, mv)
			return beta
		}
		if v > alpha {
			alpha = v
			pvs = mv
		}
	}

	bound := ttAlpha
	if pvs != 0 {
		bound = ttExact
	}
	e.insertTrans(b.Zobrist, dp, dm, bound, alpha, pvs)
	return alpha
}
