package engine

import "chess-bench/mailbox"

// leafNode is the quiescence search. Out of check it stands pat on
// the static evaluation, gives up on positions more than a futility
// margin below alpha, and then tries captures fully and checking
// quiets as one-ply mate probes. In check every evasion is searched.
func (e *Engine) leafNode(alpha, beta int, dp uint32, inChk bool) int {
	b := e.board

	if !inChk {
		v := e.evaluate(dp)
		if v >= beta {
			return beta
		}
		if v > alpha {
			alpha = v
		} else if v < alpha-900 {
			return alpha
		}
	}

	if dp < mailbox.MaxDepth {
		var moves [mailbox.MaxMoves]mailbox.Move
		m, lastCap, lastCheck := b.Generate(moves[:], 0)
		if m == 0 {
			if inChk {
				return -32500 + int(dp)
			}
			return 0
		}
		m1, m2 := lastCap, lastCheck
		if inChk {
			m1, m2 = m, m
		}

		for i := 0; i < m2; i++ {
			mv, u := b.Apply(moves[i])
			e.nodes++
			var v int
			switch {
			case b.Rule50 >= 100 || b.RepetitionSloppy():
				v = 0
			case i < m1:
				v = -e.leafNode(-beta, -alpha, dp+1, mv.IsCheck())
			default:
				// A checking quiet is only probed for immediate mate.
				v = alpha
				if mv.IsCheck() {
					var evades [mailbox.MaxMoves]mailbox.Move
					if b.GenerateAll(evades[:]) == 0 {
						v = 32500 - int(dp)
					}
				}
			}
			b.Unapply(mv, u)
			if v >= beta {
				return beta
			}
			if v > alpha {
				alpha = v
			}
		}
	}

	return alpha
}
