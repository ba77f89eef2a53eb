package engine

import "chess-bench/mailbox"

// One killer slot per ply. Beta cutoffs and transposition hits write
// it; the move generator pulls the stored move to the front of the
// list at that ply.

func (e *Engine) killerAt(dp uint32) mailbox.Move {
	if dp < mailbox.MaxDepth {
		return e.killers[dp]
	}
	return 0
}

func (e *Engine) storeKiller(dp uint32, m mailbox.Move) {
	if dp < mailbox.MaxDepth {
		e.killers[dp] = m
	}
}
