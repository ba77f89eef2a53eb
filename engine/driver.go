package engine

import (
	"fmt"
	"time"

	"chess-bench/mailbox"
)

// Status classifies the root position before any search is run.
type Status int

const (
	StatusOK Status = iota
	StatusCheckmate
	StatusStalemate
	StatusFiftyMove
)

// Result is the outcome of a completed search.
type Result struct {
	Move  mailbox.Move
	Score int
	Nodes uint32
}

// Search runs iterative deepening to the given fixed depth and
// returns the chosen move. If the root has no legal moves or the
// fifty-move counter has expired, no search is run and the status
// says why.
//
// Each completed depth prints one reporting line: the current best
// move, its score from white's view, the root move count, elapsed
// wall time, kilonodes, search speed, and depth/selective depth.
// After each depth the root moves are reordered by a stable bubble
// pass over their scores so the next iteration tries the best
// candidates first.
func (e *Engine) Search(depth uint32) (Result, Status) {
	b := e.board

	var moves [mailbox.MaxMoves]mailbox.Move
	var bub [mailbox.MaxMoves]int

	m, _, _ := b.Generate(moves[:], e.killerAt(0))
	if m == 0 {
		if b.InCheck() {
			return Result{}, StatusCheckmate
		}
		return Result{}, StatusStalemate
	}
	if b.Rule50 >= 100 {
		return Result{}, StatusFiftyMove
	}

	e.nodes = 0
	mm := 0
	alpha := 0
	start := time.Now()
	var elapsed float64

	for dm := uint32(1); dm <= depth; dm++ {
		alpha = -32767
		beta := 32767

		e.curdp = dm
		e.seldp = dm
		e.extdp = 2*dm + 2

		for i := 0; i < m; i++ {
			mv, u := b.Apply(moves[i])
			v := -e.searchAB(-beta, -alpha, 1, dm, false, mv.IsCheck(), 0)
			bub[i] = v
			b.Unapply(mv, u)
			if v > alpha {
				alpha = v
				mm = i
			}
		}

		ms := time.Since(start).Milliseconds()
		xx := float64(ms) / 1000.0
		yy := 0.0
		if ms > 0 {
			yy = float64(e.nodes) / float64(ms)
		}
		elapsed = xx
		score := alpha
		if !b.State.WhiteToMove() {
			score = -alpha
		}
		fmt.Fprintf(e.out, "%s\tscore=%+4d : moves=%2d :: %4.1fs %5dKN (%6.1fKNps) [%2d/%2d]\n",
			b.Notation(moves[mm]), score, m, xx, e.nodes/1000, yy, dm, e.seldp)

		// The scores are alpha-beta bounds, not exact per-move
		// values; sorting on them still tends to move good moves
		// up front. The stable bubble keeps the best index pinned.
		for j := 0; j < m-1; j++ {
			stable := true
			for i := m - 1; j < i; i-- {
				if bub[i] > bub[i-1] {
					bub[i], bub[i-1] = bub[i-1], bub[i]
					moves[i], moves[i-1] = moves[i-1], moves[i]
					if mm == i {
						mm--
					} else if mm == i-1 {
						mm++
					}
					stable = false
				}
			}
			if stable {
				break
			}
		}
	}

	fmt.Fprintf(e.out, "best move %sTotal time : %4.1fs\n", b.Notation(moves[mm]), elapsed)
	return Result{Move: moves[mm], Score: alpha, Nodes: e.nodes}, StatusOK
}
