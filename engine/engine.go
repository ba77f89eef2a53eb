// Package engine implements a deterministic fixed-depth negamax
// alpha-beta search over the mailbox board: iterative deepening with
// root move reordering, a depth-bound transposition table, killer
// slots, null-move pruning, principal variation search, tactical
// extensions, and a capture/check quiescence.
//
// An Engine is single-threaded; run one Engine per goroutine. Node
// counts and chosen moves are reproducible run to run for the same
// position and depth.
package engine

import (
	"io"
	"os"

	"chess-bench/mailbox"
)

// Engine holds all mutable search state.
type Engine struct {
	board   *mailbox.Board
	tt      *transTable
	killers [mailbox.MaxDepth]mailbox.Move

	nodes uint32
	curdp uint32
	seldp uint32
	extdp uint32

	out io.Writer
}

// New returns an engine with a transposition table of roughly the
// given size in MiB (rounded down to a power of two, minimum 1).
// Search reporting goes to out; nil means os.Stdout.
func New(ttMB int, out io.Writer) *Engine {
	if out == nil {
		out = os.Stdout
	}
	return &Engine{tt: newTransTable(ttMB), out: out}
}

// SetPosition points the engine at a board. The transposition table
// and killer slots are kept; call NewGame to discard them.
func (e *Engine) SetPosition(b *mailbox.Board) { e.board = b }

// Board returns the engine's current board.
func (e *Engine) Board() *mailbox.Board { return e.board }

// Nodes returns the node count of the last Search call.
func (e *Engine) Nodes() uint32 { return e.nodes }

// SelectiveDepth returns the deepest ply reached by the last Search
// call, quiescence included.
func (e *Engine) SelectiveDepth() uint32 { return e.seldp }

// NewGame clears the transposition table and the killer slots.
func (e *Engine) NewGame() {
	e.tt.clear()
	for i := range e.killers {
		e.killers[i] = 0
	}
}
