package engine

import (
	"io"
	"testing"

	"chess-bench/mailbox"
)

func TestSearchMateInOne(t *testing.T) {
	e := New(1, io.Discard)
	e.SetPosition(boardFromFEN(t, "6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - - 0 1"))
	res, status := e.Search(3)
	if status != StatusOK {
		t.Fatalf("status %v", status)
	}
	if got := res.Move.String(); got != "d1d8" {
		t.Errorf("best move %s, want d1d8", got)
	}
	if res.Score < 32497 || res.Score > 32500 {
		t.Errorf("score %d does not announce mate within the horizon", res.Score)
	}
}

func applyCoord(t *testing.T, b *mailbox.Board, coord string) {
	t.Helper()
	var buf [mailbox.MaxMoves]mailbox.Move
	n := b.GenerateAll(buf[:])
	for i := 0; i < n; i++ {
		if buf[i].String() == coord {
			b.Apply(buf[i])
			return
		}
	}
	t.Fatalf("move %s not legal in %s", coord, b.ToFEN())
}

func TestSearchFailHard(t *testing.T) {
	// A quiet pawn endgame: no mate, stalemate or draw score can
	// escape the window within this horizon, so every return value
	// must stay inside it.
	windows := []struct{ alpha, beta int }{
		{-32767, 32767},
		{-300, -100},
		{-50, 50},
		{0, 1},
		{100, 300},
	}
	for _, w := range windows {
		e := New(1, io.Discard)
		e.SetPosition(boardFromFEN(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1"))
		e.curdp = 3
		e.seldp = 3
		e.extdp = 8
		v := e.searchAB(w.alpha, w.beta, 1, 3, false, false, 0)
		if v < w.alpha || v > w.beta {
			t.Errorf("window (%d,%d): returned %d outside it", w.alpha, w.beta, v)
		}
	}
}

func TestSearchRepetitionScoresDraw(t *testing.T) {
	b := boardFromFEN(t, mailbox.FENStartPos)
	for _, c := range []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3"} {
		applyCoord(t, b, c)
	}
	e := New(1, io.Discard)
	e.SetPosition(b)
	e.curdp = 3
	e.seldp = 3
	e.extdp = 8
	if v := e.searchAB(-32767, 32767, 1, 3, false, false, 0); v != 0 {
		t.Errorf("repeated position scores %d, want the draw score 0", v)
	}
}

func TestSearchBareKingsDraw(t *testing.T) {
	e := New(1, io.Discard)
	e.SetPosition(boardFromFEN(t, "8/8/4k3/8/8/4K3/8/8 w - - 0 1"))
	res, status := e.Search(4)
	if status != StatusOK {
		t.Fatalf("status %v", status)
	}
	if res.Score != 0 {
		t.Errorf("score %d, want 0", res.Score)
	}
}

func TestSearchShuffledKingsDraw(t *testing.T) {
	b := boardFromFEN(t, "k7/8/8/8/8/8/8/K7 w - - 0 1")
	for _, c := range []string{"a1b1", "a8b8", "b1a1", "b8a8"} {
		applyCoord(t, b, c)
	}
	e := New(1, io.Discard)
	e.SetPosition(b)
	res, status := e.Search(3)
	if status != StatusOK {
		t.Fatalf("status %v", status)
	}
	if res.Score != 0 {
		t.Errorf("score %d, want 0", res.Score)
	}
}

func TestSearchPawnUpEndgame(t *testing.T) {
	e := New(1, io.Discard)
	e.SetPosition(boardFromFEN(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1"))
	res, status := e.Search(6)
	if status != StatusOK {
		t.Fatalf("status %v", status)
	}
	if res.Score <= 0 {
		t.Errorf("score %d with an extra pawn, want strictly positive", res.Score)
	}
}

func TestSearchTerminalStatus(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want Status
	}{
		{"checkmated", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", StatusCheckmate},
		{"stalemated", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", StatusStalemate},
		{"fifty moves", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 100 1", StatusFiftyMove},
	}
	for _, c := range cases {
		e := New(1, io.Discard)
		e.SetPosition(boardFromFEN(t, c.fen))
		if _, status := e.Search(3); status != c.want {
			t.Errorf("%s: status %v want %v", c.name, status, c.want)
		}
	}
}

func TestSearchPicksHangingQueen(t *testing.T) {
	e := New(1, io.Discard)
	e.SetPosition(boardFromFEN(t, "3q4/8/8/8/8/8/3R4/4K2k w - - 0 1"))
	res, status := e.Search(4)
	if status != StatusOK {
		t.Fatalf("status %v", status)
	}
	if got := res.Move.String(); got != "d2d8" {
		t.Errorf("best move %s, want d2d8", got)
	}
}

func TestSearchReproducible(t *testing.T) {
	const fen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	run := func() (Result, uint32) {
		e := New(4, io.Discard)
		e.SetPosition(boardFromFEN(t, fen))
		res, status := e.Search(4)
		if status != StatusOK {
			t.Fatalf("status %v", status)
		}
		return res, e.Nodes()
	}
	r1, n1 := run()
	r2, n2 := run()
	if r1.Move != r2.Move || r1.Score != r2.Score || n1 != n2 {
		t.Errorf("runs diverge: move %s/%s score %d/%d nodes %d/%d",
			r1.Move, r2.Move, r1.Score, r2.Score, n1, n2)
	}
}

func TestSearchNewGameResetsNodes(t *testing.T) {
	const fen = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	e := New(1, io.Discard)
	e.SetPosition(boardFromFEN(t, fen))
	_, status := e.Search(4)
	if status != StatusOK {
		t.Fatalf("status %v", status)
	}
	first := e.Nodes()

	e.NewGame()
	e.SetPosition(boardFromFEN(t, fen))
	e.Search(4)
	if e.Nodes() != first {
		t.Errorf("node count after NewGame %d, want %d", e.Nodes(), first)
	}
}

func TestSearchFiftyMoveHorizon(t *testing.T) {
	// White is a queen down, but every legal move is quiet and trips
	// the fifty-move counter one ply in, so the whole root scores as
	// a dead draw.
	e := New(1, io.Discard)
	e.SetPosition(boardFromFEN(t, "q6k/8/8/8/8/8/8/K7 w - - 99 1"))
	res, status := e.Search(3)
	if status != StatusOK {
		t.Fatalf("status %v", status)
	}
	if res.Score != 0 {
		t.Errorf("score %d, want the draw score 0", res.Score)
	}
}

func BenchmarkSearchMiddlegame(b *testing.B) {
	board, err := mailbox.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := New(4, io.Discard)
		e.SetPosition(board)
		e.Search(5)
	}
}
