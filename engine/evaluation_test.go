package engine

import (
	"io"
	"strings"
	"testing"

	"chess-bench/mailbox"
)

func boardFromFEN(t testing.TB, fen string) *mailbox.Board {
	t.Helper()
	b, err := mailbox.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

func TestEvaluateStartPosition(t *testing.T) {
	e := New(1, io.Discard)
	e.SetPosition(boardFromFEN(t, mailbox.FENStartPos))
	if v := e.evaluate(0); v != 0 {
		t.Errorf("initial position evaluates to %d, want 0", v)
	}
}

func TestEvaluateSideToMoveView(t *testing.T) {
	const pos = "4k3/pppp4/8/8/8/8/PPPP4/RN2K3"
	e := New(1, io.Discard)
	e.SetPosition(boardFromFEN(t, pos+" w - - 0 1"))
	vw := e.evaluate(0)
	e.SetPosition(boardFromFEN(t, pos+" b - - 0 1"))
	vb := e.evaluate(0)
	if vw != -vb {
		t.Errorf("white view %d, black view %d; want negations", vw, vb)
	}
	if vw <= 0 {
		t.Errorf("white is a rook and knight up but scores %d", vw)
	}
}

func TestEvaluateDrawnMaterial(t *testing.T) {
	cases := []struct {
		name string
		fen  string
	}{
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"lone bishop", "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1"},
		{"lone knight", "4k3/8/8/8/8/8/8/1N2K3 b - - 0 1"},
		{"knight each", "1n2k3/8/8/8/8/8/8/1N2K3 w - - 0 1"},
		{"two knights", "4k3/8/8/8/8/8/8/NN2K3 w - - 0 1"},
		{"minor vs pawn", "4k3/4p3/8/8/8/8/8/1N2K3 w - - 0 1"},
		{"queen each", "3qk3/8/8/8/8/8/8/3QK3 w - - 0 1"},
	}
	for _, c := range cases {
		e := New(1, io.Discard)
		e.SetPosition(boardFromFEN(t, c.fen))
		if v := e.evaluate(0); v != 0 {
			t.Errorf("%s: evaluates to %d, want 0", c.name, v)
		}
	}
}

func TestEvaluateWinningMaterial(t *testing.T) {
	cases := []struct {
		name string
		fen  string
	}{
		{"lone queen", "4k3/8/8/8/8/8/8/Q3K3 w - - 0 1"},
		{"lone rook", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1"},
		{"queen up middlegame", "4k3/pppp4/8/8/8/8/PPPP4/Q3K3 w - - 0 1"},
	}
	for _, c := range cases {
		e := New(1, io.Discard)
		e.SetPosition(boardFromFEN(t, c.fen))
		if v := e.evaluate(0); v < 400 {
			t.Errorf("%s: evaluates to %d, want a clear white advantage", c.name, v)
		}
	}
}

// mirrorFEN flips the board vertically and swaps the colors. Only
// positions without castling or en passant rights can be mirrored.
func mirrorFEN(t *testing.T, fen string) string {
	t.Helper()
	f := strings.Fields(fen)
	if f[2] != "-" || f[3] != "-" {
		t.Fatalf("cannot mirror %q: castling or en passant rights set", fen)
	}
	ranks := strings.Split(f[0], "/")
	var sb strings.Builder
	for i := len(ranks) - 1; i >= 0; i-- {
		for _, c := range ranks[i] {
			switch {
			case c >= 'a' && c <= 'z':
				sb.WriteRune(c - 'a' + 'A')
			case c >= 'A' && c <= 'Z':
				sb.WriteRune(c - 'A' + 'a')
			default:
				sb.WriteRune(c)
			}
		}
		if i > 0 {
			sb.WriteByte('/')
		}
	}
	side := "w"
	if f[1] == "w" {
		side = "b"
	}
	return sb.String() + " " + side + " - - " + f[4] + " " + f[5]
}

func TestEvaluateMirrorInvariance(t *testing.T) {
	// The knight placement zones are not rank-symmetric, so these
	// positions stay knight-free.
	cases := []string{
		"r1bqkb1r/ppp1pppp/3p4/8/4P3/8/PPPP1PPP/R1BQKB1R w - - 0 1",
		"1r2k3/5ppp/8/8/8/8/PPP5/4KR2 w - - 0 1",
		"r1bqk2r/1pp2ppp/8/4p3/4P3/8/PPP2PPP/R1BQK2R b - - 0 1",
	}
	for _, fen := range cases {
		e := New(1, io.Discard)
		e.SetPosition(boardFromFEN(t, fen))
		v := e.evaluate(0)
		e.SetPosition(boardFromFEN(t, mirrorFEN(t, fen)))
		vm := e.evaluate(0)
		if v != vm {
			t.Errorf("%s: score %d, mirrored %d; want equal from the mover's view", fen, v, vm)
		}
	}
}

func TestEvaluateTracksSelectiveDepth(t *testing.T) {
	e := New(1, io.Discard)
	e.SetPosition(boardFromFEN(t, mailbox.FENStartPos))
	e.seldp = 3
	e.evaluate(7)
	if e.seldp != 7 {
		t.Errorf("selective depth %d, want 7", e.seldp)
	}
	e.evaluate(5)
	if e.seldp != 7 {
		t.Errorf("selective depth dropped to %d", e.seldp)
	}
}
