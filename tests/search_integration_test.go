package chess_bench_test

import (
	"bytes"
	"strings"
	"testing"

	"chess-bench/engine"
	"chess-bench/mailbox"
)

func mustMove(t *testing.T, b *mailbox.Board, coord string) mailbox.Move {
	t.Helper()
	var buf [mailbox.MaxMoves]mailbox.Move
	n := b.GenerateAll(buf[:])
	for i := 0; i < n; i++ {
		if buf[i].String() == coord {
			return buf[i]
		}
	}
	t.Fatalf("move %s not legal in %s", coord, b.ToFEN())
	return 0
}

func TestSearchReporting(t *testing.T) {
	var out bytes.Buffer
	e := engine.New(1, &out)
	b, err := mailbox.ParseFEN(mailbox.FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	e.SetPosition(b)
	res, status := e.Search(4)
	if status != engine.StatusOK {
		t.Fatalf("status %v", status)
	}
	if res.Move == 0 {
		t.Fatal("no move chosen")
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d reporting lines, want 4 depth lines plus the summary:\n%s",
			len(lines), out.String())
	}
	for i, line := range lines[:4] {
		if !strings.Contains(line, "score=") || !strings.Contains(line, "moves=") {
			t.Errorf("depth line %d malformed: %q", i+1, line)
		}
	}
	if !strings.HasPrefix(lines[4], "best move ") {
		t.Errorf("summary line malformed: %q", lines[4])
	}
}

func TestSearchDeterministicAcrossEngines(t *testing.T) {
	const fen = "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10"
	type outcome struct {
		move  mailbox.Move
		score int
		nodes uint32
	}
	run := func() outcome {
		var out bytes.Buffer
		e := engine.New(4, &out)
		b, err := mailbox.ParseFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		e.SetPosition(b)
		res, status := e.Search(4)
		if status != engine.StatusOK {
			t.Fatalf("status %v", status)
		}
		return outcome{res.Move, res.Score, res.Nodes}
	}
	first := run()
	for i := 0; i < 2; i++ {
		if got := run(); got != first {
			t.Fatalf("run %d diverged: %+v vs %+v", i+2, got, first)
		}
	}
}

func TestFiftyMoveSequence(t *testing.T) {
	b, err := mailbox.ParseFEN("k7/8/8/8/8/8/8/K6R w - - 98 1")
	if err != nil {
		t.Fatal(err)
	}
	b.Apply(mustMove(t, b, "h1h2"))
	b.Apply(mustMove(t, b, "a8b8"))
	if b.Rule50 != 100 {
		t.Fatalf("fifty-move counter %d, want 100", b.Rule50)
	}
	var out bytes.Buffer
	e := engine.New(1, &out)
	e.SetPosition(b)
	if _, status := e.Search(3); status != engine.StatusFiftyMove {
		t.Errorf("status %v, want the fifty-move draw", status)
	}
}
