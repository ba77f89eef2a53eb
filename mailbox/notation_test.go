package mailbox_test

import (
	"testing"

	"chess-bench/mailbox"
)

func TestNotation(t *testing.T) {
	cases := []struct {
		name  string
		fen   string
		coord string
		want  string
	}{
		{"pawn push", mailbox.FENStartPos, "e2e4", " e2-e4   "},
		{"knight", mailbox.FENStartPos, "g1f3", "Ng1-f3   "},
		{"capture", kiwipeteFEN, "e5g6", "Ne5xg6   "},
		{"short castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", " 0-0     "},
		{"long castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1", " 0-0-0   "},
		{"en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "e5d6", " e5xd6ep "},
		{"promotion check", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8q", " a7-a8Q +"},
		{"quiet check", "4k3/8/8/8/8/8/8/4KR2 w - - 0 1", "f1f8", "Rf1-f8  +"},
	}
	for _, c := range cases {
		b, err := mailbox.ParseFEN(c.fen)
		if err != nil {
			t.Fatalf("%s: ParseFEN: %v", c.name, err)
		}
		mv := findMove(t, b, c.coord)
		if got := b.Notation(mv); got != c.want {
			t.Errorf("%s: got %q want %q", c.name, got, c.want)
		}
	}
}

func TestMoveString(t *testing.T) {
	m := mailbox.NewMove(mailbox.Square(4, 1), mailbox.Square(4, 3), 0)
	if got := m.String(); got != "e2e4" {
		t.Errorf("got %q want %q", got, "e2e4")
	}
	p := mailbox.NewMove(mailbox.Square(0, 6), mailbox.Square(0, 7), uint32(mailbox.WKnight))
	if got := p.String(); got != "a7a8n" {
		t.Errorf("got %q want %q", got, "a7a8n")
	}
}
