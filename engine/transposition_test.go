package engine

import (
	"io"
	"testing"

	"chess-bench/mailbox"
)

func TestTransStoreAndProbe(t *testing.T) {
	e := New(1, io.Discard)
	z := uint64(0x9e3779b97f4a7c15)
	best := mailbox.NewMove(mailbox.Square(4, 1), mailbox.Square(4, 3), 0)

	e.insertTrans(z, 2, 7, ttExact, 123, best)

	if v := e.lookupTrans(z, 2, 7, -32767, 32767); v != 123 {
		t.Errorf("exact probe: got %d want 123", v)
	}
	// A shallower request is still covered by the stored depth.
	if v := e.lookupTrans(z, 4, 7, -32767, 32767); v != 123 {
		t.Errorf("shallow probe: got %d want 123", v)
	}
	// A deeper request misses but still seeds the killer slot.
	e.killers[0] = 0
	if v := e.lookupTrans(z, 0, 7, -32767, 32767); v != ttNone {
		t.Errorf("deep probe: got %d want miss", v)
	}
	if e.killers[0] != best {
		t.Errorf("killer slot not seeded: got %v want %v", e.killers[0], best)
	}
	// A different key misses without touching killers.
	e.killers[0] = 0
	if v := e.lookupTrans(z^1, 0, 1, -32767, 32767); v != ttNone {
		t.Errorf("wrong key: got %d want miss", v)
	}
	if e.killers[0] != 0 {
		t.Error("killer seeded from a mismatched entry")
	}
}

func TestTransBounds(t *testing.T) {
	e := New(1, io.Discard)

	za := uint64(0x1111111111111111)
	e.insertTrans(za, 0, 5, ttAlpha, 50, 0)
	if v := e.lookupTrans(za, 0, 5, 60, 100); v != 60 {
		t.Errorf("upper bound below alpha: got %d want 60", v)
	}
	if v := e.lookupTrans(za, 0, 5, 40, 100); v != ttNone {
		t.Errorf("upper bound above alpha: got %d want miss", v)
	}

	zb := uint64(0x2222222222222222)
	e.insertTrans(zb, 0, 5, ttBeta, 50, 0)
	if v := e.lookupTrans(zb, 0, 5, -100, 40); v != 40 {
		t.Errorf("lower bound above beta: got %d want 40", v)
	}
	if v := e.lookupTrans(zb, 0, 5, -100, 60); v != ttNone {
		t.Errorf("lower bound below beta: got %d want miss", v)
	}
}

func TestTransMateClamp(t *testing.T) {
	e := New(1, io.Discard)

	// A mated-side exact score becomes an upper bound valid at any
	// remaining depth.
	zl := uint64(0x3333333333333333)
	e.insertTrans(zl, 5, 9, ttExact, -32490, 0)
	if v := e.lookupTrans(zl, 50, 120, -100, 100); v != -100 {
		t.Errorf("mate upper bound: got %d want -100", v)
	}

	zh := uint64(0x4444444444444444)
	e.insertTrans(zh, 5, 9, ttExact, 32490, 0)
	if v := e.lookupTrans(zh, 50, 120, -100, 100); v != 100 {
		t.Errorf("mate lower bound: got %d want 100", v)
	}

	// The contradictory bound kind is dropped entirely.
	zd := uint64(0x5555555555555555)
	e.insertTrans(zd, 5, 9, ttBeta, -32490, 0)
	if v := e.lookupTrans(zd, 5, 9, -32767, 32767); v != ttNone {
		t.Errorf("dropped entry: got %d want miss", v)
	}
}

func TestTransSizeLadder(t *testing.T) {
	cases := []struct {
		meg   int
		bytes uint64
	}{
		{0, 1 << 20},
		{1, 1 << 20},
		{2, 1 << 21},
		{4, 1 << 22},
		{64, 1 << 26},
		{2048, 1 << 30},
	}
	entrySize := uint64(16)
	for _, c := range cases {
		tt := newTransTable(c.meg)
		want := c.bytes / entrySize
		if got := uint64(len(tt.entries)); got != want {
			t.Errorf("%d MiB: %d entries, want %d", c.meg, got, want)
		}
		if tt.mask != uint32(want-1) {
			t.Errorf("%d MiB: mask %#x, want %#x", c.meg, tt.mask, want-1)
		}
	}
}

func TestNewGameClearsState(t *testing.T) {
	e := New(1, io.Discard)
	z := uint64(0x6666666666666666)
	best := mailbox.NewMove(mailbox.Square(6, 0), mailbox.Square(5, 2), 0)
	e.insertTrans(z, 0, 5, ttExact, 77, best)
	e.killers[3] = best

	e.NewGame()

	if v := e.lookupTrans(z, 0, 5, -32767, 32767); v != ttNone {
		t.Errorf("table survived NewGame: got %d", v)
	}
	if e.killers[3] != 0 {
		t.Error("killer slots survived NewGame")
	}
}
