package engine

import (
	"unsafe"

	"chess-bench/mailbox"
)

// ttEntry is one always-replace transposition slot. The depth word
// packs the remaining search depth in the low twelve bits and the
// bound kind in the next two.
type ttEntry struct {
	key   uint64
	depth uint16
	val   int16
	best  mailbox.Move
}

const (
	ttDepthMask uint16 = 0x0fff
	ttBoundMask uint16 = 0x3000
	ttAlpha     uint16 = 0x1000
	ttBeta      uint16 = 0x2000
	ttExact     uint16 = 0x3000

	// ttNone is outside the score range and marks a failed lookup.
	ttNone = 999999
)

type transTable struct {
	entries []ttEntry
	mask    uint32
}

// newTransTable sizes the table to the largest power-of-two byte
// budget not above the requested MiB count, capped at 1 GiB.
func newTransTable(meg int) *transTable {
	var size uint64
	switch {
	case meg >= 1024:
		size = 1 << 30
	case meg >= 512:
		size = 1 << 29
	case meg >= 256:
		size = 1 << 28
	case meg >= 128:
		size = 1 << 27
	case meg >= 64:
		size = 1 << 26
	case meg >= 32:
		size = 1 << 25
	case meg >= 16:
		size = 1 << 24
	case meg >= 8:
		size = 1 << 23
	case meg >= 4:
		size = 1 << 22
	case meg >= 2:
		size = 1 << 21
	default:
		size = 1 << 20
	}
	count := size / uint64(unsafe.Sizeof(ttEntry{}))
	return &transTable{
		entries: make([]ttEntry, count),
		mask:    uint32(count - 1),
	}
}

func (t *transTable) clear() {
	for i := range t.entries {
		t.entries[i] = ttEntry{}
	}
}

// lookupTrans probes the table. A stored best move is copied into the
// killer slot of this ply so it is searched first even when the
// stored depth is too shallow for a cutoff. Returns ttNone unless the
// entry can bound the window.
func (e *Engine) lookupTrans(z uint64, dp, dm uint32, alpha, beta int) int {
	en := &e.tt.entries[uint32(z)&e.tt.mask]
	if en.key != z {
		return ttNone
	}
	if en.best != 0 && dp < mailbox.MaxDepth {
		e.killers[dp] = en.best
	}
	if uint32(en.depth&ttDepthMask) >= dm-dp {
		lv := int(en.val)
		switch en.depth & ttBoundMask {
		case ttAlpha:
			if lv <= alpha {
				return alpha
			}
		case ttBeta:
			if lv >= beta {
				return beta
			}
		default:
			return lv
		}
	}
	return ttNone
}

// insertTrans stores an always-replace entry. Mate scores are clamped
// to one-sided bounds valid at any depth: an exact or fail-low mate
// becomes an upper bound at -32000 over the full horizon, an exact or
// fail-high mate a lower bound at 32000, and the opposite bound kinds
// are not stored at all.
func (e *Engine) insertTrans(z uint64, dp, dm uint32, c uint16, v int, best mailbox.Move) {
	if v <= -32000 {
		if c == ttExact {
			c = ttAlpha
		}
		if c != ttAlpha {
			return
		}
		v = -32000
		dp, dm = 0, mailbox.MaxDepth
	} else if v >= 32000 {
		if c == ttExact {
			c = ttBeta
		}
		if c != ttBeta {
			return
		}
		v = 32000
		dp, dm = 0, mailbox.MaxDepth
	}
	en := &e.tt.entries[uint32(z)&e.tt.mask]
	en.key = z
	en.depth = uint16(dm-dp) | c
	en.val = int16(v)
	en.best = best
}
