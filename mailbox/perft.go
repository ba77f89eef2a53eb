package mailbox

import (
	"fmt"
	"io"
)

// Perft counts the leaf nodes of the legal move tree to the given
// depth. The standard movegen correctness instrument.
func Perft(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var buf [MaxMoves]Move
	n := b.GenerateAll(buf[:])
	if depth == 1 {
		return uint64(n)
	}
	var total uint64
	for i := 0; i < n; i++ {
		m, u := b.Apply(buf[i])
		total += Perft(b, depth-1)
		b.Unapply(m, u)
	}
	return total
}

// PerftDivide prints the per-move subtree counts at the given depth
// and returns the total.
func PerftDivide(w io.Writer, b *Board, depth int) uint64 {
	var buf [MaxMoves]Move
	n := b.GenerateAll(buf[:])
	var total uint64
	for i := 0; i < n; i++ {
		m, u := b.Apply(buf[i])
		c := Perft(b, depth-1)
		b.Unapply(m, u)
		fmt.Fprintf(w, "%s: %d\n", m, c)
		total += c
	}
	fmt.Fprintf(w, "total: %d\n", total)
	return total
}
