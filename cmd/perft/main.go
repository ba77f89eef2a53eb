// Command perft counts move-generation tree leaves for a position.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"chess-bench/mailbox"
)

func main() {
	fen := flag.String("fen", mailbox.FENStartPos, "position in FEN")
	depth := flag.Int("depth", 5, "perft depth")
	divide := flag.Bool("divide", false, "print per-move subtree counts")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	flag.Parse()

	if *depth < 1 {
		fmt.Fprintln(os.Stderr, "depth must be at least 1")
		os.Exit(1)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	b, err := mailbox.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	start := time.Now()
	var n uint64
	if *divide {
		n = mailbox.PerftDivide(os.Stdout, b, *depth)
	} else {
		n = mailbox.Perft(b, *depth)
		fmt.Printf("perft(%d) = %d\n", *depth, n)
	}
	el := time.Since(start).Seconds()
	if el > 0 {
		fmt.Printf("%.3fs (%.2f MN/s)\n", el, float64(n)/1e6/el)
	}
}
