// Command bench runs fixed-depth searches over positions read from
// standard input. The input is a sequence of requests of the form
//
//	go <depth> <fen with six fields>
//
// and anything else ends the loop. Each request prints the per-depth
// reporting lines and the chosen move, or a terminal verdict when the
// position has none.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"

	"chess-bench/engine"
	"chess-bench/mailbox"
)

func main() {
	ttMB := flag.Int("tt", 4, "transposition table size in MiB")
	reset := flag.Bool("reset", false, "clear table and killers between positions")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	flag.Parse()

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

	e := engine.New(*ttMB, os.Stdout)

	sc := bufio.NewScanner(os.Stdin)
	sc.Split(bufio.ScanWords)
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	}

	first := true
	for {
		tok, ok := next()
		if !ok || tok != "go" {
			break
		}
		dtok, ok := next()
		if !ok {
			break
		}
		depth, err := strconv.Atoi(dtok)
		if err != nil || depth < 1 {
			fmt.Fprintln(os.Stderr, "bad depth")
			os.Exit(1)
		}
		fields := make([]string, 0, 6)
		for i := 0; i < 6; i++ {
			t, ok := next()
			if !ok {
				break
			}
			fields = append(fields, t)
		}
		b, err := mailbox.ParseFEN(strings.Join(fields, " "))
		if err != nil {
			fmt.Fprintln(os.Stderr, "fen error")
			os.Exit(1)
		}
		if *reset && !first {
			e.NewGame()
		}
		first = false
		e.SetPosition(b)

		fmt.Printf("\ngo depth %d\n", depth)
		_, status := e.Search(uint32(depth))
		switch status {
		case engine.StatusCheckmate:
			fmt.Printf("\n\n**** YOU WIN ****\n\n")
		case engine.StatusStalemate:
			fmt.Printf("\n\n**** STALEMATE ****\n\n")
		case engine.StatusFiftyMove:
			fmt.Printf("\n\n**** DRAW BY FIFTY MOVE RULE ****\n\n")
		}
	}

	fmt.Printf("\nbye!\n\n")
}
