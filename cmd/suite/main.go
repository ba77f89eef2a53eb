// Command suite searches a set of test positions at a fixed depth
// across parallel workers and prints one result line per position.
// Every worker owns its own engine, so each individual search stays
// single-threaded and its node count reproducible.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"chess-bench/engine"
	"chess-bench/mailbox"
)

var defaultSuite = []string{
	mailbox.FENStartPos,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"8/k7/3p4/p2P1p2/P2P1P2/8/8/K7 w - - 0 1",
	"4k3/8/8/8/8/8/4P3/4K3 w - - 0 1",
}

func loadSuite(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var fens []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	return fens, sc.Err()
}

func main() {
	depth := flag.Int("depth", 5, "search depth per position")
	ttMB := flag.Int("tt", 4, "transposition table size in MiB per worker")
	workers := flag.Int("workers", 4, "parallel workers")
	file := flag.String("file", "", "file with one FEN per line")
	flag.Parse()

	fens := defaultSuite
	if *file != "" {
		var err error
		fens, err = loadSuite(*file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	g, ctx := errgroup.WithContext(context.Background())
	jobs := make(chan int)
	var mu sync.Mutex
	results := make([]string, 0, len(fens))

	g.Go(func() error {
		defer close(jobs)
		for i := range fens {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < *workers; w++ {
		g.Go(func() error {
			e := engine.New(*ttMB, io.Discard)
			for idx := range jobs {
				b, err := mailbox.ParseFEN(fens[idx])
				if err != nil {
					return fmt.Errorf("position %d: %w", idx+1, err)
				}
				e.NewGame()
				e.SetPosition(b)
				res, status := e.Search(uint32(*depth))
				var line string
				switch status {
				case engine.StatusCheckmate:
					line = fmt.Sprintf("%03d mate : %s", idx+1, fens[idx])
				case engine.StatusStalemate:
					line = fmt.Sprintf("%03d stalemate : %s", idx+1, fens[idx])
				case engine.StatusFiftyMove:
					line = fmt.Sprintf("%03d draw by fifty : %s", idx+1, fens[idx])
				default:
					line = fmt.Sprintf("%03d best=%s score=%+d nodes=%d : %s",
						idx+1, strings.TrimSpace(b.Notation(res.Move)),
						res.Score, res.Nodes, fens[idx])
				}
				mu.Lock()
				results = append(results, line)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	slices.Sort(results)
	for _, line := range results {
		fmt.Println(line)
	}
}
