package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/benbeisheim/chessboard-backend/internal/model"
)

func main() {
	fen := flag.String("fen", model.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, toMove, err := model.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := model.PerftDivide(board, toMove, *depth)
		type kv struct {
			m model.Move
			n uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m, n})
			sum += n
		}
		sort.Slice(arr, func(i, j int) bool { return arr[i].m.String() < arr[j].m.String() })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.m.String(), x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	start := time.Now()
	nodes := model.Perft(board, toMove, *depth)
	elapsed := time.Since(start)
	nps := float64(nodes) / elapsed.Seconds()
	fmt.Printf("depth=%d nodes=%d time=%s nps=%.0f\n", *depth, nodes, elapsed.Round(time.Millisecond), nps)
}
