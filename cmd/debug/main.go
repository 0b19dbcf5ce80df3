package main

import (
	"flag"
	"fmt"
	"log"

	"checkers/internal/checkers"
	"checkers/internal/render"
)

func main() {
	rows := flag.Int("rows", 3, "pawn rows per side (1-3)")
	fen := flag.String("fen", "", "position to inspect instead of the initial one")
	depth := flag.Int("perft", 4, "perft depth")
	flag.Parse()

	pos, err := checkers.NewInitialPosition(*rows)
	if *fen != "" {
		pos, err = checkers.DecodePosition(*fen)
	}
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("FEN:", pos.Encode())
	fmt.Printf("Hash: %#016x\n", pos.Hash)
	fmt.Print(render.Text(pos.Board, render.Options{}))

	opts := pos.Options()
	fmt.Printf("Captures: %d, moves: %d\n", len(opts.Captures), len(opts.Moves))
	for i, c := range opts.Captures {
		fmt.Printf("  %d. %s\n", i, c)
	}
	for i, m := range opts.Moves {
		fmt.Printf("  %d. %s\n", i, m)
	}
	for d := 1; d <= *depth; d++ {
		fmt.Printf("perft(%d) = %d\n", d, checkers.Perft(pos.Board, pos.SideToMove, d))
	}
}
