package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"checkers/internal/checkers"
)

// TestCase is one position of a random game with everything the side to
// move may legally play there.
type TestCase struct {
	Encoding string                `json:"encoding"`
	Packed   [2]uint64             `json:"packed"`
	Side     string                `json:"side"`
	Captures []checkers.Capture    `json:"captures,omitempty"`
	Moves    []checkers.SimpleMove `json:"moves,omitempty"`
	Perft2   uint64                `json:"perft2"`
}

func main() {
	games := flag.Int("games", 10, "number of random games")
	rows := flag.Int("rows", 3, "pawn rows per side (1-3)")
	maxPlies := flag.Int("max-plies", 200, "plies per game before giving up")
	seed := flag.Int64("seed", 1, "random seed")
	out := flag.String("out", "move_gen_test_data.json", "output file")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	var testCases []TestCase

	for g := 0; g < *games; g++ {
		pos, err := checkers.NewInitialPosition(*rows)
		if err != nil {
			log.Fatal(err)
		}
		for ply := 0; ply < *maxPlies; ply++ {
			opts := pos.Options()
			if opts.Empty() {
				break
			}
			testCases = append(testCases, TestCase{
				Encoding: pos.Encode(),
				Packed:   pos.Board.Packed(),
				Side:     pos.SideToMove.String(),
				Captures: opts.Captures,
				Moves:    opts.Moves,
				Perft2:   checkers.Perft(pos.Board, pos.SideToMove, 2),
			})

			var mv checkers.Move
			if i := rng.Intn(opts.Len()); len(opts.Captures) > 0 {
				mv = opts.Captures[i]
			} else {
				mv = opts.Moves[i]
			}
			next, err := pos.Apply(mv)
			if err != nil {
				log.Fatalf("apply %v: %v", mv, err)
			}
			pos = next
		}
	}

	data, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Generated %d test cases from %d random games to %s\n", len(testCases), *games, *out)
}
