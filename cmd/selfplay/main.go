package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
)

type Config struct {
	Games          int
	Concurrency    int
	DepthA         int
	DepthB         int
	Rows           int
	PawnWeight     int
	QueenWeight    int
	RandomOpenings int
	MaxIdle        int
	Seed           int64
}

func main() {
	var cfg Config
	flag.IntVar(&cfg.Games, "games", 10, "number of games to play")
	flag.IntVar(&cfg.Concurrency, "concurrency", runtime.NumCPU(), "games played at the same time")
	flag.IntVar(&cfg.DepthA, "depth-a", 2, "search depth of engine A")
	flag.IntVar(&cfg.DepthB, "depth-b", 4, "search depth of engine B")
	flag.IntVar(&cfg.Rows, "rows", 3, "pawn rows per side (1-3)")
	flag.IntVar(&cfg.PawnWeight, "pawn-weight", 1, "material weight of a pawn")
	flag.IntVar(&cfg.QueenWeight, "queen-weight", 3, "material weight of a queen")
	flag.IntVar(&cfg.RandomOpenings, "random-openings", 1, "random first turns per bot")
	flag.IntVar(&cfg.MaxIdle, "max-idle", 50, "draw after this many half-moves without capture or pawn move")
	flag.Int64Var(&cfg.Seed, "seed", 1, "seed for openings and tie-breaks")
	flag.Parse()

	log.Printf("%+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}
