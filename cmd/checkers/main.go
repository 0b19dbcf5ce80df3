package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"checkers/internal/checkers"
	"checkers/internal/engine"
	"checkers/internal/game"
	"checkers/internal/player"
	"checkers/internal/render"
)

type Config struct {
	Rows           int
	Depth          int
	White          string
	Black          string
	PawnWeight     int
	QueenWeight    int
	RandomOpenings int
	MaxIdle        int
	Seed           int64
	Color          bool
}

func newPlayer(kind string, color checkers.Color, cfg Config, seed int64) (player.Player, error) {
	name := fmt.Sprintf("%s (%s)", color, kind)
	switch kind {
	case "human":
		return player.NewHuman(name, color, os.Stdin, os.Stdout), nil
	case "random":
		return player.NewRandomBot(name, color, seed), nil
	case "minimax":
		e := engine.NewEngine(engine.NewCountEstimator(cfg.PawnWeight, cfg.QueenWeight), cfg.Depth)
		e.Seed(seed)
		return player.NewMinimaxBot(name, color, e), nil
	}
	return nil, fmt.Errorf("unknown player kind %q (want human, random or minimax)", kind)
}

func main() {
	var cfg Config
	flag.IntVar(&cfg.Rows, "rows", 3, "pawn rows per side (1-3)")
	flag.IntVar(&cfg.Depth, "depth", 4, "minimax search depth")
	flag.StringVar(&cfg.White, "white", "human", "white player: human, random or minimax")
	flag.StringVar(&cfg.Black, "black", "minimax", "black player: human, random or minimax")
	flag.IntVar(&cfg.PawnWeight, "pawn-weight", engine.DefaultPawnWeight, "material weight of a pawn")
	flag.IntVar(&cfg.QueenWeight, "queen-weight", engine.DefaultQueenWeight, "material weight of a queen")
	flag.IntVar(&cfg.RandomOpenings, "random-openings", 0, "random first turns per bot")
	flag.IntVar(&cfg.MaxIdle, "max-idle", 50, "draw after this many half-moves without capture or pawn move (0 = never)")
	flag.Int64Var(&cfg.Seed, "seed", 0, "random seed (0 = time based)")
	flag.BoolVar(&cfg.Color, "color", true, "draw the board with ANSI colors")
	flag.Parse()

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	white, err := newPlayer(cfg.White, checkers.White, cfg, cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}
	black, err := newPlayer(cfg.Black, checkers.Black, cfg, cfg.Seed+1)
	if err != nil {
		log.Fatal(err)
	}

	g, err := game.New(white, black, cfg.Rows)
	if err != nil {
		log.Fatalf("new game: %v", err)
	}
	g.Seed(cfg.Seed)
	g.RandomOpenings = cfg.RandomOpenings
	g.MaxIdleMoves = cfg.MaxIdle

	opt := render.Options{Color: cfg.Color}
	fmt.Print(render.Text(g.Position.Board, opt))
	g.OnTurn = func(turn game.Turn) {
		if turn.Move == nil {
			return
		}
		note := ""
		if turn.Random {
			note = " (random opening)"
		}
		fmt.Printf("\n%d. %s plays %v%s\n", turn.Ply, turn.Player, turn.Move, note)
		fmt.Print(render.Text(turn.Position.Board, opt))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := g.Play(ctx)
	if err != nil {
		log.Fatalf("game stopped after %d plies: %v", res.Plies, err)
	}
	fmt.Printf("\n%v after %d plies\n", res.Outcome, res.Plies)
	fmt.Println("Final position:", res.Final.Encode())
}
