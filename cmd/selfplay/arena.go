package main

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"checkers/internal/checkers"
	"checkers/internal/engine"
	"checkers/internal/game"
	"checkers/internal/player"
)

type gameInfo struct {
	number         int
	engineAIsWhite bool
}

type gameResult struct {
	info    gameInfo
	id      string
	outcome game.Outcome
	plies   int
}

func run(ctx context.Context, cfg Config) error {
	log.Println("arena started")
	defer log.Println("arena finished")

	log.Println("NumCPU", runtime.NumCPU(),
		"GOMAXPROCS", runtime.GOMAXPROCS(0),
		"gameConcurrency", cfg.Concurrency)

	mgr := game.NewManager()
	g, ctx := errgroup.WithContext(ctx)

	gameInfos := make(chan gameInfo)
	gameResults := make(chan gameResult)

	g.Go(func() error {
		defer close(gameInfos)
		for i := 0; i < cfg.Games; i++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case gameInfos <- gameInfo{number: i + 1, engineAIsWhite: i%2 == 0}:
			}
		}
		return nil
	})

	g.Go(func() error {
		return showResults(cfg, gameResults)
	})

	var wg sync.WaitGroup
	for i := 0; i < max(cfg.Concurrency, 1); i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, cfg, mgr, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	for _, st := range mgr.List() {
		log.Printf("%s %s vs %s: %v after %d plies, final %s",
			st.ID, st.White, st.Black, st.Outcome, st.Plies, st.Pos.Encode())
	}
	return nil
}

func playGames(
	ctx context.Context,
	cfg Config,
	mgr *game.Manager,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	for info := range gameInfos {
		res, err := playGame(ctx, cfg, mgr, info)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}

func newBot(name string, color checkers.Color, depth int, cfg Config, seed int64) *player.MinimaxBot {
	e := engine.NewEngine(engine.NewCountEstimator(cfg.PawnWeight, cfg.QueenWeight), depth)
	e.Threads = 1
	e.Seed(seed)
	bot := player.NewMinimaxBot(name, color, e)
	bot.Logger = nil
	return bot
}

func playGame(ctx context.Context, cfg Config, mgr *game.Manager, info gameInfo) (gameResult, error) {
	seed := cfg.Seed + int64(info.number)
	nameA := fmt.Sprintf("A (depth %d)", cfg.DepthA)
	nameB := fmt.Sprintf("B (depth %d)", cfg.DepthB)

	var white, black player.Player
	if info.engineAIsWhite {
		white = newBot(nameA, checkers.White, cfg.DepthA, cfg, seed)
		black = newBot(nameB, checkers.Black, cfg.DepthB, cfg, seed+1)
	} else {
		white = newBot(nameB, checkers.White, cfg.DepthB, cfg, seed)
		black = newBot(nameA, checkers.Black, cfg.DepthA, cfg, seed+1)
	}

	g, err := game.New(white, black, cfg.Rows)
	if err != nil {
		return gameResult{}, err
	}
	g.Seed(seed)
	g.RandomOpenings = cfg.RandomOpenings
	g.MaxIdleMoves = cfg.MaxIdle

	st := mgr.NewGame(g)
	g.OnTurn = func(turn game.Turn) {
		if err := mgr.Update(st.ID, turn.Position, turn.Ply); err != nil {
			log.Printf("game %d: %v", info.number, err)
		}
	}
	res, err := g.Play(ctx)
	if err != nil {
		return gameResult{}, fmt.Errorf("game %d: %w", info.number, err)
	}
	if err := mgr.Finish(st.ID, res); err != nil {
		return gameResult{}, err
	}
	return gameResult{info: info, id: st.ID, outcome: res.Outcome, plies: res.Plies}, nil
}

func showResults(cfg Config, gameResults <-chan gameResult) error {
	var games, wins, losses, draws int
	for res := range gameResults {
		games++
		log.Printf("Finished game %d of %d: %v in %d plies {%s}",
			res.info.number, cfg.Games, res.outcome, res.plies, res.id)
		switch {
		case res.outcome == game.WinnerWhite && res.info.engineAIsWhite,
			res.outcome == game.WinnerBlack && !res.info.engineAIsWhite:
			wins++
		case res.outcome == game.WinnerWhite, res.outcome == game.WinnerBlack:
			losses++
		default:
			draws++
		}
		log.Printf("Score A-B-draw: %d - %d - %d  %d", wins, losses, draws, games)
	}
	return nil
}
