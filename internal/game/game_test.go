package game

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"checkers/internal/checkers"
	"checkers/internal/engine"
	"checkers/internal/player"
)

func mustParse(t *testing.T, mockup string) checkers.Board {
	t.Helper()
	b, err := checkers.ParseBoard(mockup)
	if err != nil {
		t.Fatalf("parse board: %v", err)
	}
	return b
}

// scripted plays the simple move ending on the next target square.
type scripted struct {
	name    string
	color   checkers.Color
	targets []checkers.Square
	next    int
}

func (s *scripted) Name() string          { return s.name }
func (s *scripted) Color() checkers.Color { return s.color }

func (s *scripted) ChooseMove(_ checkers.Board, moves []checkers.SimpleMove) (int, error) {
	target := s.targets[s.next%len(s.targets)]
	s.next++
	for i, m := range moves {
		if m.End() == target {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no move to %v", target)
}

func (s *scripted) ChooseCapture(checkers.Board, []checkers.Capture) (int, error) {
	return 0, errors.New("unexpected capture")
}

func TestRandomBotsFinish(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		white := player.NewRandomBot("w", checkers.White, seed)
		black := player.NewRandomBot("b", checkers.Black, seed+100)
		g, err := New(white, black, 2)
		if err != nil {
			t.Fatal(err)
		}
		g.MaxIdleMoves = 40
		turns := 0
		g.OnTurn = func(Turn) { turns++ }
		res, err := g.Play(context.Background())
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if res.Outcome == Ongoing {
			t.Fatalf("seed %d: game did not finish", seed)
		}
		if res.Plies > turns || turns > res.Plies+1 {
			t.Fatalf("seed %d: plies=%d turns=%d", seed, res.Plies, turns)
		}
		if _, err := g.Step(); !errors.Is(err, ErrGameOver) {
			t.Fatalf("seed %d: step after end: %v", seed, err)
		}
	}
}

func TestCapturingLastPieceWins(t *testing.T) {
	b := mustParse(t, `
........
........
........
........
...b....
..w.....
........
........`)
	e := engine.NewEngine(engine.NewCountEstimator(1, 3), 2)
	white := player.NewMinimaxBot("mm", checkers.White, e)
	white.Logger = nil
	black := player.NewRandomBot("r", checkers.Black, 1)
	g, err := NewFromPosition(white, black, checkers.NewPosition(b, checkers.White))
	if err != nil {
		t.Fatal(err)
	}
	turn, err := g.Step()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := turn.Move.(checkers.Capture); !ok {
		t.Fatalf("expected a capture, got %v", turn.Move)
	}
	if turn.Outcome != WinnerWhite || g.Outcome() != WinnerWhite {
		t.Fatalf("outcome got=%v", turn.Outcome)
	}
	if turn.Position.Board.PieceCount(checkers.Black) != 0 {
		t.Fatal("captured piece still on the board")
	}
}

func TestSideWithoutMovesLoses(t *testing.T) {
	b := mustParse(t, `
........
........
........
........
........
........
.b......
w.w.....`)
	white := player.NewRandomBot("w", checkers.White, 1)
	black := player.NewRandomBot("b", checkers.Black, 1)
	g, err := NewFromPosition(white, black, checkers.NewPosition(b, checkers.Black))
	if err != nil {
		t.Fatal(err)
	}
	res, err := g.Play(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != WinnerWhite || res.Plies != 0 {
		t.Fatalf("got %+v", res)
	}
}

func TestThreefoldRepetitionDraw(t *testing.T) {
	b := mustParse(t, `
.B......
........
........
........
........
........
........
W.......`)
	white := &scripted{name: "w", color: checkers.White, targets: []checkers.Square{{X: 6, Y: 1}, {X: 7, Y: 0}}}
	black := &scripted{name: "b", color: checkers.Black, targets: []checkers.Square{{X: 1, Y: 0}, {X: 0, Y: 1}}}
	g, err := NewFromPosition(white, black, checkers.NewPosition(b, checkers.White))
	if err != nil {
		t.Fatal(err)
	}
	res, err := g.Play(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != DrawRepetition || res.Plies != 8 {
		t.Fatalf("got outcome=%v plies=%d", res.Outcome, res.Plies)
	}
}

func TestIdleMovesDraw(t *testing.T) {
	b := mustParse(t, `
.B......
........
........
........
........
........
........
W.......`)
	white := &scripted{name: "w", color: checkers.White, targets: []checkers.Square{{X: 6, Y: 1}, {X: 7, Y: 0}}}
	black := &scripted{name: "b", color: checkers.Black, targets: []checkers.Square{{X: 1, Y: 0}, {X: 0, Y: 1}}}
	g, err := NewFromPosition(white, black, checkers.NewPosition(b, checkers.White))
	if err != nil {
		t.Fatal(err)
	}
	g.MaxIdleMoves = 3
	res, err := g.Play(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != DrawIdle || res.Plies != 3 {
		t.Fatalf("got outcome=%v plies=%d", res.Outcome, res.Plies)
	}
}

func TestRandomOpeningsOnlyForBots(t *testing.T) {
	broken := engine.NewEngine(engine.NewCountEstimator(1, 3), 0)
	white := player.NewMinimaxBot("broken", checkers.White, broken)
	white.Logger = nil
	black := player.NewRandomBot("b", checkers.Black, 3)
	g, err := New(white, black, 3)
	if err != nil {
		t.Fatal(err)
	}
	g.Seed(11)
	g.RandomOpenings = 1

	for ply := 0; ply < 2; ply++ {
		turn, err := g.Step()
		if err != nil {
			t.Fatalf("ply %d: %v", ply, err)
		}
		if !turn.Random {
			t.Fatalf("ply %d should be a random opening", ply)
		}
	}
	// the opening budget is spent, so the bot's own search runs and fails
	if _, err := g.Step(); !errors.Is(err, engine.ErrInvalidDepth) {
		t.Fatalf("got %v want ErrInvalidDepth", err)
	}
}

func TestColorMismatch(t *testing.T) {
	a := player.NewRandomBot("a", checkers.White, 1)
	b := player.NewRandomBot("b", checkers.White, 2)
	if _, err := New(a, b, 3); !errors.Is(err, ErrColorMismatch) {
		t.Fatalf("got %v", err)
	}
	if _, err := New(a, player.NewRandomBot("c", checkers.Black, 1), 5); !errors.Is(err, checkers.ErrConstruction) {
		t.Fatalf("bad rows: %v", err)
	}
}

func TestPlayStopsOnCancel(t *testing.T) {
	g, err := New(player.NewRandomBot("w", checkers.White, 1), player.NewRandomBot("b", checkers.Black, 2), 3)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := g.Play(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
	if res.Outcome != Ongoing || res.Plies != 0 {
		t.Fatalf("got %+v", res)
	}
}

func TestPawnMoveResetsIdleCounter(t *testing.T) {
	b := mustParse(t, `
.......B
........
........
........
........
........
.w......
........`)
	white := &scripted{name: "w", color: checkers.White, targets: []checkers.Square{{X: 5, Y: 0}}}
	black := &scripted{name: "b", color: checkers.Black, targets: []checkers.Square{{X: 1, Y: 6}}}
	g, err := NewFromPosition(white, black, checkers.NewPosition(b, checkers.White))
	if err != nil {
		t.Fatal(err)
	}
	g.MaxIdleMoves = 1

	turn, err := g.Step()
	if err != nil {
		t.Fatal(err)
	}
	if turn.Outcome != Ongoing {
		t.Fatalf("pawn move counted as idle: %v", turn.Outcome)
	}
	turn, err = g.Step()
	if err != nil {
		t.Fatal(err)
	}
	if turn.Outcome != DrawIdle || turn.Ply != 2 {
		t.Fatalf("queen move got outcome=%v ply=%d", turn.Outcome, turn.Ply)
	}
}
