// Package game drives a checkers game between two players and keeps a
// registry of running games.
package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"checkers/internal/checkers"
	"checkers/internal/player"
)

var (
	ErrGameOver      = errors.New("game is over")
	ErrColorMismatch = errors.New("player color does not match its seat")
	ErrInvalidChoice = errors.New("player chose an option that does not exist")
)

type Outcome int8

const (
	Ongoing Outcome = iota
	WinnerWhite
	WinnerBlack
	DrawIdle
	DrawRepetition
)

func (o Outcome) String() string {
	switch o {
	case WinnerWhite:
		return "White wins"
	case WinnerBlack:
		return "Black wins"
	case DrawIdle:
		return "Draw (no progress)"
	case DrawRepetition:
		return "Draw (threefold repetition)"
	}
	return "Ongoing"
}

func winner(c checkers.Color) Outcome {
	if c == checkers.White {
		return WinnerWhite
	}
	return WinnerBlack
}

// Turn describes one played half-move. Move is nil when the side to move
// had already lost.
type Turn struct {
	Ply      int
	Side     checkers.Color
	Player   string
	Move     checkers.Move
	Random   bool
	Position *checkers.Position
	Outcome  Outcome
}

type Result struct {
	Outcome Outcome
	Plies   int
	Final   *checkers.Position
}

type Game struct {
	Position *checkers.Position
	White    player.Player
	Black    player.Player

	// RandomOpenings is the number of first turns of each bot that are
	// picked uniformly at random instead of asking the bot.
	RandomOpenings int
	// MaxIdleMoves ends the game in a draw after that many consecutive
	// half-moves without a capture or a pawn move; 0 disables the rule.
	MaxIdleMoves int
	// OnTurn, when set, is called by Play after every turn.
	OnTurn func(Turn)

	ply        int
	idle       int
	randomUsed [2]int
	seen       map[uint64]int
	outcome    Outcome
	rng        *rand.Rand
}

func New(white, black player.Player, pawnRows int) (*Game, error) {
	pos, err := checkers.NewInitialPosition(pawnRows)
	if err != nil {
		return nil, err
	}
	return NewFromPosition(white, black, pos)
}

func NewFromPosition(white, black player.Player, pos *checkers.Position) (*Game, error) {
	if white.Color() != checkers.White {
		return nil, fmt.Errorf("%w: %s plays %s", ErrColorMismatch, white.Name(), white.Color())
	}
	if black.Color() != checkers.Black {
		return nil, fmt.Errorf("%w: %s plays %s", ErrColorMismatch, black.Name(), black.Color())
	}
	g := &Game{
		Position: pos,
		White:    white,
		Black:    black,
		seen:     map[uint64]int{pos.Hash: 1},
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	return g, nil
}

// Seed makes random openings reproducible.
func (g *Game) Seed(seed int64) { g.rng = rand.New(rand.NewSource(seed)) }

func (g *Game) Outcome() Outcome { return g.outcome }

func (g *Game) Plies() int { return g.ply }

func (g *Game) current() player.Player {
	if g.Position.SideToMove == checkers.White {
		return g.White
	}
	return g.Black
}

// Step plays one turn for the side to move.
func (g *Game) Step() (Turn, error) {
	if g.outcome != Ongoing {
		return Turn{}, ErrGameOver
	}
	pos := g.Position
	side := pos.SideToMove
	p := g.current()
	if pos.Lost() {
		g.outcome = winner(side.Opposite())
		return Turn{Ply: g.ply, Side: side, Player: p.Name(), Position: pos, Outcome: g.outcome}, nil
	}

	opts := pos.Options()
	random := g.RandomOpenings > 0 && player.IsBot(p) && g.randomUsed[side] < g.RandomOpenings

	var (
		mv  checkers.Move
		idx int
		err error
	)
	switch {
	case random:
		g.randomUsed[side]++
		idx = g.rng.Intn(opts.Len())
	case len(opts.Captures) > 0:
		idx, err = p.ChooseCapture(pos.Board, opts.Captures)
	default:
		idx, err = p.ChooseMove(pos.Board, opts.Moves)
	}
	if err != nil {
		return Turn{}, fmt.Errorf("%s: %w", p.Name(), err)
	}
	if idx < 0 || idx >= opts.Len() {
		return Turn{}, fmt.Errorf("%w: %s picked %d of %d", ErrInvalidChoice, p.Name(), idx, opts.Len())
	}
	if len(opts.Captures) > 0 {
		mv = opts.Captures[idx]
	} else {
		mv = opts.Moves[idx]
	}

	start := mv.Start()
	mover, ok, err := pos.Board.Get(start.X, start.Y)
	if err != nil {
		return Turn{}, err
	}
	if !ok {
		return Turn{}, fmt.Errorf("%w: (%d,%d)", checkers.ErrEmptySquare, start.X, start.Y)
	}
	next, err := pos.Apply(mv)
	if err != nil {
		return Turn{}, err
	}

	g.ply++
	g.Position = next
	if _, isCapture := mv.(checkers.Capture); isCapture || mover.Rank == checkers.Pawn {
		g.idle = 0
	} else {
		g.idle++
	}
	g.seen[next.Hash]++

	switch {
	case g.seen[next.Hash] >= 3:
		g.outcome = DrawRepetition
	case g.MaxIdleMoves > 0 && g.idle >= g.MaxIdleMoves:
		g.outcome = DrawIdle
	case next.Lost():
		g.outcome = winner(side)
	}

	return Turn{
		Ply:      g.ply,
		Side:     side,
		Player:   p.Name(),
		Move:     mv,
		Random:   random,
		Position: next,
		Outcome:  g.outcome,
	}, nil
}

// Play runs turns until the game is decided or ctx is done.
func (g *Game) Play(ctx context.Context) (Result, error) {
	for g.outcome == Ongoing {
		if err := ctx.Err(); err != nil {
			return g.result(), err
		}
		turn, err := g.Step()
		if err != nil {
			return g.result(), err
		}
		if g.OnTurn != nil {
			g.OnTurn(turn)
		}
	}
	return g.result(), nil
}

func (g *Game) result() Result {
	return Result{Outcome: g.outcome, Plies: g.ply, Final: g.Position}
}
