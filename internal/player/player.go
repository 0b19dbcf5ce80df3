// Package player holds the strategies that pick one of the legal options
// of a turn: a human at a terminal, a uniformly random bot and a minimax bot.
package player

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"checkers/internal/checkers"
	"checkers/internal/engine"
)

var ErrNoOptions = errors.New("no options to choose from")

// Player picks the index of one option. Captures are only offered when the
// side has at least one, and then only the longest chains.
type Player interface {
	Name() string
	Color() checkers.Color
	ChooseMove(b checkers.Board, moves []checkers.SimpleMove) (int, error)
	ChooseCapture(b checkers.Board, captures []checkers.Capture) (int, error)
}

// IsBot reports whether p decides without a human.
func IsBot(p Player) bool {
	switch p.(type) {
	case *RandomBot, *MinimaxBot:
		return true
	}
	return false
}

// RandomBot picks uniformly among the offered options.
type RandomBot struct {
	name  string
	color checkers.Color
	rng   *rand.Rand
}

func NewRandomBot(name string, color checkers.Color, seed int64) *RandomBot {
	return &RandomBot{name: name, color: color, rng: rand.New(rand.NewSource(seed))}
}

func (r *RandomBot) Name() string          { return r.name }
func (r *RandomBot) Color() checkers.Color { return r.color }

func (r *RandomBot) ChooseMove(_ checkers.Board, moves []checkers.SimpleMove) (int, error) {
	return r.pick(len(moves))
}

func (r *RandomBot) ChooseCapture(_ checkers.Board, captures []checkers.Capture) (int, error) {
	return r.pick(len(captures))
}

func (r *RandomBot) pick(n int) (int, error) {
	if n == 0 {
		return 0, ErrNoOptions
	}
	return r.rng.Intn(n), nil
}

// MinimaxBot searches every option to the engine depth and picks among the
// best scoring ones.
type MinimaxBot struct {
	name   string
	color  checkers.Color
	engine *engine.Engine

	// Logger receives one line per decision; nil silences it.
	Logger *log.Logger
}

func NewMinimaxBot(name string, color checkers.Color, e *engine.Engine) *MinimaxBot {
	return &MinimaxBot{name: name, color: color, engine: e, Logger: log.Default()}
}

func (m *MinimaxBot) Name() string          { return m.name }
func (m *MinimaxBot) Color() checkers.Color { return m.color }

func (m *MinimaxBot) Engine() *engine.Engine { return m.engine }

func (m *MinimaxBot) ChooseMove(b checkers.Board, moves []checkers.SimpleMove) (int, error) {
	if len(moves) == 0 {
		return 0, ErrNoOptions
	}
	res, err := m.engine.SearchMoves(b, moves, m.color)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", m.name, err)
	}
	m.report(res)
	return res.Index, nil
}

func (m *MinimaxBot) ChooseCapture(b checkers.Board, captures []checkers.Capture) (int, error) {
	if len(captures) == 0 {
		return 0, ErrNoOptions
	}
	res, err := m.engine.SearchCaptures(b, captures, m.color)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", m.name, err)
	}
	m.report(res)
	return res.Index, nil
}

func (m *MinimaxBot) report(res engine.SearchResult) {
	if m.Logger == nil {
		return
	}
	m.Logger.Printf("%s (%s): score=%d ties=%d nodes=%d time=%v",
		m.name, m.color, res.Score, len(res.Ties), res.Nodes, res.TimeUsed.Round(time.Millisecond))
}
