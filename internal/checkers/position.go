package checkers

import "fmt"

// Position = board + side to move. White moves first.
type Position struct {
	Board      Board
	SideToMove Color
	Hash       uint64
}

func NewInitialPosition(pawnRows int) (*Position, error) {
	b, err := NewBoard(pawnRows)
	if err != nil {
		return nil, err
	}
	return NewPosition(b, White), nil
}

func NewPosition(b Board, side Color) *Position {
	pos := &Position{Board: b, SideToMove: side}
	pos.Hash = pos.CalculateHash()
	return pos
}

func (p *Position) Options() Options {
	return LegalOptions(p.Board, p.SideToMove)
}

// Apply plays m for the side to move, promotes, and hands the turn over.
func (p *Position) Apply(m Move) (*Position, error) {
	if c, ok := m.(Capture); ok && len(c) == 0 {
		return nil, ErrEmptyCapture
	}
	start := m.Start()
	if err := validate(start.X, start.Y); err != nil {
		return nil, err
	}
	if cell := p.Board.at(start.X, start.Y); !cell.IsEmpty() && cell.color() != p.SideToMove {
		return nil, fmt.Errorf("%w: %s to move", ErrWrongSide, p.SideToMove)
	}
	b, err := Play(p.Board, m)
	if err != nil {
		return nil, err
	}
	return &Position{
		Board:      b,
		SideToMove: p.SideToMove.Opposite(),
		Hash:       p.nextHash(b, m),
	}, nil
}

// Lost reports whether the side to move has lost.
func (p *Position) Lost() bool {
	return HasGameEnded(p.Board, p.SideToMove)
}
