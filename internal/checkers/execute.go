package checkers

import "fmt"

// ExecuteMove moves a piece without promoting it.
func ExecuteMove(b Board, m SimpleMove) (Board, error) {
	if err := validate(m.XStart, m.YStart); err != nil {
		return b, err
	}
	if err := validate(m.XEnd, m.YEnd); err != nil {
		return b, err
	}
	if b.at(m.XStart, m.YStart).IsEmpty() {
		return b, fmt.Errorf("%w: (%d,%d)", ErrEmptySquare, m.XStart, m.YStart)
	}
	if !b.at(m.XEnd, m.YEnd).IsEmpty() {
		return b, fmt.Errorf("%w: (%d,%d)", ErrOccupiedSquare, m.XEnd, m.YEnd)
	}
	return applyMove(b, m), nil
}

// ExecuteCapture moves the chain's piece from the first jump's start to the
// last jump's end and removes every captured piece. No promotion.
func ExecuteCapture(b Board, chain Capture) (Board, error) {
	if len(chain) == 0 {
		return b, ErrEmptyCapture
	}
	for _, j := range chain {
		for _, sq := range [3]Square{j.Start(), j.End(), j.Captured()} {
			if err := validate(sq.X, sq.Y); err != nil {
				return b, err
			}
		}
	}
	start := chain.Start()
	if b.at(start.X, start.Y).IsEmpty() {
		return b, fmt.Errorf("%w: (%d,%d)", ErrEmptySquare, start.X, start.Y)
	}
	if end := chain.End(); end != start && !b.at(end.X, end.Y).IsEmpty() {
		return b, fmt.Errorf("%w: (%d,%d)", ErrOccupiedSquare, end.X, end.Y)
	}
	return applyCapture(b, chain), nil
}

func applyMove(b Board, m SimpleMove) Board {
	code := b.at(m.XStart, m.YStart)
	b.put(m.XStart, m.YStart, Empty)
	b.put(m.XEnd, m.YEnd, code)
	return b
}

func applyCapture(b Board, chain Capture) Board {
	start, end := chain.Start(), chain.End()
	code := b.at(start.X, start.Y)
	b.put(start.X, start.Y, Empty)
	for _, j := range chain {
		b.put(j.XCapture, j.YCapture, Empty)
	}
	b.put(end.X, end.Y, code)
	return b
}

// Play applies a chain or a move and promotes the result; the usual way to
// advance a game by one turn.
func Play(b Board, m Move) (Board, error) {
	var err error
	switch mv := m.(type) {
	case Capture:
		b, err = ExecuteCapture(b, mv)
	case SimpleMove:
		b, err = ExecuteMove(b, mv)
	case Jump:
		b, err = ExecuteCapture(b, Capture{mv})
	default:
		return b, fmt.Errorf("unsupported move type %T", m)
	}
	if err != nil {
		return b, err
	}
	return Promote(b), nil
}
