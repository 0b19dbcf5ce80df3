package checkers

import "sync"

var (
	zobristOnce sync.Once

	// indexed by cell code, playable square index
	zobristCells [cellMask + 1][NumPlayable]uint64
	zobristSide  uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}
		for _, code := range [...]Cell{WhitePawn, BlackPawn, WhiteQueen, BlackQueen} {
			for i := 0; i < NumPlayable; i++ {
				zobristCells[code][i] = next()
			}
		}
		zobristSide = next()
	})
}

// CalculateHash computes the Zobrist key of the position from scratch.
func (p *Position) CalculateHash() uint64 {
	initZobrist()

	var h uint64
	for x := 0; x < Size; x++ {
		for y := (x + 1) % 2; y < Size; y += 2 {
			code := p.Board.at(x, y)
			if code.IsEmpty() {
				continue
			}
			h ^= zobristCells[code][cellIndex(x, y)]
		}
	}
	if p.SideToMove == Black {
		h ^= zobristSide
	}
	return h
}

// nextHash updates p.Hash for next = Play(p.Board, m): the mover leaves its
// start square, lands (possibly promoted) on the end square, and every
// captured piece disappears.
func (p *Position) nextHash(next Board, m Move) uint64 {
	initZobrist()

	h := p.Hash ^ zobristSide
	start, end := m.Start(), m.End()
	h ^= zobristCells[p.Board.at(start.X, start.Y)][cellIndex(start.X, start.Y)]
	h ^= zobristCells[next.at(end.X, end.Y)][cellIndex(end.X, end.Y)]

	var captured []Square
	switch mv := m.(type) {
	case Capture:
		captured = mv.Captured()
	case Jump:
		captured = []Square{mv.Captured()}
	}
	for _, sq := range captured {
		h ^= zobristCells[p.Board.at(sq.X, sq.Y)][cellIndex(sq.X, sq.Y)]
	}
	return h
}
