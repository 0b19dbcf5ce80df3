package checkers

import "golang.org/x/exp/slices"

// passable reports whether a sliding queen may cross (x, y): the square is
// empty or holds a piece already captured in the current chain.
func (b *Board) passable(x, y int) bool {
	return b.at(x, y).IsEmpty() || b.excludedAt(x, y)
}

func isEnemy(b *Board, x, y int, c Color) bool {
	cell := b.at(x, y)
	return !cell.IsEmpty() && cell.color() != c && !b.excludedAt(x, y)
}

// Pawn jump: enemy on the adjacent diagonal square, empty square right behind.
// Pawns capture in all four directions.
func genPawnJumps(b *Board, x, y int, c Color, jumps *[]Jump) {
	for _, d := range diagonals {
		cx, cy := x+d[0], y+d[1]
		lx, ly := cx+d[0], cy+d[1]
		if !onBoard(lx, ly) {
			continue
		}
		if !isEnemy(b, cx, cy, c) || !b.at(lx, ly).IsEmpty() {
			continue
		}
		*jumps = append(*jumps, Jump{XStart: x, YStart: y, XEnd: lx, YEnd: ly, XCapture: cx, YCapture: cy})
	}
}

// Queen jump: slide to the first live occupied square, which must be an
// enemy; every empty square behind it up to the next live occupied square is
// a landing choice. Pieces captured earlier in the chain are passed over but
// never landed on. Own pieces, the moving piece's origin included, block.
func genQueenJumps(b *Board, x, y int, c Color, jumps *[]Jump) {
	for _, d := range diagonals {
		cx, cy := x+d[0], y+d[1]
		for onBoard(cx, cy) && b.passable(cx, cy) {
			cx += d[0]
			cy += d[1]
		}
		if !onBoard(cx, cy) || !isEnemy(b, cx, cy, c) {
			continue
		}
		for lx, ly := cx+d[0], cy+d[1]; onBoard(lx, ly) && b.passable(lx, ly); lx, ly = lx+d[0], ly+d[1] {
			if b.at(lx, ly).IsEmpty() {
				*jumps = append(*jumps, Jump{XStart: x, YStart: y, XEnd: lx, YEnd: ly, XCapture: cx, YCapture: cy})
			}
		}
	}
}

// collectChains walks every capture chain from (x, y) depth-first. The moving
// piece stays on its origin square and captured pieces stay on the board,
// marked excluded, until the chain is executed: they can be jumped past but
// neither captured again nor landed on. Each branch gets its own copy
// of the board.
func collectChains(b Board, x, y int, queen bool, c Color, prefix Capture, out *[]Capture) {
	var jumps []Jump
	if queen {
		genQueenJumps(&b, x, y, c, &jumps)
	} else {
		genPawnJumps(&b, x, y, c, &jumps)
	}
	if len(jumps) == 0 {
		if len(prefix) > 0 {
			*out = append(*out, prefix)
		}
		return
	}
	for _, j := range jumps {
		next := b
		next.exclude(j.XCapture, j.YCapture)
		chain := append(slices.Clone(prefix), j)
		collectChains(next, j.XEnd, j.YEnd, queen, c, chain, out)
	}
}

func pieceCaptures(b Board, pieces []Square, c Color, queen bool) []Capture {
	b.ResetExcluded()
	var all []Capture
	for _, sq := range pieces {
		cell, ok := ownPiece(&b, sq, c)
		if !ok || cell.isQueen() != queen {
			continue
		}
		collectChains(b, sq.X, sq.Y, queen, c, nil, &all)
	}
	return longest(all)
}

// PawnCaptures returns the longest capture chains available to the given pawns.
func PawnCaptures(b Board, pawns []Square, c Color) []Capture {
	return pieceCaptures(b, pawns, c, false)
}

// QueenCaptures returns the longest capture chains available to the given queens.
func QueenCaptures(b Board, queens []Square, c Color) []Capture {
	return pieceCaptures(b, queens, c, true)
}

// LongestCaptures pools pawn and queen chains and keeps those of maximum length.
func LongestCaptures(pawnCaptures, queenCaptures []Capture) []Capture {
	pooled := make([]Capture, 0, len(pawnCaptures)+len(queenCaptures))
	pooled = append(pooled, pawnCaptures...)
	pooled = append(pooled, queenCaptures...)
	return longest(pooled)
}

// AllCaptures returns the chains color c may legally play this turn: the
// longest ones over all its pieces.
func AllCaptures(b Board, c Color) []Capture {
	b.ResetExcluded()
	pawns, queens := CapturingPieces(b, Pieces(b, c), c)
	if len(pawns) == 0 && len(queens) == 0 {
		return nil
	}
	return LongestCaptures(PawnCaptures(b, pawns, c), QueenCaptures(b, queens, c))
}

func longest(chains []Capture) []Capture {
	maxLen := 0
	for _, ch := range chains {
		maxLen = max(maxLen, len(ch))
	}
	if maxLen == 0 {
		return nil
	}
	out := make([]Capture, 0, len(chains))
	for _, ch := range chains {
		if len(ch) == maxLen {
			out = append(out, ch)
		}
	}
	return out
}
