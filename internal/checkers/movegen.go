package checkers

// Pieces lists the squares holding pieces of color c, in board order.
func Pieces(b Board, c Color) []Square {
	var out []Square
	for sq, cell := range b.All() {
		if !cell.IsEmpty() && cell.color() == c {
			out = append(out, sq)
		}
	}
	return out
}

// CapturingPieces splits pieces into pawns and queens that have at least one
// jump available right now. Squares not holding a piece of color c are skipped.
func CapturingPieces(b Board, pieces []Square, c Color) (pawns, queens []Square) {
	var jumps []Jump
	for _, sq := range pieces {
		cell, ok := ownPiece(&b, sq, c)
		if !ok {
			continue
		}
		jumps = jumps[:0]
		if cell.isQueen() {
			genQueenJumps(&b, sq.X, sq.Y, c, &jumps)
			if len(jumps) > 0 {
				queens = append(queens, sq)
			}
		} else {
			genPawnJumps(&b, sq.X, sq.Y, c, &jumps)
			if len(jumps) > 0 {
				pawns = append(pawns, sq)
			}
		}
	}
	return pawns, queens
}

// MovablePieces splits pieces into pawns and queens that have at least one
// non-capturing move.
func MovablePieces(b Board, pieces []Square, c Color) (pawns, queens []Square) {
	var moves []SimpleMove
	for _, sq := range pieces {
		cell, ok := ownPiece(&b, sq, c)
		if !ok {
			continue
		}
		moves = moves[:0]
		if cell.isQueen() {
			genQueenMoves(&b, sq.X, sq.Y, &moves)
			if len(moves) > 0 {
				queens = append(queens, sq)
			}
		} else {
			genPawnMoves(&b, sq.X, sq.Y, c, &moves)
			if len(moves) > 0 {
				pawns = append(pawns, sq)
			}
		}
	}
	return pawns, queens
}

func ownPiece(b *Board, sq Square, c Color) (Cell, bool) {
	if validate(sq.X, sq.Y) != nil {
		return Empty, false
	}
	cell := b.at(sq.X, sq.Y)
	if cell.IsEmpty() || cell.color() != c {
		return Empty, false
	}
	return cell, true
}

// Pawn: one diagonal step forward onto an empty square.
func genPawnMoves(b *Board, x, y int, c Color, moves *[]SimpleMove) {
	nx := x + pawnDir(c)
	for _, dy := range [2]int{-1, 1} {
		ny := y + dy
		if !onBoard(nx, ny) || !b.at(nx, ny).IsEmpty() {
			continue
		}
		*moves = append(*moves, SimpleMove{XStart: x, YStart: y, XEnd: nx, YEnd: ny})
	}
}

// Queen: any distance along a diagonal up to the first occupied square.
func genQueenMoves(b *Board, x, y int, moves *[]SimpleMove) {
	for _, d := range diagonals {
		nx, ny := x+d[0], y+d[1]
		for onBoard(nx, ny) && b.at(nx, ny).IsEmpty() {
			*moves = append(*moves, SimpleMove{XStart: x, YStart: y, XEnd: nx, YEnd: ny})
			nx += d[0]
			ny += d[1]
		}
	}
}

func PawnMoves(b Board, pawns []Square, c Color) []SimpleMove {
	var moves []SimpleMove
	for _, sq := range pawns {
		if cell, ok := ownPiece(&b, sq, c); ok && !cell.isQueen() {
			genPawnMoves(&b, sq.X, sq.Y, c, &moves)
		}
	}
	return moves
}

func QueenMoves(b Board, queens []Square, c Color) []SimpleMove {
	var moves []SimpleMove
	for _, sq := range queens {
		if cell, ok := ownPiece(&b, sq, c); ok && cell.isQueen() {
			genQueenMoves(&b, sq.X, sq.Y, &moves)
		}
	}
	return moves
}

// AllMoves returns every non-capturing move of color c, pawns first. It does
// not look at captures; use LegalOptions for the mandatory-capture view.
func AllMoves(b Board, c Color) []SimpleMove {
	pawns, queens := MovablePieces(b, Pieces(b, c), c)
	return append(PawnMoves(b, pawns, c), QueenMoves(b, queens, c)...)
}

// Options is what the side to move may play this turn. When Captures is
// non-empty Moves is nil.
type Options struct {
	Captures []Capture
	Moves    []SimpleMove
}

func (o Options) Len() int { return len(o.Captures) + len(o.Moves) }

func (o Options) Empty() bool { return o.Len() == 0 }

func LegalOptions(b Board, c Color) Options {
	if caps := AllCaptures(b, c); len(caps) > 0 {
		return Options{Captures: caps}
	}
	return Options{Moves: AllMoves(b, c)}
}

// HasGameEnded reports whether color c has lost: no pieces, or no capture
// and no move.
func HasGameEnded(b Board, c Color) bool {
	pieces := Pieces(b, c)
	if len(pieces) == 0 {
		return true
	}
	capPawns, capQueens := CapturingPieces(b, pieces, c)
	if len(capPawns) > 0 || len(capQueens) > 0 {
		return false
	}
	movePawns, moveQueens := MovablePieces(b, pieces, c)
	return len(movePawns) == 0 && len(moveQueens) == 0
}

// Perft counts the leaf positions of the legal-move tree of the given depth,
// promoting after every turn.
func Perft(b Board, c Color, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, child := range LegalOptions(b, c).Boards(b) {
		nodes += Perft(child, c.Opposite(), depth-1)
	}
	return nodes
}

// Boards returns the promoted position reached by each option, captures
// first, in option order.
func (o Options) Boards(b Board) []Board {
	out := make([]Board, 0, o.Len())
	for _, chain := range o.Captures {
		out = append(out, Promote(applyCapture(b, chain)))
	}
	for _, m := range o.Moves {
		out = append(out, Promote(applyMove(b, m)))
	}
	return out
}
