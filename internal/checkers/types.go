package checkers

type Color int8

const (
	White Color = 0
	Black Color = 1
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

type Rank int8

const (
	Pawn  Rank = 0
	Queen Rank = 1
)

type Piece struct {
	Rank  Rank
	Color Color
}

// Cell is the 4-bit code stored per playable square.
// bit0 = occupied, bit1 = color (0 white, 1 black), bit2 = rank (0 pawn, 1 queen)
type Cell uint8

const (
	Empty      Cell = 0b0000
	WhitePawn  Cell = 0b0001
	BlackPawn  Cell = 0b0011
	WhiteQueen Cell = 0b0101
	BlackQueen Cell = 0b0111
)

const (
	cellOccupied Cell = 0b001
	cellBlack    Cell = 0b010
	cellQueen    Cell = 0b100
	cellMask          = 0b1111
)

func (c Cell) Valid() bool {
	switch c {
	case Empty, WhitePawn, BlackPawn, WhiteQueen, BlackQueen:
		return true
	}
	return false
}

func (c Cell) IsEmpty() bool { return c&cellOccupied == 0 }

// Piece decodes the cell; ok is false for an empty cell.
func (c Cell) Piece() (p Piece, ok bool) {
	if c.IsEmpty() {
		return Piece{}, false
	}
	if c&cellBlack != 0 {
		p.Color = Black
	}
	if c&cellQueen != 0 {
		p.Rank = Queen
	}
	return p, true
}

func (c Cell) color() Color {
	if c&cellBlack != 0 {
		return Black
	}
	return White
}

func (c Cell) isQueen() bool { return c&cellQueen != 0 }

func (p Piece) Code() Cell {
	code := cellOccupied
	if p.Color == Black {
		code |= cellBlack
	}
	if p.Rank == Queen {
		code |= cellQueen
	}
	return code
}

type Square struct {
	X int `json:"x"`
	Y int `json:"y"`
}

var diagonals = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// Pawn forward direction along x: White goes up (-1), Black goes down (+1).
func pawnDir(c Color) int {
	if c == White {
		return -1
	}
	return +1
}
