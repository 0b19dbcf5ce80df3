package checkers

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

const (
	Size          = 8
	NumSquares    = Size * Size
	NumPlayable   = NumSquares / 2
	MaxPawnRows   = 3
	cellsPerWord  = 16
	bitsPerCell   = 4
	playablePerRk = Size / 2
)

var (
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrRule             = errors.New("square is not playable")
	ErrInvalidCellValue = errors.New("invalid cell value")
	ErrConstruction     = errors.New("invalid board construction")
	ErrInvalidEncoding  = errors.New("invalid board encoding")
	ErrEmptySquare      = errors.New("no piece on square")
	ErrOccupiedSquare   = errors.New("target square is occupied")
	ErrEmptyCapture     = errors.New("empty capture chain")
	ErrWrongSide        = errors.New("piece belongs to the other side")
)

// Board packs the 32 playable squares: 4 data bits per square in cells,
// plus one scratch "excluded" bit per square used by capture search.
// Board is a value; copying it clones the whole state.
type Board struct {
	cells    [2]uint64
	excluded uint32
}

func cellIndex(x, y int) int { return playablePerRk*x + y/2 }

func onBoard(x, y int) bool { return x >= 0 && x < Size && y >= 0 && y < Size }

func playable(x, y int) bool { return (x+y)%2 == 1 }

func validate(x, y int) error {
	if !onBoard(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrIndexOutOfBounds, x, y)
	}
	if !playable(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrRule, x, y)
	}
	return nil
}

// at and put skip validation; only for coordinates produced by move generation.
func (b *Board) at(x, y int) Cell {
	i := cellIndex(x, y)
	return Cell(b.cells[i/cellsPerWord]>>(bitsPerCell*(i%cellsPerWord))) & cellMask
}

func (b *Board) put(x, y int, v Cell) {
	i := cellIndex(x, y)
	shift := bitsPerCell * (i % cellsPerWord)
	w := &b.cells[i/cellsPerWord]
	*w = *w&^(uint64(cellMask)<<shift) | uint64(v)<<shift
}

func (b *Board) excludedAt(x, y int) bool {
	return b.excluded&(1<<cellIndex(x, y)) != 0
}

func (b *Board) exclude(x, y int) {
	b.excluded |= 1 << cellIndex(x, y)
}

func EmptyBoard() Board { return Board{} }

// NewBoard lays out pawnRows full ranks of pawns per side: Black from rank 0,
// White from rank 7.
func NewBoard(pawnRows int) (Board, error) {
	if pawnRows < 1 || pawnRows > MaxPawnRows {
		return Board{}, fmt.Errorf("%w: pawn rows must be 1..%d, got %d", ErrConstruction, MaxPawnRows, pawnRows)
	}
	var b Board
	for x := 0; x < Size; x++ {
		var code Cell
		switch {
		case x < pawnRows:
			code = BlackPawn
		case x >= Size-pawnRows:
			code = WhitePawn
		default:
			continue
		}
		for y := (x + 1) % 2; y < Size; y += 2 {
			b.put(x, y, code)
		}
	}
	return b, nil
}

func (b Board) Get(x, y int) (Piece, bool, error) {
	if err := validate(x, y); err != nil {
		return Piece{}, false, err
	}
	p, ok := b.at(x, y).Piece()
	return p, ok, nil
}

// Cell returns the raw code of a playable square.
func (b Board) Cell(x, y int) (Cell, error) {
	if err := validate(x, y); err != nil {
		return Empty, err
	}
	return b.at(x, y), nil
}

// Set overwrites the data bits of one square; the excluded bit is kept.
func (b *Board) Set(x, y int, v Cell) error {
	if err := validate(x, y); err != nil {
		return err
	}
	if !v.Valid() {
		return fmt.Errorf("%w: %#04b", ErrInvalidCellValue, uint8(v))
	}
	b.put(x, y, v)
	return nil
}

func (b Board) IsEmpty(x, y int) (bool, error) {
	_, ok, err := b.Get(x, y)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

func (b Board) IsExcluded(x, y int) (bool, error) {
	if err := validate(x, y); err != nil {
		return false, err
	}
	return b.excludedAt(x, y), nil
}

func (b *Board) SetExcluded(x, y int) error {
	if err := validate(x, y); err != nil {
		return err
	}
	b.exclude(x, y)
	return nil
}

func (b *Board) ResetExcluded() { b.excluded = 0 }

// All yields the 64 squares row-major (x outer, y inner). Non-playable
// squares yield Empty.
func (b Board) All() iter.Seq2[Square, Cell] {
	return func(yield func(Square, Cell) bool) {
		for x := 0; x < Size; x++ {
			for y := 0; y < Size; y++ {
				c := Empty
				if playable(x, y) {
					c = b.at(x, y)
				}
				if !yield(Square{X: x, Y: y}, c) {
					return
				}
			}
		}
	}
}

// Packed returns the data bits; read as hi:lo it is the 128-bit packing
// with cell i at bit offset 4*i, i = 4x + y/2.
func (b Board) Packed() [2]uint64 { return b.cells }

func (b Board) PieceCount(c Color) int {
	n := 0
	for _, cell := range b.All() {
		if !cell.IsEmpty() && cell.color() == c {
			n++
		}
	}
	return n
}

// Promote turns White pawns on rank 0 and Black pawns on rank 7 into queens.
func Promote(b Board) Board {
	for y := 1; y < Size; y += 2 {
		if b.at(0, y) == WhitePawn {
			b.put(0, y, WhiteQueen)
		}
	}
	for y := 0; y < Size; y += 2 {
		if b.at(Size-1, y) == BlackPawn {
			b.put(Size-1, y, BlackQueen)
		}
	}
	return b
}

var labelToCell = map[rune]Cell{
	'.': Empty,
	'w': WhitePawn,
	'W': WhiteQueen,
	'b': BlackPawn,
	'B': BlackQueen,
}

func cellToLabel(c Cell) rune {
	for k, v := range labelToCell {
		if v == c {
			return k
		}
	}
	return '?'
}

// ParseBoard reads an 8x8 mockup, one rank per line, one label per square:
// '.' empty, 'w'/'W' white pawn/queen, 'b'/'B' black pawn/queen.
// Whitespace inside a line is ignored.
func ParseBoard(mockup string) (Board, error) {
	var b Board
	x := 0
	for _, line := range strings.Split(mockup, "\n") {
		line = strings.Join(strings.Fields(line), "")
		if line == "" {
			continue
		}
		if x >= Size {
			return Board{}, fmt.Errorf("%w: more than %d ranks", ErrInvalidEncoding, Size)
		}
		row := []rune(line)
		if len(row) != Size {
			return Board{}, fmt.Errorf("%w: rank %d has %d squares", ErrInvalidEncoding, x, len(row))
		}
		for y, ch := range row {
			code, ok := labelToCell[ch]
			if !ok {
				return Board{}, fmt.Errorf("%w: unknown label %q at (%d,%d)", ErrInvalidEncoding, ch, x, y)
			}
			if code == Empty {
				continue
			}
			if err := b.Set(x, y, code); err != nil {
				return Board{}, err
			}
		}
		x++
	}
	if x != Size {
		return Board{}, fmt.Errorf("%w: got %d ranks", ErrInvalidEncoding, x)
	}
	return b, nil
}

// String renders the board in ParseBoard's mockup format.
func (b Board) String() string {
	var sb strings.Builder
	for sq, c := range b.All() {
		sb.WriteRune(cellToLabel(c))
		if sq.Y == Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
