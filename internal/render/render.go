// Package render draws a board for a terminal.
package render

import (
	"strconv"
	"strings"

	"checkers/internal/checkers"
)

const header = "   A B C D E F G H\n"

const (
	ansiReset = "\x1b[0m"
	ansiWhite = "\x1b[97m"
	ansiBlack = "\x1b[31m"
	ansiDark  = "\x1b[100m"
)

type Options struct {
	// Color wraps pieces and dark squares in ANSI escape codes.
	Color bool
	// Highlight marks squares with '*' when they are empty, e.g. move targets.
	Highlight []checkers.Square
}

// Text renders b with file letters A..H above and below and rank numbers
// 8..1 on both sides. With Color, pieces are drawn as ● (pawn) and Q (queen)
// in the side's color; without it the mockup labels w, W, b and B are used.
func Text(b checkers.Board, opt Options) string {
	marked := make(map[checkers.Square]bool, len(opt.Highlight))
	for _, sq := range opt.Highlight {
		marked[sq] = true
	}

	var sb strings.Builder
	sb.WriteString(header)
	for sq, cell := range b.All() {
		if sq.Y == 0 {
			sb.WriteString(strconv.Itoa(checkers.Size-sq.X) + " ")
		}
		sb.WriteByte(' ')
		sb.WriteString(square(sq, cell, marked[sq], opt.Color))
		if sq.Y == checkers.Size-1 {
			sb.WriteString("  " + strconv.Itoa(checkers.Size-sq.X) + "\n")
		}
	}
	sb.WriteString(header)
	return sb.String()
}

var labels = map[checkers.Cell]string{
	checkers.WhitePawn:  "w",
	checkers.WhiteQueen: "W",
	checkers.BlackPawn:  "b",
	checkers.BlackQueen: "B",
}

func square(sq checkers.Square, cell checkers.Cell, marked, color bool) string {
	dark := (sq.X+sq.Y)%2 == 1
	p, ok := cell.Piece()
	var s string
	switch {
	case ok && color:
		glyph := "●"
		if p.Rank == checkers.Queen {
			glyph = "Q"
		}
		code := ansiWhite
		if p.Color == checkers.Black {
			code = ansiBlack
		}
		return ansiDark + code + glyph + ansiReset
	case ok:
		s = labels[cell]
	case marked:
		s = "*"
	default:
		s = "."
	}
	if color && dark {
		return ansiDark + s + ansiReset
	}
	return s
}
