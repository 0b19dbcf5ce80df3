package checkers

import (
	"fmt"
	"strings"
)

// Encode writes the position as 8 ranks separated by '/', listing only the
// 4 playable squares of each rank, runs of empty squares compressed to a
// digit, followed by " w" or " b" for the side to move.
//
//	bbbb/bbbb/bbbb/4/4/wwww/wwww/wwww w
func (p *Position) Encode() string {
	var sb strings.Builder
	for x := 0; x < Size; x++ {
		if x > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for y := (x + 1) % 2; y < Size; y += 2 {
			code := p.Board.at(x, y)
			if code.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(cellToLabel(code))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

func DecodePosition(s string) (*Position, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEncoding, s)
	}
	ranks := strings.Split(parts[0], "/")
	if len(ranks) != Size {
		return nil, fmt.Errorf("%w: want %d ranks, got %d", ErrInvalidEncoding, Size, len(ranks))
	}
	var b Board
	for x, rank := range ranks {
		i := 0
		for _, ch := range rank {
			if i >= playablePerRk {
				return nil, fmt.Errorf("%w: rank %d too long", ErrInvalidEncoding, x)
			}
			if ch >= '1' && ch <= '4' {
				i += int(ch - '0')
				continue
			}
			code, ok := labelToCell[ch]
			if !ok || code == Empty {
				return nil, fmt.Errorf("%w: unknown label %q", ErrInvalidEncoding, ch)
			}
			b.put(x, 2*i+(x+1)%2, code)
			i++
		}
		if i != playablePerRk {
			return nil, fmt.Errorf("%w: rank %d has %d squares", ErrInvalidEncoding, x, i)
		}
	}
	var side Color
	switch parts[1] {
	case "w":
		side = White
	case "b":
		side = Black
	default:
		return nil, fmt.Errorf("%w: side %q", ErrInvalidEncoding, parts[1])
	}
	return NewPosition(b, side), nil
}
