package checkers

import (
	"fmt"
	"strings"
)

const files = "ABCDEFGH"

// Alias names a square the way players read it: file letter from y, rank
// number 8-x. (7,0) is "A1".
func Alias(x, y int) (string, error) {
	if !onBoard(x, y) {
		return "", fmt.Errorf("%w: (%d,%d)", ErrIndexOutOfBounds, x, y)
	}
	return fmt.Sprintf("%c%d", files[y], Size-x), nil
}

func (s Square) String() string {
	a, err := Alias(s.X, s.Y)
	if err != nil {
		return fmt.Sprintf("(%d,%d)", s.X, s.Y)
	}
	return a
}

func ParseAlias(s string) (Square, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrIndexOutOfBounds, s)
	}
	y := strings.IndexByte(files, s[0])
	rank := int(s[1] - '0')
	if y < 0 || rank < 1 || rank > Size {
		return Square{}, fmt.Errorf("%w: %q", ErrIndexOutOfBounds, s)
	}
	return Square{X: Size - rank, Y: y}, nil
}

func (m SimpleMove) String() string {
	return m.Start().String() + "-" + m.End().String()
}

func (c Capture) String() string {
	if len(c) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(c.Start().String())
	for _, j := range c {
		sb.WriteByte('x')
		sb.WriteString(j.End().String())
	}
	return sb.String()
}
