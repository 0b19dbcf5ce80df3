package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"checkers/internal/checkers"
)

// Human lists the options on out and reads the chosen index from in,
// asking again until the answer is a valid index.
type Human struct {
	name  string
	color checkers.Color
	in    *bufio.Reader
	out   io.Writer
}

func NewHuman(name string, color checkers.Color, in io.Reader, out io.Writer) *Human {
	return &Human{name: name, color: color, in: bufio.NewReader(in), out: out}
}

func (h *Human) Name() string          { return h.name }
func (h *Human) Color() checkers.Color { return h.color }

func (h *Human) ChooseMove(_ checkers.Board, moves []checkers.SimpleMove) (int, error) {
	if len(moves) == 0 {
		return 0, ErrNoOptions
	}
	fmt.Fprintf(h.out, "\nPlayer %s moves\n", h.name)
	for i, m := range moves {
		fmt.Fprintf(h.out, "%d. From %s to %s\n", i, m.Start(), m.End())
	}
	return h.readChoice(len(moves))
}

func (h *Human) ChooseCapture(_ checkers.Board, captures []checkers.Capture) (int, error) {
	if len(captures) == 0 {
		return 0, ErrNoOptions
	}
	fmt.Fprintf(h.out, "\nPlayer %s captures\n", h.name)
	for i, c := range captures {
		var path strings.Builder
		for _, j := range c {
			path.WriteString(" -> ")
			path.WriteString(j.End().String())
		}
		fmt.Fprintf(h.out, "%d. From %s%s\n", i, c.Start(), path.String())
	}
	return h.readChoice(len(captures))
}

func (h *Human) readChoice(n int) (int, error) {
	for {
		fmt.Fprint(h.out, "> ")
		line, err := h.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && strings.TrimSpace(line) != "") {
			return 0, fmt.Errorf("read choice: %w", err)
		}
		i, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && i >= 0 && i < n {
			return i, nil
		}
		fmt.Fprintf(h.out, "Incorrect input. Valid options are between 0 and %d\n", n-1)
		if err != nil {
			return 0, fmt.Errorf("read choice: %w", err)
		}
	}
}
