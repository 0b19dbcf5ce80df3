package checkers

import "fmt"

type Move interface {
	Start() Square
	End() Square
}

// SimpleMove relocates a piece without capturing.
type SimpleMove struct {
	XStart int `json:"x_start"`
	YStart int `json:"y_start"`
	XEnd   int `json:"x_end"`
	YEnd   int `json:"y_end"`
}

func NewSimpleMove(xStart, yStart, xEnd, yEnd int) (SimpleMove, error) {
	if err := checkBounds(xStart, yStart, xEnd, yEnd); err != nil {
		return SimpleMove{}, err
	}
	return SimpleMove{XStart: xStart, YStart: yStart, XEnd: xEnd, YEnd: yEnd}, nil
}

func (m SimpleMove) Start() Square { return Square{X: m.XStart, Y: m.YStart} }
func (m SimpleMove) End() Square   { return Square{X: m.XEnd, Y: m.YEnd} }

// Jump is one capturing hop over the piece at (XCapture, YCapture).
type Jump struct {
	XStart   int `json:"x_start"`
	YStart   int `json:"y_start"`
	XEnd     int `json:"x_end"`
	YEnd     int `json:"y_end"`
	XCapture int `json:"x_capture"`
	YCapture int `json:"y_capture"`
}

func NewJump(xStart, yStart, xEnd, yEnd, xCapture, yCapture int) (Jump, error) {
	if err := checkBounds(xStart, yStart, xEnd, yEnd, xCapture, yCapture); err != nil {
		return Jump{}, err
	}
	return Jump{
		XStart:   xStart,
		YStart:   yStart,
		XEnd:     xEnd,
		YEnd:     yEnd,
		XCapture: xCapture,
		YCapture: yCapture,
	}, nil
}

func (j Jump) Start() Square    { return Square{X: j.XStart, Y: j.YStart} }
func (j Jump) End() Square      { return Square{X: j.XEnd, Y: j.YEnd} }
func (j Jump) Captured() Square { return Square{X: j.XCapture, Y: j.YCapture} }

// Capture is a chain of jumps made by one piece in one turn.
type Capture []Jump

func (c Capture) Start() Square {
	if len(c) == 0 {
		return Square{}
	}
	return c[0].Start()
}

func (c Capture) End() Square {
	if len(c) == 0 {
		return Square{}
	}
	return c[len(c)-1].End()
}

func (c Capture) Captured() []Square {
	out := make([]Square, len(c))
	for i, j := range c {
		out[i] = j.Captured()
	}
	return out
}

func checkBounds(coords ...int) error {
	for i := 0; i+1 < len(coords); i += 2 {
		if !onBoard(coords[i], coords[i+1]) {
			return fmt.Errorf("%w: (%d,%d)", ErrIndexOutOfBounds, coords[i], coords[i+1])
		}
	}
	return nil
}
