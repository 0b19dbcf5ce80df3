package checkers

import (
	"fmt"
	"testing"

	"golang.org/x/exp/slices"
)

func TestPerft(t *testing.T) {
	tests := []struct {
		rows  int
		nodes []uint64 // depth 1..
	}{
		{rows: 1, nodes: []uint64{7, 49, 301, 1849, 11223}},
		{rows: 2, nodes: []uint64{7, 49, 392, 3136, 26592}},
		{rows: 3, nodes: []uint64{7, 49, 302, 1469, 7473}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("rows=%d", tt.rows), func(t *testing.T) {
			b, err := NewBoard(tt.rows)
			if err != nil {
				t.Fatal(err)
			}
			for i, want := range tt.nodes {
				depth := i + 1
				if got := Perft(b, White, depth); got != want {
					t.Fatalf("depth=%d: got=%d want=%d", depth, got, want)
				}
			}
		})
	}
}

func TestPawnMovesGoForward(t *testing.T) {
	b := mustParse(t, `
........
........
........
........
...b....
........
.....w..
........`)
	white := AllMoves(b, White)
	wantWhite := []SimpleMove{{6, 5, 5, 4}, {6, 5, 5, 6}}
	if !slices.Equal(white, wantWhite) {
		t.Fatalf("white got=%v want=%v", white, wantWhite)
	}
	black := AllMoves(b, Black)
	wantBlack := []SimpleMove{{4, 3, 5, 2}, {4, 3, 5, 4}}
	if !slices.Equal(black, wantBlack) {
		t.Fatalf("black got=%v want=%v", black, wantBlack)
	}
}

func TestQueenMovesSlideUntilBlocked(t *testing.T) {
	b := mustParse(t, `
........
........
.....b..
........
...W....
........
.w......
........`)
	moves := QueenMoves(b, []Square{{4, 3}}, White)
	// up-left 3, up-right 1, down-left 1, down-right 3
	if len(moves) != 8 {
		t.Fatalf("got %d moves: %v", len(moves), moves)
	}
	for _, m := range moves {
		if m.End() == (Square{2, 5}) || m.End() == (Square{6, 1}) {
			t.Fatalf("queen moved onto an occupied square: %v", m)
		}
	}
	// a pawn square passed as a queen is ignored
	if got := QueenMoves(b, []Square{{6, 1}}, White); got != nil {
		t.Fatalf("pawn listed as queen got moves %v", got)
	}
	if got := PawnMoves(b, []Square{{2, 5}}, White); got != nil {
		t.Fatalf("enemy pawn got moves %v", got)
	}
}

func TestHasGameEnded(t *testing.T) {
	b := mustParse(t, `
........
........
........
........
........
........
.b......
w.w.....`)
	if HasGameEnded(b, White) {
		t.Error("white still has moves")
	}
	if !HasGameEnded(b, Black) {
		t.Error("black is blocked")
	}
	if opts := LegalOptions(b, Black); !opts.Empty() {
		t.Errorf("blocked side has options %+v", opts)
	}

	onlyWhite := mustParse(t, `
........
........
........
........
........
........
........
w.......`)
	if !HasGameEnded(onlyWhite, Black) {
		t.Error("side without pieces must have lost")
	}

	initial, _ := NewBoard(3)
	if HasGameEnded(initial, White) || HasGameEnded(initial, Black) {
		t.Error("initial position is not over")
	}
}

func TestBackwardCaptureKeepsGameAlive(t *testing.T) {
	b := mustParse(t, `
...b....
b.b.....
.w......
..b.....
........
........
........
........`)
	pawns, queens := MovablePieces(b, Pieces(b, White), White)
	if len(pawns) != 0 || len(queens) != 0 {
		t.Fatalf("white should have no plain moves, got %v %v", pawns, queens)
	}
	if HasGameEnded(b, White) {
		t.Fatal("a capture is still available")
	}
	opts := LegalOptions(b, White)
	want := Capture{{XStart: 2, YStart: 1, XEnd: 4, YEnd: 3, XCapture: 3, YCapture: 2}}
	if len(opts.Captures) != 1 || !chainEqual(opts.Captures[0], want) {
		t.Fatalf("got %+v", opts)
	}
}

func TestOptionsBoardsPromote(t *testing.T) {
	b := mustParse(t, `
........
..w.....
........
........
........
........
........
........`)
	opts := LegalOptions(b, White)
	boards := opts.Boards(b)
	if len(boards) != 2 {
		t.Fatalf("got %d children", len(boards))
	}
	for _, child := range boards {
		if child.PieceCount(White) != 1 {
			t.Fatalf("piece lost:\n%s", child)
		}
		for _, c := range child.All() {
			if c == WhitePawn {
				t.Fatalf("pawn on the last rank was not promoted:\n%s", child)
			}
		}
	}
}
