package engine

import (
	"errors"
	"fmt"
	"testing"

	"golang.org/x/exp/slices"

	"checkers/internal/checkers"
)

// White pawns on C3 and E3 against a black pawn on C5.
const twoPawnsVsOne = `
........
........
........
..b.....
........
..w.w...
........
........`

func mustParse(t *testing.T, mockup string) checkers.Board {
	t.Helper()
	b, err := checkers.ParseBoard(mockup)
	if err != nil {
		t.Fatalf("parse board: %v", err)
	}
	return b
}

func newTestEngine(depth int) *Engine {
	e := NewEngine(NewCountEstimator(DefaultPawnWeight, DefaultQueenWeight), depth)
	e.Pick = FirstTie
	return e
}

func TestSearchCollectsAllTies(t *testing.T) {
	b := mustParse(t, twoPawnsVsOne)
	tests := []struct {
		depth  int
		scores []int
		ties   []int
	}{
		{depth: 1, scores: []int{1, 1, 1, 1}, ties: []int{0, 1, 2, 3}},
		{depth: 2, scores: []int{0, 1, 0, 1}, ties: []int{1, 3}},
		{depth: 3, scores: []int{0, 1, 0, 2}, ties: []int{3}},
		{depth: 4, scores: []int{0, 1, 0, ScoreMax - 3}, ties: []int{3}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("depth=%d", tt.depth), func(t *testing.T) {
			e := newTestEngine(tt.depth)
			res, opts, err := e.Search(b, checkers.White)
			if err != nil {
				t.Fatalf("search: %v", err)
			}
			if len(opts.Captures) != 0 || len(opts.Moves) != 4 {
				t.Fatalf("unexpected options %+v", opts)
			}
			if !slices.Equal(res.Scores, tt.scores) {
				t.Errorf("scores got=%v want=%v", res.Scores, tt.scores)
			}
			if !slices.Equal(res.Ties, tt.ties) {
				t.Errorf("ties got=%v want=%v", res.Ties, tt.ties)
			}
			if res.Index != tt.ties[0] {
				t.Errorf("first-tie pick got=%d want=%d", res.Index, tt.ties[0])
			}
			if res.Nodes == 0 {
				t.Error("node counter not updated")
			}
		})
	}
}

func TestSearchFromBlackPerspective(t *testing.T) {
	b := mustParse(t, `
........
........
...b....
........
.....w..
........
........
........`)
	e := newTestEngine(2)
	res, opts, err := e.Search(b, checkers.Black)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(opts.Moves) != 2 {
		t.Fatalf("expected 2 moves, got %+v", opts)
	}
	if !slices.Equal(res.Scores, []int{0, -1}) || res.Index != 0 {
		t.Fatalf("got scores=%v index=%d", res.Scores, res.Index)
	}

	e = newTestEngine(3)
	res, _, err = e.Search(b, checkers.Black)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !slices.Equal(res.Scores, []int{0, ScoreMin + 2}) {
		t.Fatalf("depth 3 scores got=%v", res.Scores)
	}
}

func TestSearchIsDeterministicAcrossThreadCounts(t *testing.T) {
	pos, err := checkers.NewInitialPosition(2)
	if err != nil {
		t.Fatal(err)
	}
	var first SearchResult
	for i, threads := range []int{1, 3, 8, 1} {
		e := newTestEngine(4)
		e.Threads = threads
		res, _, err := e.Search(pos.Board, checkers.White)
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if i == 0 {
			first = res
			continue
		}
		if res.Index != first.Index || res.Score != first.Score ||
			!slices.Equal(res.Scores, first.Scores) || !slices.Equal(res.Ties, first.Ties) {
			t.Fatalf("threads=%d: got %+v want %+v", threads, res, first)
		}
	}
}

func TestSearchSingleOptionSkipsSearch(t *testing.T) {
	b := mustParse(t, `
........
........
........
........
...b....
..w.....
........
........`)
	e := newTestEngine(3)
	res, opts, err := e.Search(b, checkers.White)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(opts.Captures) != 1 || res.Index != 0 || res.Scores != nil || res.Nodes != 0 {
		t.Fatalf("got res=%+v opts=%+v", res, opts)
	}
}

func TestMinimaxPrefersFasterWin(t *testing.T) {
	b := mustParse(t, `
........
........
........
........
...b....
..w.....
........
........`)
	e := newTestEngine(2)
	// White captures the last black piece, then Black has nothing left one ply later.
	if got, want := e.Minimax(b, 2, checkers.White, true, checkers.White), ScoreMax-1; got != want {
		t.Fatalf("got=%d want=%d", got, want)
	}
}

func TestMinimaxEndgameAtRoot(t *testing.T) {
	b := mustParse(t, `
........
........
........
........
........
........
.b......
w.w.....`)
	e := newTestEngine(3)
	if got := e.Minimax(b, 3, checkers.Black, false, checkers.White); got != ScoreMax {
		t.Fatalf("blocked black: got=%d want=%d", got, ScoreMax)
	}
	if got := e.Minimax(b, 0, checkers.Black, false, checkers.White); got != 1 {
		t.Fatalf("depth 0 must be plain material, got=%d", got)
	}
}

func TestSearchErrors(t *testing.T) {
	b := mustParse(t, twoPawnsVsOne)
	e := newTestEngine(0)
	if _, _, err := e.Search(b, checkers.White); !errors.Is(err, ErrInvalidDepth) {
		t.Fatalf("depth 0: got %v", err)
	}
	e = newTestEngine(2)
	if _, err := e.SearchMoves(b, nil, checkers.White); !errors.Is(err, ErrNoOptions) {
		t.Fatalf("no options: got %v", err)
	}
	bad := []checkers.SimpleMove{{XStart: 9, YStart: 0, XEnd: 8, YEnd: 1}}
	if _, err := e.SearchMoves(b, bad, checkers.White); !errors.Is(err, checkers.ErrIndexOutOfBounds) {
		t.Fatalf("bad move: got %v", err)
	}
}

func TestRandomPickStaysWithinTies(t *testing.T) {
	b := mustParse(t, twoPawnsVsOne)
	e := NewEngine(NewCountEstimator(DefaultPawnWeight, DefaultQueenWeight), 2)
	e.Seed(7)
	seen := map[int]bool{}
	for i := 0; i < 50; i++ {
		res, _, err := e.Search(b, checkers.White)
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if res.Index != 1 && res.Index != 3 {
			t.Fatalf("picked non-tied option %d", res.Index)
		}
		seen[res.Index] = true
	}
	if len(seen) != 2 {
		t.Fatalf("expected both tied options to be picked over 50 searches, got %v", seen)
	}
}
