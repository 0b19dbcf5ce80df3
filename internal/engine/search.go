package engine

import (
	"math"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"checkers/internal/checkers"
)

type SearchResult struct {
	Index    int   // chosen option
	Score    int   // value of the chosen option; 0 when it was the only one
	Ties     []int // every option scoring Score, in option order
	Scores   []int // value per option; nil when there was a single option
	Nodes    int64
	TimeUsed time.Duration
}

// searcher holds the per-goroutine state of one root child's search.
type searcher struct {
	est   Estimator
	depth int
	root  checkers.Color
	nodes int64
}

// Plain minimax. Captures are mandatory, so a layer looks at moves only when
// the side to move has no capture. A side without options has lost; the
// score is shifted by the plies already played so faster wins and slower
// losses are preferred.
func (s *searcher) minimax(b checkers.Board, depth int, side checkers.Color, maximizing bool) int {
	s.nodes++
	if depth <= 0 {
		return s.est.Estimate(b, s.root, false)
	}

	children := checkers.LegalOptions(b, side).Boards(b)
	if len(children) == 0 {
		score := s.est.Estimate(b, s.root, true)
		if maximizing {
			return score + (s.depth - depth)
		}
		return score - (s.depth - depth)
	}

	if maximizing {
		best := math.MinInt
		for _, child := range children {
			best = max(best, s.minimax(child, depth-1, side.Opposite(), false))
		}
		return best
	}
	best := math.MaxInt
	for _, child := range children {
		best = min(best, s.minimax(child, depth-1, side.Opposite(), true))
	}
	return best
}

// Minimax evaluates b with side to move for the root color. The endgame
// shift is measured against e.Depth.
func (e *Engine) Minimax(b checkers.Board, depth int, side checkers.Color, maximizing bool, root checkers.Color) int {
	s := searcher{est: e.Estimator, depth: e.Depth, root: root}
	score := s.minimax(b, depth, side, maximizing)
	atomic.AddInt64(&e.nodes, s.nodes)
	return score
}

// SearchMoves picks one of the simple moves for color.
func (e *Engine) SearchMoves(b checkers.Board, moves []checkers.SimpleMove, color checkers.Color) (SearchResult, error) {
	children, err := playAll(b, moves)
	if err != nil {
		return SearchResult{}, err
	}
	return e.searchRoot(children, color)
}

// SearchCaptures picks one of the capture chains for color.
func (e *Engine) SearchCaptures(b checkers.Board, captures []checkers.Capture, color checkers.Color) (SearchResult, error) {
	children, err := playAll(b, captures)
	if err != nil {
		return SearchResult{}, err
	}
	return e.searchRoot(children, color)
}

// Search generates the legal options of color and picks one. The returned
// index refers to opts.Captures when it is non-empty, otherwise to opts.Moves.
func (e *Engine) Search(b checkers.Board, color checkers.Color) (SearchResult, checkers.Options, error) {
	opts := checkers.LegalOptions(b, color)
	var (
		res SearchResult
		err error
	)
	if len(opts.Captures) > 0 {
		res, err = e.SearchCaptures(b, opts.Captures, color)
	} else {
		res, err = e.SearchMoves(b, opts.Moves, color)
	}
	return res, opts, err
}

func playAll[M checkers.Move](b checkers.Board, options []M) ([]checkers.Board, error) {
	children := make([]checkers.Board, len(options))
	for i, m := range options {
		child, err := checkers.Play(b, m)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	return children, nil
}

// searchRoot scores every child in parallel, then picks among all children
// sharing the best score. Scores are stored by index, so the tie set does
// not depend on which goroutine finishes first.
func (e *Engine) searchRoot(children []checkers.Board, color checkers.Color) (SearchResult, error) {
	if e.Depth < 1 {
		return SearchResult{}, ErrInvalidDepth
	}
	if len(children) == 0 {
		return SearchResult{}, ErrNoOptions
	}
	start := time.Now()
	atomic.StoreInt64(&e.nodes, 0)

	if len(children) == 1 {
		return SearchResult{Index: 0, Ties: []int{0}, TimeUsed: time.Since(start)}, nil
	}

	scores := make([]int, len(children))
	var g errgroup.Group
	g.SetLimit(e.threads())
	for i, child := range children {
		g.Go(func() error {
			s := searcher{est: e.Estimator, depth: e.Depth, root: color}
			scores[i] = s.minimax(child, e.Depth-1, color.Opposite(), false)
			atomic.AddInt64(&e.nodes, s.nodes+1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SearchResult{}, err
	}

	best := math.MinInt
	var ties []int
	for i, score := range scores {
		switch {
		case score > best:
			best = score
			ties = append(ties[:0], i)
		case score == best:
			ties = append(ties, i)
		}
	}

	return SearchResult{
		Index:    ties[e.pick(len(ties))],
		Score:    best,
		Ties:     ties,
		Scores:   scores,
		Nodes:    atomic.LoadInt64(&e.nodes),
		TimeUsed: time.Since(start),
	}, nil
}
